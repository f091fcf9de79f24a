package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/riftline/chatmesh/proto"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var agentAddr string

	root := &cobra.Command{
		Use:   "chatmesh-client",
		Short: "Interactive console for the chatmesh Lobby and Channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), agentAddr)
		},
	}

	root.Flags().StringVar(&agentAddr, "agent", "localhost:50050", "Agent address to register with")

	return root
}

func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		hostname, _ := os.Hostname()
		return hostname
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

func run(ctx context.Context, agentAddr string) error {
	agentConn, err := grpc.NewClient(agentAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial agent at %s: %w", agentAddr, err)
	}
	defer agentConn.Close()

	agentClient := proto.NewAgentClient(agentConn)

	login, err := agentClient.Login(ctx, &proto.LoginRequest{IP: localIP()})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("my index is %d\n", login.Index)

	heartbeatConn, err := grpc.NewClient(login.HeartbeatAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial heartbeat at %s: %w", login.HeartbeatAddress, err)
	}
	defer heartbeatConn.Close()

	lobbyConn, err := grpc.NewClient(login.LobbyAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to dial lobby at %s: %w", login.LobbyAddress, err)
	}
	defer lobbyConn.Close()

	heartbeatClient := proto.NewHeartbeatClient(heartbeatConn)
	lobbyClient := proto.NewLobbyClient(lobbyConn)

	index := login.Index

	heartbeatStream, err := heartbeatClient.Heartbeat(ctx, &proto.HeartbeatRequest{Index: index})
	if err != nil {
		return fmt.Errorf("failed to open heartbeat stream: %w", err)
	}
	go drainHeartbeat(heartbeatStream)

	lobbyChats, err := lobbyClient.ChatReceive(ctx, &proto.Chat{Index: index})
	if err != nil {
		return fmt.Errorf("failed to open lobby chat stream: %w", err)
	}
	go printChats(lobbyChats)

	lobbyStatuses, err := lobbyClient.StatusRequest(ctx, &proto.UserRequest{Index: index})
	if err != nil {
		return fmt.Errorf("failed to open lobby status stream: %w", err)
	}
	go printStatuses(lobbyStatuses)

	console := &console{
		index:       index,
		lobbyClient: lobbyClient,
	}
	console.repl(ctx)

	if console.channel != nil {
		console.channel.conn.Close()
	}

	return nil
}

// joinedChannel bundles the connection and stubs for a Channel the user has
// currently made or joined, mirroring console.py's Channel helper class.
type joinedChannel struct {
	port          uint32
	address       string
	conn          *grpc.ClientConn
	client        proto.ChannelClient
	cancelStreams context.CancelFunc
}

func dialChannel(ctx context.Context, index, port uint32, address string) (*joinedChannel, error) {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	client := proto.NewChannelClient(conn)

	streamCtx, cancel := context.WithCancel(ctx)

	chats, err := client.ChatReceive(streamCtx, &proto.Chat{Index: index})
	if err != nil {
		cancel()
		conn.Close()
		return nil, err
	}
	go printChats(chats)

	statuses, err := client.StatusRequest(streamCtx, &proto.UserRequest{Index: index})
	if err != nil {
		cancel()
		conn.Close()
		return nil, err
	}
	go printStatuses(statuses)

	return &joinedChannel{
		port:          port,
		address:       address,
		conn:          conn,
		client:        client,
		cancelStreams: cancel,
	}, nil
}

func (c *joinedChannel) close() {
	c.cancelStreams()
	c.conn.Close()
}

type console struct {
	index       uint32
	lobbyClient proto.LobbyClient
	channel     *joinedChannel
}

const helpText = `/all <text>: send chat to all
/make: make a channel
/list: list up all channels
/join <port>: join to channel
/leave: leave from the channel
/user [port]: list users in the channel or lobby
/?: list up all commands`

// repl reads commands from stdin until EOF, reproducing console.py's
// command set and message phrasing. A cancelled context makes the RPCs
// fail but does not end the loop.
func (c *console) repl(ctx context.Context) {
	fmt.Printf("Help: /?\n")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		words := strings.Fields(text)
		command := words[0]
		rest := strings.TrimSpace(strings.TrimPrefix(text, command))

		switch command {
		case "/all":
			if _, err := c.lobbyClient.ChatSend(ctx, &proto.Chat{Index: c.index, Text: rest}); err != nil {
				log.Printf("chat send failed: %v", err)
			}
		case "/make":
			c.handleMake(ctx)
		case "/list":
			c.handleList(ctx)
		case "/join":
			c.handleJoin(ctx, rest)
		case "/leave":
			c.handleLeave(ctx)
		case "/user":
			c.handleUsers(ctx, rest)
		case "/?":
			fmt.Println(helpText)
		default:
			if c.channel == nil {
				fmt.Println("You have to join a channel to chat")
				continue
			}
			if _, err := c.channel.client.ChatSend(ctx, &proto.Chat{Index: c.index, Text: text}); err != nil {
				log.Printf("chat send failed: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		log.Printf("console input error: %v", err)
	}
}

func (c *console) handleMake(ctx context.Context) {
	if c.channel != nil {
		fmt.Println("you are in a channel already")
		return
	}

	reply, err := c.lobbyClient.Command(ctx, &proto.CommandRequest{Index: c.index, Kind: proto.MakeChannel})
	if err != nil {
		log.Printf("make channel failed: %v", err)
		return
	}
	if reply.Status != proto.Success {
		fmt.Println("channel creating is failed")
		return
	}

	ch, err := dialChannel(ctx, c.index, reply.Channels[0], reply.Address)
	if err != nil {
		log.Printf("failed to connect to new channel: %v", err)
		return
	}
	c.channel = ch

	fmt.Printf("channel is created:%s\n", reply.Address)
}

func (c *console) handleList(ctx context.Context) {
	reply, err := c.lobbyClient.Command(ctx, &proto.CommandRequest{Index: c.index, Kind: proto.ListChannels})
	if err != nil {
		log.Printf("list channels failed: %v", err)
		return
	}

	if len(reply.Channels) == 0 {
		fmt.Println("There is no channel")
		return
	}
	for _, port := range reply.Channels {
		fmt.Printf("channel:%d\n", port)
	}
}

func (c *console) handleJoin(ctx context.Context, arg string) {
	if c.channel != nil {
		fmt.Println("You entered in a channel")
		return
	}

	port, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		fmt.Println("You entered invalid channel")
		return
	}

	reply, err := c.lobbyClient.Command(ctx, &proto.CommandRequest{Index: c.index, Kind: proto.JoinChannel, Channel: uint32(port)})
	if err != nil {
		log.Printf("join channel failed: %v", err)
		return
	}
	if reply.Status != proto.Success {
		fmt.Println("channel creating is failed")
		return
	}

	ch, err := dialChannel(ctx, c.index, uint32(port), reply.Address)
	if err != nil {
		log.Printf("failed to connect to joined channel: %v", err)
		return
	}
	c.channel = ch

	fmt.Printf("You joined at channel %s\n", reply.Address)
}

func (c *console) handleLeave(ctx context.Context) {
	if c.channel == nil {
		fmt.Println("It can use when you are in a channel")
		return
	}

	if _, err := c.lobbyClient.Command(ctx, &proto.CommandRequest{Index: c.index, Kind: proto.LeaveChannel, Channel: c.channel.port}); err != nil {
		log.Printf("leave channel failed: %v", err)
	}

	fmt.Printf("You left from channel %s\n", c.channel.address)
	c.channel.close()
	c.channel = nil
}

func (c *console) handleUsers(ctx context.Context, arg string) {
	port, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		port = 0
	}

	reply, err := c.lobbyClient.Command(ctx, &proto.CommandRequest{Index: c.index, Kind: proto.ListUsers, Channel: uint32(port)})
	if err != nil {
		log.Printf("list users failed: %v", err)
		return
	}

	for i, user := range reply.Users {
		fmt.Printf("user:%d at channel %d\n", user, reply.Channels[i])
	}
}

func drainHeartbeat(stream proto.Heartbeat_HeartbeatClient) {
	for {
		if _, err := stream.Recv(); err != nil {
			return
		}
	}
}

func printChats(stream interface{ Recv() (*proto.Chat, error) }) {
	for {
		chat, err := stream.Recv()
		if err != nil {
			return
		}
		fmt.Printf("%d: %s\n", chat.Index, chat.Text)
	}
}

func printStatuses(stream interface{ Recv() (*proto.StatusReply, error) }) {
	for {
		reply, err := stream.Recv()
		if err != nil {
			return
		}

		switch reply.Status {
		case proto.JoinUser:
			if reply.Channel != 0 {
				fmt.Printf("user %d joined at channel %d\n", reply.Index, reply.Channel)
			} else {
				fmt.Printf("user %d joined at lobby\n", reply.Index)
			}
		case proto.LeaveUser:
			if reply.Channel != 0 {
				fmt.Printf("user %d left from channel %d\n", reply.Index, reply.Channel)
			} else {
				fmt.Printf("user %d left from lobby\n", reply.Index)
			}
		case proto.Quit:
			fmt.Println("You're checked by late response")
		}
	}
}
