package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/riftline/chatmesh/internal/agentsvc"
	"github.com/riftline/chatmesh/internal/clock"
	"github.com/riftline/chatmesh/internal/heartbeatsvc"
	"github.com/riftline/chatmesh/internal/lobbysvc"
	"github.com/riftline/chatmesh/proto"
)

type config struct {
	agentAddr     string
	heartbeatAddr string
	lobbyAddr     string
	channelIP     string
	ports         []string
	httpAddr      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "chatmesh-server",
		Short: "chatmesh server — Heartbeat, Lobby, Agent, and the Channel pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	root.Flags().StringVar(&cfg.agentAddr, "agent", "localhost:50050", "Agent listen address")
	root.Flags().StringVar(&cfg.heartbeatAddr, "heartbeat", "localhost:50051", "Heartbeat listen address")
	root.Flags().StringVar(&cfg.lobbyAddr, "lobby", "localhost:50052", "Lobby listen address")
	root.Flags().StringVar(&cfg.channelIP, "channelIp", "localhost", "Host Channels advertise to clients")
	root.Flags().StringSliceVar(&cfg.ports, "ports", []string{"50054", "50055", "50056", "50057"}, "Port pool available for dynamically created Channels")
	root.Flags().StringVar(&cfg.httpAddr, "http", "localhost:8080", "Lobby HTTP introspection listen address")

	return root
}

func run(ctx context.Context, cfg *config) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := parsePorts(cfg.ports)
	if err != nil {
		return fmt.Errorf("invalid --ports: %w", err)
	}

	clk := clock.System{}

	heartbeat := heartbeatsvc.New(clk)
	lobby := lobbysvc.New(cfg.channelIP, pool, clk)
	agent := agentsvc.New(cfg.heartbeatAddr, cfg.lobbyAddr, clk)
	defer agent.Close()

	go agent.Run(ctx)

	heartbeatLis, err := net.Listen("tcp", cfg.heartbeatAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on heartbeat address %s: %w", cfg.heartbeatAddr, err)
	}
	lobbyLis, err := net.Listen("tcp", cfg.lobbyAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on lobby address %s: %w", cfg.lobbyAddr, err)
	}
	agentLis, err := net.Listen("tcp", cfg.agentAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on agent address %s: %w", cfg.agentAddr, err)
	}

	heartbeatGRPC := grpc.NewServer()
	proto.RegisterHeartbeatServer(heartbeatGRPC, heartbeat)

	lobbyGRPC := grpc.NewServer()
	proto.RegisterLobbyServer(lobbyGRPC, lobby)

	agentGRPC := grpc.NewServer()
	proto.RegisterAgentServer(agentGRPC, agent)

	errCh := make(chan error, 4)

	go func() {
		log.Printf("heartbeat gRPC listening on %s", cfg.heartbeatAddr)
		errCh <- heartbeatGRPC.Serve(heartbeatLis)
	}()
	go func() {
		log.Printf("lobby gRPC listening on %s", cfg.lobbyAddr)
		errCh <- lobbyGRPC.Serve(lobbyLis)
	}()
	go func() {
		log.Printf("agent gRPC listening on %s", cfg.agentAddr)
		errCh <- agentGRPC.Serve(agentLis)
	}()

	router := lobbysvc.NewIntrospectionRouter(lobby)
	go func() {
		log.Printf("lobby HTTP introspection listening on %s", cfg.httpAddr)
		errCh <- router.Run(cfg.httpAddr)
	}()

	select {
	case <-ctx.Done():
		log.Println("shutting down")
	case err := <-errCh:
		cancel()
		heartbeatGRPC.GracefulStop()
		lobbyGRPC.GracefulStop()
		agentGRPC.GracefulStop()
		return fmt.Errorf("server error: %w", err)
	}

	heartbeatGRPC.GracefulStop()
	lobbyGRPC.GracefulStop()
	agentGRPC.GracefulStop()

	return nil
}

// parsePorts converts the --ports flag's string values into the uint32
// pool lobbysvc.New expects.
func parsePorts(raw []string) ([]uint32, error) {
	ports := make([]uint32, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("port %q: %w", p, err)
		}
		ports = append(ports, uint32(n))
	}
	return ports, nil
}
