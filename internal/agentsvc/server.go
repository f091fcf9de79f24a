// Package agentsvc implements the registration front door: it assigns
// monotonic user identities, tells clients where Heartbeat and Lobby live,
// and runs the FIFO sweep loop that garbage-collects disconnected users.
package agentsvc

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/riftline/chatmesh/internal/clock"
	"github.com/riftline/chatmesh/proto"
)

// Server implements proto.AgentServer.
type Server struct {
	proto.UnimplementedAgentServer

	heartbeatAddr string
	lobbyAddr     string
	clk           clock.Clock

	mu        sync.Mutex
	nextIndex uint32
	queue     []*pendingUser
	inQueue   map[string]bool

	clientsMu       sync.Mutex
	heartbeatConn   *grpc.ClientConn
	heartbeatClient proto.HeartbeatClient
	lobbyConn       *grpc.ClientConn
	lobbyClient     proto.LobbyClient
}

// New returns a Server directing clients to heartbeatAddr/lobbyAddr. RPC
// connections to those services are established lazily on first use
// (Login or the first sweep tick), matching the teacher's lazy
// client-creation idiom.
func New(heartbeatAddr, lobbyAddr string, clk clock.Clock) *Server {
	return &Server{
		heartbeatAddr: heartbeatAddr,
		lobbyAddr:     lobbyAddr,
		clk:           clk,
		inQueue:       make(map[string]bool),
	}
}

// Login assigns the next Index to ip, unless ip already has a pending
// entry in the sweep queue, in which case it fails with DuplicateUser.
func (s *Server) Login(ctx context.Context, req *proto.LoginRequest) (*proto.LoginReply, error) {
	if err := s.ensureClients(); err != nil {
		return nil, status.Errorf(codes.Unavailable, "heartbeat/lobby unreachable: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inQueue[req.IP] {
		return nil, status.Errorf(codes.AlreadyExists, "duplicate user for ip %s", req.IP)
	}

	s.nextIndex++
	index := s.nextIndex

	s.queue = append(s.queue, &pendingUser{
		ip:      req.IP,
		index:   index,
		checkAt: s.clk.Now().Add(sweepRecheckInterval),
	})
	s.inQueue[req.IP] = true

	return &proto.LoginReply{
		Index:            index,
		HeartbeatAddress: s.heartbeatAddr,
		LobbyAddress:     s.lobbyAddr,
	}, nil
}

func (s *Server) ensureClients() error {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if s.heartbeatClient == nil {
		conn, err := grpc.NewClient(s.heartbeatAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}
		s.heartbeatConn = conn
		s.heartbeatClient = proto.NewHeartbeatClient(conn)
	}

	if s.lobbyClient == nil {
		conn, err := grpc.NewClient(s.lobbyAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}
		s.lobbyConn = conn
		s.lobbyClient = proto.NewLobbyClient(conn)
	}

	return nil
}

// Close tears down the RPC connections to Heartbeat and Lobby.
func (s *Server) Close() error {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if s.heartbeatConn != nil {
		s.heartbeatConn.Close()
	}
	if s.lobbyConn != nil {
		s.lobbyConn.Close()
	}
	return nil
}
