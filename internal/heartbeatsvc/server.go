// Package heartbeatsvc implements the leaf liveness service: a
// server-streaming tick per logged-in user and a pull-based liveness
// check used by the Agent's sweep loop.
package heartbeatsvc

import (
	"context"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/riftline/chatmesh/internal/clock"
	"github.com/riftline/chatmesh/proto"
)

// LiveInterval is the tick period and liveness window, matching
// heartbeat.py's constant of the same role.
const LiveInterval = 5 * time.Second

// Server implements proto.HeartbeatServer.
type Server struct {
	proto.UnimplementedHeartbeatServer

	clk clock.Clock

	mu            sync.Mutex
	expiration    map[uint32]time.Time
	activeStreams map[uint32]bool
}

// New returns a Server with clock clk (use clock.System{} in production).
func New(clk clock.Clock) *Server {
	return &Server{
		clk:           clk,
		expiration:    make(map[uint32]time.Time),
		activeStreams: make(map[uint32]bool),
	}
}

// Heartbeat streams a tick every LiveInterval, refreshing the user's
// expiration on each tick. A second concurrent stream for the same index
// is rejected as a protocol error rather than silently replacing the
// first, per spec's precondition.
func (s *Server) Heartbeat(req *proto.HeartbeatRequest, stream proto.Heartbeat_HeartbeatServer) error {
	index := req.Index

	s.mu.Lock()
	if s.activeStreams[index] {
		s.mu.Unlock()
		return status.Errorf(codes.FailedPrecondition, "heartbeat stream already active for index %d", index)
	}
	s.activeStreams[index] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.activeStreams, index)
		s.mu.Unlock()
	}()

	ctx := stream.Context()

	for {
		now := s.clk.Now()

		s.mu.Lock()
		s.expiration[index] = now.Add(LiveInterval)
		s.mu.Unlock()

		if err := stream.Send(&proto.HeartbeatReply{Time: uint64(now.Unix())}); err != nil {
			return err
		}

		timer := time.NewTimer(LiveInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// IsUserLive reports Live if index ticked within the last LiveInterval,
// evicting the entry as a side effect when it has lapsed.
func (s *Server) IsUserLive(ctx context.Context, req *proto.UserRequest) (*proto.UserLivesReply, error) {
	index := req.Index

	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expiration[index]
	if !ok {
		return &proto.UserLivesReply{Status: proto.Unknown}, nil
	}

	if s.clk.Now().After(exp) {
		delete(s.expiration, index)
		log.Printf("heartbeatsvc: index %d expired, evicting", index)
		return &proto.UserLivesReply{Status: proto.Unknown}, nil
	}

	return &proto.UserLivesReply{Status: proto.Live}, nil
}
