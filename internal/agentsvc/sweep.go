package agentsvc

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/riftline/chatmesh/proto"
)

// sweepRecheckInterval is how far into the future a requeued entry's next
// check is scheduled, matching agent.py's 30-second constant.
const sweepRecheckInterval = 30 * time.Second

// sweepTick is how often the run loop examines the head of the queue.
const sweepTick = 1 * time.Second

type pendingUser struct {
	ip      string
	index   uint32
	checkAt time.Time
}

// Run drives the FIFO sweep loop until ctx is cancelled. Each tick
// examines only the head of the queue, bounding work per iteration.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Server) sweepOnce(ctx context.Context) {
	user := s.popFront()
	if user == nil {
		return
	}

	traceID := uuid.New().String()

	if s.clk.Now().Before(user.checkAt) {
		s.pushBack(user)
		return
	}

	if err := s.ensureClients(); err != nil {
		log.Printf("agentsvc sweep[%s]: clients unavailable, requeuing index %d: %v", traceID, user.index, err)
		s.requeueFresh(user)
		return
	}

	liveReply, err := s.heartbeatClient.IsUserLive(ctx, &proto.UserRequest{Index: user.index})
	if err != nil {
		log.Printf("agentsvc sweep[%s]: IsUserLive failed for index %d, requeuing: %v", traceID, user.index, err)
		s.requeueFresh(user)
		return
	}

	if liveReply.Status == proto.Unknown {
		if _, err := s.lobbyClient.UserRemove(ctx, &proto.UserRequest{Index: user.index}); err != nil {
			log.Printf("agentsvc sweep[%s]: UserRemove failed for index %d: %v", traceID, user.index, err)
		}
		s.drop(user)
		return
	}

	exitReply, err := s.lobbyClient.UserExit(ctx, &proto.UserRequest{Index: user.index})
	if err != nil {
		log.Printf("agentsvc sweep[%s]: UserExit failed for index %d, requeuing: %v", traceID, user.index, err)
		s.requeueFresh(user)
		return
	}

	if exitReply.Status == proto.Quit {
		s.drop(user)
		return
	}

	s.requeueFresh(user)
}

func (s *Server) popFront() *pendingUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.queue) == 0 {
		return nil
	}
	user := s.queue[0]
	s.queue = s.queue[1:]
	return user
}

func (s *Server) pushBack(user *pendingUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, user)
}

func (s *Server) requeueFresh(user *pendingUser) {
	user.checkAt = s.clk.Now().Add(sweepRecheckInterval)
	s.pushBack(user)
}

func (s *Server) drop(user *pendingUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inQueue, user.ip)
}
