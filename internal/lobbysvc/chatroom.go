package lobbysvc

import (
	"context"
	"time"

	"github.com/riftline/chatmesh/proto"
)

// ChatPollInterval and StatusPollInterval are the Lobby's own broadcast
// room poll cadence (§4.3).
const (
	ChatPollInterval   = 1 * time.Second
	StatusPollInterval = 5 * time.Second
)

// ChatSend enqueues text onto every other user's pending chat queue and
// refreshes the sender's session validity. Empty text is a silent no-op.
func (s *Server) ChatSend(ctx context.Context, req *proto.Chat) (*proto.Empty, error) {
	s.mu.Lock()
	s.ensureUserLocked(req.Index)
	window := s.sessions[req.Index]
	s.mu.Unlock()

	if req.Text != "" {
		s.room.BroadcastChat(req.Index, req)
		window.Refresh()
	}

	return &proto.Empty{}, nil
}

// ChatReceive materialises the user and drains its pending chat queue on
// a 1-second poll until the client disconnects or the user is removed.
func (s *Server) ChatReceive(req *proto.Chat, stream proto.Lobby_ChatReceiveServer) error {
	index := req.Index

	s.mu.Lock()
	s.ensureUserLocked(index)
	s.mu.Unlock()

	ctx := stream.Context()
	ticker := time.NewTicker(ChatPollInterval)
	defer ticker.Stop()

	for {
		s.mu.Lock()
		_, known := s.sessions[index]
		s.mu.Unlock()
		if !known {
			return nil
		}

		for _, chat := range s.room.DrainChats(index) {
			if err := stream.Send(chat); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// StatusRequest drains the user's pending status queue on a 5-second
// poll, symmetric to ChatReceive.
func (s *Server) StatusRequest(req *proto.UserRequest, stream proto.Lobby_StatusRequestServer) error {
	index := req.Index

	s.mu.Lock()
	s.ensureUserLocked(index)
	s.mu.Unlock()

	ctx := stream.Context()
	ticker := time.NewTicker(StatusPollInterval)
	defer ticker.Stop()

	for {
		s.mu.Lock()
		_, known := s.sessions[index]
		s.mu.Unlock()
		if !known {
			return nil
		}

		for _, evt := range s.room.DrainStatuses(index) {
			if err := stream.Send(evt); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// UserRemove hard-removes the user from the Lobby directory and from any
// channel they inhabited.
func (s *Server) UserRemove(ctx context.Context, req *proto.UserRequest) (*proto.Empty, error) {
	s.mu.Lock()
	channel, hadChannel := s.userChannel[req.Index]
	delete(s.userChannel, req.Index)
	delete(s.sessions, req.Index)
	s.mu.Unlock()

	s.room.Remove(req.Index)

	if hadChannel && channel != 0 {
		s.removeUserFromChannel(req.Index, channel)
	}

	return &proto.Empty{}, nil
}

// UserExit reports Quit (and queues a Quit status) if the user's session
// validity has lapsed, otherwise Ok. A never-materialised user (one the
// Lobby has no record of interacting with) is treated as Ok rather than
// lapsed, since it has no deadline to have missed.
func (s *Server) UserExit(ctx context.Context, req *proto.UserRequest) (*proto.StatusReply, error) {
	s.mu.Lock()
	window, ok := s.sessions[req.Index]
	s.mu.Unlock()

	if ok && window.Expired() {
		reply := &proto.StatusReply{Index: req.Index, Status: proto.Quit}
		s.room.QueueStatus(req.Index, reply)
		return reply, nil
	}

	return &proto.StatusReply{Index: req.Index, Status: proto.Ok}, nil
}
