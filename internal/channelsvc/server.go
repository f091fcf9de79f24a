// Package channelsvc implements a single dynamically instantiated
// broadcast room, identified by the network port the Lobby allocated it.
// One Server exists per live channel; the Lobby owns its lifecycle.
package channelsvc

import (
	"context"
	"time"

	"github.com/riftline/chatmesh/internal/room"
	"github.com/riftline/chatmesh/proto"
)

// ChatPollInterval and StatusPollInterval match the Lobby's own broadcast
// room poll cadence (§4.3), since Channel's semantics are explicitly
// identical, just scoped to channel membership.
const (
	ChatPollInterval   = 1 * time.Second
	StatusPollInterval = 5 * time.Second
)

// Server implements proto.ChannelServer for a single channel, keyed by
// Port.
type Server struct {
	proto.UnimplementedChannelServer

	Port uint32
	room *room.Room
}

// New returns a Server for the channel bound to port.
func New(port uint32) *Server {
	return &Server{Port: port, room: room.New()}
}

// ChatSend enqueues text onto every other member's pending chat queue.
// Empty-text messages are a silent no-op, per the shared broadcast rule.
func (s *Server) ChatSend(ctx context.Context, req *proto.Chat) (*proto.Empty, error) {
	if req.Text != "" {
		s.room.Ensure(req.Index)
		s.room.BroadcastChat(req.Index, req)
	}
	return &proto.Empty{}, nil
}

// ChatReceive materialises the member if needed (emitting a JoinUser
// status to all current members when it does) and drains its pending
// chat queue on a 1-second poll until the client disconnects.
func (s *Server) ChatReceive(req *proto.Chat, stream proto.Channel_ChatReceiveServer) error {
	index := req.Index

	firstJoin := !s.room.Has(index)
	s.room.Ensure(index)
	if firstJoin {
		s.room.BroadcastStatus(&proto.StatusReply{Index: index, Status: proto.JoinUser, Channel: s.Port})
	}

	ctx := stream.Context()
	ticker := time.NewTicker(ChatPollInterval)
	defer ticker.Stop()

	for {
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

// StatusRequest emits a JoinUser status to all current members if this
// call is what adds the member to the channel (ChatReceive does the same,
// so whichever of the two arrives first emits it), then drains its
// pending status queue on a 5-second poll until the client disconnects.
func (s *Server) StatusRequest(req *proto.UserRequest, stream proto.Channel_StatusRequestServer) error {
	index := req.Index

	firstJoin := !s.room.Has(index)
	s.room.Ensure(index)
	if firstJoin {
		s.room.BroadcastStatus(&proto.StatusReply{Index: index, Status: proto.JoinUser, Channel: s.Port})
	}

	ctx := stream.Context()
	ticker := time.NewTicker(StatusPollInterval)
	defer ticker.Stop()

	for {
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

// UserRemove removes index from the channel's membership and broadcasts a
// LeaveUser status to the remaining members.
func (s *Server) UserRemove(ctx context.Context, req *proto.UserRequest) (*proto.Empty, error) {
	s.RemoveMember(req.Index)
	return &proto.Empty{}, nil
}

// RemoveMember is the in-process equivalent of UserRemove, used directly
// by the Lobby (which owns this Server in the same process, not over
// RPC) when tearing down channel membership on LeaveChannel/UserRemove.
func (s *Server) RemoveMember(index uint32) {
	if s.room.Remove(index) {
		s.room.BroadcastStatus(&proto.StatusReply{Index: index, Status: proto.LeaveUser, Channel: s.Port})
	}
}

// Empty reports whether the channel currently has no members.
func (s *Server) Empty() bool {
	return s.room.Empty()
}

// Members returns the channel's current membership set.
func (s *Server) Members() []uint32 {
	return s.room.Members()
}
