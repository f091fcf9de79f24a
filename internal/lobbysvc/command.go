package lobbysvc

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/riftline/chatmesh/internal/channelsvc"
	"github.com/riftline/chatmesh/proto"
)

// Command dispatches on req.Kind. All failures are encoded in the reply's
// Status field rather than as RPC errors, per spec's error-handling design
// for this operation. Every command from a known caller refreshes the
// caller's session validity, whether or not the command succeeds; an
// unknown caller Index fails without touching any state.
func (s *Server) Command(ctx context.Context, req *proto.CommandRequest) (*proto.CommandReply, error) {
	traceID := uuid.New().String()

	s.mu.Lock()
	window, known := s.sessions[req.Index]
	s.mu.Unlock()

	if !known {
		log.Printf("lobbysvc command[%s]: unknown caller index %d", traceID, req.Index)
		return &proto.CommandReply{Status: proto.Failure}, nil
	}
	window.Refresh()

	switch req.Kind {
	case proto.ListChannels:
		return s.handleListChannels(), nil
	case proto.MakeChannel:
		return s.handleMakeChannel(req.Index, traceID), nil
	case proto.JoinChannel:
		return s.handleJoinChannel(req.Index, req.Channel), nil
	case proto.LeaveChannel:
		return s.handleLeaveChannel(req.Index), nil
	case proto.ListUsers:
		return s.handleListUsers(req.Channel), nil
	default:
		log.Printf("lobbysvc command[%s]: unrecognised kind %v", traceID, req.Kind)
		return &proto.CommandReply{Status: proto.Failure}, nil
	}
}

func (s *Server) handleListChannels() *proto.CommandReply {
	s.mu.Lock()
	defer s.mu.Unlock()

	ports := make([]uint32, len(s.channelOrder))
	copy(ports, s.channelOrder)

	return &proto.CommandReply{Status: proto.Success, Channels: ports}
}

func (s *Server) handleMakeChannel(index uint32, traceID string) *proto.CommandReply {
	s.mu.Lock()

	if s.userChannel[index] != 0 {
		s.mu.Unlock()
		return &proto.CommandReply{Status: proto.Failure}
	}

	if len(s.portPool) == 0 {
		s.mu.Unlock()
		return &proto.CommandReply{Status: proto.Failure}
	}

	port := s.portPool[0]
	s.portPool = s.portPool[1:]
	s.mu.Unlock()

	inst, err := channelsvc.Start(s.channelIP, port)
	if err != nil {
		log.Printf("lobbysvc command[%s]: failed to start channel on port %d: %v", traceID, port, err)
		s.mu.Lock()
		s.portPool = append([]uint32{port}, s.portPool...)
		s.mu.Unlock()
		return &proto.CommandReply{Status: proto.Failure}
	}

	s.mu.Lock()
	s.channels[port] = &channelHandle{instance: inst}
	s.channelOrder = append(s.channelOrder, port)
	s.userChannel[index] = port
	s.mu.Unlock()

	log.Printf("lobbysvc command[%s]: channel created on %s", traceID, inst.Address)

	return &proto.CommandReply{
		Status:   proto.Success,
		Address:  inst.Address,
		Channels: []uint32{port},
	}
}

func (s *Server) handleJoinChannel(index, port uint32) *proto.CommandReply {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.channels[port]
	if !ok {
		return &proto.CommandReply{Status: proto.Failure}
	}

	s.userChannel[index] = port
	return &proto.CommandReply{Status: proto.Success, Address: handle.instance.Address}
}

func (s *Server) handleLeaveChannel(index uint32) *proto.CommandReply {
	s.mu.Lock()
	port := s.userChannel[index]
	s.mu.Unlock()

	if port == 0 {
		return &proto.CommandReply{Status: proto.Failure}
	}

	s.removeUserFromChannel(index, port)

	s.mu.Lock()
	s.userChannel[index] = 0
	s.mu.Unlock()

	return &proto.CommandReply{Status: proto.Success}
}

func (s *Server) handleListUsers(channel uint32) *proto.CommandReply {
	s.mu.Lock()
	handle, isChannel := s.channels[channel]
	s.mu.Unlock()

	var users []uint32
	if channel != 0 && isChannel {
		users = handle.instance.Server.Members()
	} else {
		users = s.room.Members()
	}

	s.mu.Lock()
	channels := make([]uint32, len(users))
	for i, u := range users {
		channels[i] = s.userChannel[u]
	}
	s.mu.Unlock()

	return &proto.CommandReply{Status: proto.Success, Users: users, Channels: channels}
}

// removeUserFromChannel removes index from the channel at port (if it
// exists) and, if the channel becomes empty as a result, tears it down
// and returns its port to the front of the pool — LIFO reuse, so the
// most recently freed port is handed out first.
func (s *Server) removeUserFromChannel(index, port uint32) {
	s.mu.Lock()
	handle, ok := s.channels[port]
	s.mu.Unlock()
	if !ok {
		return
	}

	handle.instance.Server.RemoveMember(index)

	if !handle.instance.Server.Empty() {
		return
	}

	s.mu.Lock()
	delete(s.channels, port)
	s.channelOrder = removePort(s.channelOrder, port)
	s.portPool = append([]uint32{port}, s.portPool...)
	s.mu.Unlock()

	go handle.instance.Stop()
}

func removePort(ports []uint32, port uint32) []uint32 {
	out := make([]uint32, 0, len(ports))
	for _, p := range ports {
		if p != port {
			out = append(out, p)
		}
	}
	return out
}
