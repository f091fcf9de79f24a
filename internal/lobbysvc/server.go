// Package lobbysvc implements the authoritative user/channel directory,
// the Lobby's own default broadcast room, and the command surface that
// creates, lists, joins, and tears down Channels.
package lobbysvc

import (
	"sync"

	"github.com/riftline/chatmesh/internal/channelsvc"
	"github.com/riftline/chatmesh/internal/clock"
	"github.com/riftline/chatmesh/internal/room"
	"github.com/riftline/chatmesh/internal/session"
	"github.com/riftline/chatmesh/proto"
)

// channelHandle wraps a running Channel instance. Creation order, which
// ListChannels reports the way Python's collections.OrderedDict does, is
// kept separately in Server.channelOrder.
type channelHandle struct {
	instance *channelsvc.Instance
}

// Server implements proto.LobbyServer.
type Server struct {
	proto.UnimplementedLobbyServer

	channelIP string
	clk       clock.Clock

	mu           sync.Mutex
	room         *room.Room
	userChannel  map[uint32]uint32
	sessions     map[uint32]*session.Window
	channels     map[uint32]*channelHandle
	channelOrder []uint32
	portPool     []uint32
}

// New returns a Server that instantiates Channels on channelIP, drawing
// ports from the front of pool (pool is copied; the original slice is not
// retained or mutated).
func New(channelIP string, pool []uint32, clk clock.Clock) *Server {
	portPool := make([]uint32, len(pool))
	copy(portPool, pool)

	return &Server{
		channelIP:   channelIP,
		clk:         clk,
		room:        room.New(),
		userChannel: make(map[uint32]uint32),
		sessions:    make(map[uint32]*session.Window),
		channels:    make(map[uint32]*channelHandle),
		portPool:    portPool,
	}
}

// ensureUserLocked materialises directory state for index if missing,
// mirroring lobby.py's lazy __get_user. Callers must hold s.mu.
func (s *Server) ensureUserLocked(index uint32) {
	if _, ok := s.sessions[index]; !ok {
		s.sessions[index] = session.New(s.clk)
	}
	s.room.Ensure(index)
}

// StatusSnapshot is the read-only state the HTTP introspection surface
// reports.
type StatusSnapshot struct {
	UserCount    int      `json:"userCount"`
	ChannelPorts []uint32 `json:"channelPorts"`
}

// Snapshot returns a point-in-time view of directory size for
// introspection (see httpserver.go).
func (s *Server) Snapshot() StatusSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ports := make([]uint32, len(s.channelOrder))
	copy(ports, s.channelOrder)

	return StatusSnapshot{
		UserCount:    s.room.Size(),
		ChannelPorts: ports,
	}
}
