// Package room implements the broadcast-room semantics shared by the
// Lobby's default room and every dynamically created Channel: a set of
// members, each with a pending chat queue and a pending status queue
// drained by its own long-lived stream.
//
// Design notes §9 flags a race in the source between "copy out" and
// "clear" on a member's queue; DrainChats and DrainStatuses below close it
// by holding the lock
// across both steps, so a message enqueued concurrently either lands
// before the copy (and is drained) or after it (and survives for the next
// drain) — never lost.
package room

import (
	"sync"

	"github.com/riftline/chatmesh/proto"
)

type member struct {
	chats    []*proto.Chat
	statuses []*proto.StatusReply
}

// Room tracks membership and pending per-user queues for one broadcast
// room (the Lobby's own, or a single Channel's).
type Room struct {
	mu      sync.Mutex
	members map[uint32]*member
}

// New returns an empty room.
func New() *Room {
	return &Room{members: make(map[uint32]*member)}
}

// Ensure materialises a member entry for index if it does not already
// exist, mirroring lobby.py's lazy __get_user.
func (r *Room) Ensure(index uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLocked(index)
}

func (r *Room) ensureLocked(index uint32) *member {
	m, ok := r.members[index]
	if !ok {
		m = &member{}
		r.members[index] = m
	}
	return m
}

// Has reports whether index is currently a member.
func (r *Room) Has(index uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.members[index]
	return ok
}

// Remove drops index from the room, returning whether it was present.
func (r *Room) Remove(index uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[index]; !ok {
		return false
	}
	delete(r.members, index)
	return true
}

// Members returns the current membership set. Order is unspecified.
func (r *Room) Members() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, 0, len(r.members))
	for index := range r.members {
		out = append(out, index)
	}
	return out
}

// Size reports the current membership count.
func (r *Room) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Empty reports whether the room currently has no members.
func (r *Room) Empty() bool {
	return r.Size() == 0
}

// BroadcastChat enqueues chat onto every member's pending chat queue except
// sender's. Empty-text messages are a no-op at the caller (ChatSend checks
// this before calling), per spec's broadcast rule.
func (r *Room) BroadcastChat(sender uint32, chat *proto.Chat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for index, m := range r.members {
		if index == sender {
			continue
		}
		m.chats = append(m.chats, chat)
	}
}

// DrainChats atomically removes and returns everything queued for index.
func (r *Room) DrainChats(index uint32) []*proto.Chat {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.ensureLocked(index)
	if len(m.chats) == 0 {
		return nil
	}
	out := m.chats
	m.chats = nil
	return out
}

// BroadcastStatus enqueues status onto every current member's pending
// status queue, the subject included if it is still a member. Channel's
// RemoveMember removes the departing member before calling it, so its
// LeaveUser reaches only the remaining members; BroadcastStatusExcept
// skips one member explicitly.
func (r *Room) BroadcastStatus(status *proto.StatusReply) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		m.statuses = append(m.statuses, status)
	}
}

// BroadcastStatusExcept is BroadcastStatus but skipping one member.
func (r *Room) BroadcastStatusExcept(except uint32, status *proto.StatusReply) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for index, m := range r.members {
		if index == except {
			continue
		}
		m.statuses = append(m.statuses, status)
	}
}

// QueueStatus enqueues status for a single member only.
func (r *Room) QueueStatus(index uint32, status *proto.StatusReply) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.ensureLocked(index)
	m.statuses = append(m.statuses, status)
}

// DrainStatuses atomically removes and returns everything queued for index.
func (r *Room) DrainStatuses(index uint32) []*proto.StatusReply {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.ensureLocked(index)
	if len(m.statuses) == 0 {
		return nil
	}
	out := m.statuses
	m.statuses = nil
	return out
}
