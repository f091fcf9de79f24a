package room

import (
	"testing"

	"github.com/riftline/chatmesh/proto"
)

func TestBroadcastChatExcludesSender(t *testing.T) {
	r := New()
	r.Ensure(1)
	r.Ensure(2)

	r.BroadcastChat(1, &proto.Chat{Index: 1, Text: "hi"})

	if got := r.DrainChats(1); got != nil {
		t.Errorf("expected sender to receive nothing, got %v", got)
	}
	got := r.DrainChats(2)
	if len(got) != 1 || got[0].Text != "hi" {
		t.Errorf("expected exactly one chat 'hi' for receiver, got %v", got)
	}
}

func TestDrainIsAtomic(t *testing.T) {
	r := New()
	r.Ensure(1)
	r.BroadcastChat(2, &proto.Chat{Index: 2, Text: "first"})

	first := r.DrainChats(1)
	if len(first) != 1 {
		t.Fatalf("expected 1 message, got %d", len(first))
	}

	second := r.DrainChats(1)
	if second != nil {
		t.Errorf("expected drain to clear the queue, got %v", second)
	}
}

func TestRemoveAndEmpty(t *testing.T) {
	r := New()
	r.Ensure(1)

	if r.Empty() {
		t.Fatal("expected room to be non-empty after Ensure")
	}

	if !r.Remove(1) {
		t.Fatal("expected Remove to report the member was present")
	}
	if !r.Empty() {
		t.Fatal("expected room to be empty after removing its only member")
	}
	if r.Remove(1) {
		t.Error("expected second Remove of the same index to report absent")
	}
}

func TestBroadcastStatusExceptSkipsExcludedMember(t *testing.T) {
	r := New()
	r.Ensure(1)
	r.Ensure(2)

	r.BroadcastStatusExcept(1, &proto.StatusReply{Index: 1, Status: proto.JoinUser})

	if got := r.DrainStatuses(1); got != nil {
		t.Errorf("expected excepted member to receive nothing, got %v", got)
	}
	got := r.DrainStatuses(2)
	if len(got) != 1 || got[0].Status != proto.JoinUser {
		t.Errorf("expected one JoinUser status, got %v", got)
	}
}
