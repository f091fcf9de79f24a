package channelsvc

import (
	"testing"

	"github.com/riftline/chatmesh/proto"
)

func TestChatSendBroadcastsExcludingSender(t *testing.T) {
	s := New(50054)
	s.room.Ensure(1)
	s.room.Ensure(2)

	if _, err := s.ChatSend(nil, &proto.Chat{Index: 1, Text: "hi"}); err != nil {
		t.Fatalf("ChatSend returned error: %v", err)
	}

	if got := s.room.DrainChats(1); got != nil {
		t.Errorf("expected sender to receive nothing, got %v", got)
	}
	got := s.room.DrainChats(2)
	if len(got) != 1 || got[0].Text != "hi" {
		t.Errorf("expected one chat 'hi', got %v", got)
	}
}

func TestChatSendIgnoresEmptyText(t *testing.T) {
	s := New(50054)
	s.room.Ensure(1)
	s.room.Ensure(2)

	if _, err := s.ChatSend(nil, &proto.Chat{Index: 1, Text: ""}); err != nil {
		t.Fatalf("ChatSend returned error: %v", err)
	}

	if got := s.room.DrainChats(2); got != nil {
		t.Errorf("expected no broadcast for empty text, got %v", got)
	}
}

func TestRemoveMemberBroadcastsLeaveToRemaining(t *testing.T) {
	s := New(50054)
	s.room.Ensure(1)
	s.room.Ensure(2)

	s.RemoveMember(1)

	if s.room.Has(1) {
		t.Error("expected member 1 to be removed")
	}
	got := s.room.DrainStatuses(2)
	if len(got) != 1 || got[0].Status != proto.LeaveUser || got[0].Channel != 50054 {
		t.Errorf("expected one LeaveUser status for channel 50054, got %v", got)
	}
}

func TestRemoveMemberNoOpWhenAbsent(t *testing.T) {
	s := New(50054)
	s.room.Ensure(2)

	s.RemoveMember(99)

	if got := s.room.DrainStatuses(2); got != nil {
		t.Errorf("expected no status broadcast for removing an absent member, got %v", got)
	}
}

func TestEmptyReflectsMembership(t *testing.T) {
	s := New(50054)
	if !s.Empty() {
		t.Fatal("expected a freshly created channel to be empty")
	}

	s.room.Ensure(1)
	if s.Empty() {
		t.Fatal("expected channel to be non-empty after a member joins")
	}

	s.RemoveMember(1)
	if !s.Empty() {
		t.Fatal("expected channel to be empty again after its only member leaves")
	}
}
