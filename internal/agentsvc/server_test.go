package agentsvc

import (
	"context"
	"testing"
	"time"

	"github.com/riftline/chatmesh/internal/clock"
	"github.com/riftline/chatmesh/proto"
)

func TestLoginAssignsMonotonicIndices(t *testing.T) {
	s := New("localhost:50051", "localhost:50052", clock.NewFake(time.Unix(0, 0)))
	s.heartbeatClient = &fakeHeartbeatClient{}
	s.lobbyClient = &fakeLobbyClient{}

	r1, err := s.Login(context.Background(), &proto.LoginRequest{IP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if r1.Index != 1 {
		t.Errorf("expected first index to be 1, got %d", r1.Index)
	}
	if r1.HeartbeatAddress != "localhost:50051" || r1.LobbyAddress != "localhost:50052" {
		t.Errorf("unexpected addresses in reply: %+v", r1)
	}

	r2, err := s.Login(context.Background(), &proto.LoginRequest{IP: "10.0.0.2"})
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if r2.Index != 2 {
		t.Errorf("expected second index to be 2, got %d", r2.Index)
	}
}

func TestLoginRejectsDuplicateIP(t *testing.T) {
	s := New("localhost:50051", "localhost:50052", clock.NewFake(time.Unix(0, 0)))
	s.heartbeatClient = &fakeHeartbeatClient{}
	s.lobbyClient = &fakeLobbyClient{}

	if _, err := s.Login(context.Background(), &proto.LoginRequest{IP: "10.0.0.1"}); err != nil {
		t.Fatalf("first login failed: %v", err)
	}

	if _, err := s.Login(context.Background(), &proto.LoginRequest{IP: "10.0.0.1"}); err == nil {
		t.Error("expected duplicate login to fail")
	}
}

func TestLoginAllowsIPAfterDrop(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	s := New("localhost:50051", "localhost:50052", fc)
	s.heartbeatClient = &fakeHeartbeatClient{status: proto.Unknown}
	removed := false
	s.lobbyClient = &fakeLobbyClient{
		onUserRemove: func(*proto.UserRequest) { removed = true },
	}

	r1, err := s.Login(context.Background(), &proto.LoginRequest{IP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if r1.Index != 1 {
		t.Fatalf("expected index 1, got %d", r1.Index)
	}

	fc.Advance(sweepRecheckInterval + time.Second)
	s.sweepOnce(context.Background())
	if !removed {
		t.Fatal("expected sweep to call Lobby.UserRemove for an unknown-live user")
	}

	r2, err := s.Login(context.Background(), &proto.LoginRequest{IP: "10.0.0.1"})
	if err != nil {
		t.Fatalf("expected re-login after drop to succeed, got %v", err)
	}
	if r2.Index != 2 {
		t.Errorf("expected a fresh, strictly-increasing index, got %d", r2.Index)
	}
}
