package lobbysvc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/metadata"

	"github.com/riftline/chatmesh/internal/clock"
	"github.com/riftline/chatmesh/proto"
)

// fakeChatStream implements proto.Lobby_ChatReceiveServer without a network
// connection.
type fakeChatStream struct {
	ctx  context.Context
	sent chan *proto.Chat
}

func (f *fakeChatStream) Send(m *proto.Chat) error {
	f.sent <- m
	return nil
}
func (f *fakeChatStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeChatStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeChatStream) SetTrailer(metadata.MD)       {}
func (f *fakeChatStream) Context() context.Context     { return f.ctx }
func (f *fakeChatStream) SendMsg(m interface{}) error  { return nil }
func (f *fakeChatStream) RecvMsg(m interface{}) error  { return nil }

// fakeStatusStream implements proto.Lobby_StatusRequestServer.
type fakeStatusStream struct {
	ctx  context.Context
	sent chan *proto.StatusReply
}

func (f *fakeStatusStream) Send(m *proto.StatusReply) error {
	f.sent <- m
	return nil
}
func (f *fakeStatusStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeStatusStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeStatusStream) SetTrailer(metadata.MD)       {}
func (f *fakeStatusStream) Context() context.Context     { return f.ctx }
func (f *fakeStatusStream) SendMsg(m interface{}) error  { return nil }
func (f *fakeStatusStream) RecvMsg(m interface{}) error  { return nil }

func TestChatSendBroadcastsToOthersNotSender(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))

	loginUser(s, 1)
	loginUser(s, 2)

	if _, err := s.ChatSend(context.Background(), &proto.Chat{Index: 1, Text: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if chats := s.room.DrainChats(1); len(chats) != 0 {
		t.Errorf("expected the sender to not receive its own chat, got %v", chats)
	}
	if chats := s.room.DrainChats(2); len(chats) != 1 || chats[0].Text != "hi" {
		t.Errorf("expected the other member to receive the chat, got %v", chats)
	}
}

func TestChatSendEmptyTextIsNoOp(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))
	loginUser(s, 1)
	loginUser(s, 2)

	if _, err := s.ChatSend(context.Background(), &proto.Chat{Index: 1, Text: ""}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chats := s.room.DrainChats(2); len(chats) != 0 {
		t.Errorf("expected no chat queued for empty text, got %v", chats)
	}
}

func TestChatReceiveDeliversQueuedChats(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))
	loginUser(s, 1)
	loginUser(s, 2)

	ctx, cancel := context.WithCancel(context.Background())
	stream := &fakeChatStream{ctx: ctx, sent: make(chan *proto.Chat, 4)}

	done := make(chan error, 1)
	go func() {
		done <- s.ChatReceive(&proto.Chat{Index: 2}, stream)
	}()

	if _, err := s.ChatSend(context.Background(), &proto.Chat{Index: 1, Text: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case chat := <-stream.sent:
		if chat.Text != "hello" || chat.Index != 1 {
			t.Errorf("expected chat {1 hello}, got %+v", chat)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the chat to be delivered")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("expected ChatReceive to return nil on cancellation, got %v", err)
	}
}

func TestStatusRequestDeliversQueuedJoin(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))
	loginUser(s, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := &fakeStatusStream{ctx: ctx, sent: make(chan *proto.StatusReply, 4)}

	done := make(chan error, 1)
	go func() {
		done <- s.StatusRequest(&proto.UserRequest{Index: 1}, stream)
	}()

	s.room.QueueStatus(1, &proto.StatusReply{Index: 1, Status: proto.JoinUser})

	select {
	case evt := <-stream.sent:
		if evt.Status != proto.JoinUser {
			t.Errorf("expected JoinUser, got %v", evt.Status)
		}
	case <-time.After(6 * time.Second):
		t.Fatal("timed out waiting for the status event")
	}

	cancel()
	<-done
}

func TestUserRemoveClearsDirectoryAndRoom(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))
	loginUser(s, 1)
	loginUser(s, 2)

	if _, err := s.UserRemove(context.Background(), &proto.UserRequest{Index: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.mu.Lock()
	_, known := s.sessions[1]
	s.mu.Unlock()
	if known {
		t.Error("expected the removed user's session to be gone")
	}

	if _, err := s.ChatSend(context.Background(), &proto.Chat{Index: 2, Text: "still here"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chats := s.room.DrainChats(1); len(chats) != 0 {
		t.Errorf("expected a removed member to receive nothing, got %v", chats)
	}
}

func TestUserRemoveIsIdempotent(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))
	loginUser(s, 1)

	if _, err := s.UserRemove(context.Background(), &proto.UserRequest{Index: 1}); err != nil {
		t.Fatalf("unexpected error on first removal: %v", err)
	}
	if _, err := s.UserRemove(context.Background(), &proto.UserRequest{Index: 1}); err != nil {
		t.Errorf("expected a repeated UserRemove to be a no-op, got error: %v", err)
	}
}

func TestUserExitOkBeforeExpiry(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	s := New("127.0.0.1", nil, fc)
	loginUser(s, 1)

	reply, err := s.UserExit(context.Background(), &proto.UserRequest{Index: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Status != proto.Ok {
		t.Errorf("expected Ok before the session window expires, got %v", reply.Status)
	}
}

func TestUserExitQuitAfterExpiry(t *testing.T) {
	fc := clock.NewFake(time.Unix(0, 0))
	s := New("127.0.0.1", nil, fc)
	loginUser(s, 1)

	fc.Advance(61 * time.Second)

	reply, err := s.UserExit(context.Background(), &proto.UserRequest{Index: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Status != proto.Quit {
		t.Errorf("expected Quit after the session window expires, got %v", reply.Status)
	}
}

func TestUserExitOkForNeverMaterialisedUser(t *testing.T) {
	s := New("127.0.0.1", nil, clock.NewFake(time.Unix(0, 0)))

	reply, err := s.UserExit(context.Background(), &proto.UserRequest{Index: 99})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply.Status != proto.Ok {
		t.Errorf("expected Ok for a user the Lobby never materialised, got %v", reply.Status)
	}
}
