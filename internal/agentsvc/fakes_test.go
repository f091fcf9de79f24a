package agentsvc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/riftline/chatmesh/proto"
)

// fakeHeartbeatClient is a minimal proto.HeartbeatClient test double; only
// IsUserLive is exercised by the sweep loop.
type fakeHeartbeatClient struct {
	status proto.LiveStatus
	err    error
}

func (f *fakeHeartbeatClient) Heartbeat(ctx context.Context, in *proto.HeartbeatRequest, opts ...grpc.CallOption) (proto.Heartbeat_HeartbeatClient, error) {
	panic("not used by agentsvc tests")
}

func (f *fakeHeartbeatClient) IsUserLive(ctx context.Context, in *proto.UserRequest, opts ...grpc.CallOption) (*proto.UserLivesReply, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &proto.UserLivesReply{Status: f.status}, nil
}

// fakeLobbyClient is a minimal proto.LobbyClient test double; only
// UserRemove and UserExit are exercised by the sweep loop.
type fakeLobbyClient struct {
	exitStatus   proto.UserStatus
	exitErr      error
	removeErr    error
	onUserRemove func(*proto.UserRequest)
	onUserExit   func(*proto.UserRequest)
}

func (f *fakeLobbyClient) ChatSend(ctx context.Context, in *proto.Chat, opts ...grpc.CallOption) (*proto.Empty, error) {
	panic("not used by agentsvc tests")
}
func (f *fakeLobbyClient) ChatReceive(ctx context.Context, in *proto.Chat, opts ...grpc.CallOption) (proto.Lobby_ChatReceiveClient, error) {
	panic("not used by agentsvc tests")
}
func (f *fakeLobbyClient) StatusRequest(ctx context.Context, in *proto.UserRequest, opts ...grpc.CallOption) (proto.Lobby_StatusRequestClient, error) {
	panic("not used by agentsvc tests")
}
func (f *fakeLobbyClient) Command(ctx context.Context, in *proto.CommandRequest, opts ...grpc.CallOption) (*proto.CommandReply, error) {
	panic("not used by agentsvc tests")
}

func (f *fakeLobbyClient) UserRemove(ctx context.Context, in *proto.UserRequest, opts ...grpc.CallOption) (*proto.Empty, error) {
	if f.onUserRemove != nil {
		f.onUserRemove(in)
	}
	if f.removeErr != nil {
		return nil, f.removeErr
	}
	return &proto.Empty{}, nil
}

func (f *fakeLobbyClient) UserExit(ctx context.Context, in *proto.UserRequest, opts ...grpc.CallOption) (*proto.StatusReply, error) {
	if f.onUserExit != nil {
		f.onUserExit(in)
	}
	if f.exitErr != nil {
		return nil, f.exitErr
	}
	return &proto.StatusReply{Index: in.Index, Status: f.exitStatus}, nil
}
