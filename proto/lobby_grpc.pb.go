package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Lobby_ChatSend_FullMethodName      = "/chatmesh.Lobby/ChatSend"
	Lobby_ChatReceive_FullMethodName   = "/chatmesh.Lobby/ChatReceive"
	Lobby_StatusRequest_FullMethodName = "/chatmesh.Lobby/StatusRequest"
	Lobby_Command_FullMethodName       = "/chatmesh.Lobby/Command"
	Lobby_UserRemove_FullMethodName    = "/chatmesh.Lobby/UserRemove"
	Lobby_UserExit_FullMethodName      = "/chatmesh.Lobby/UserExit"
)

// LobbyClient is the client API for the Lobby service.
type LobbyClient interface {
	ChatSend(ctx context.Context, in *Chat, opts ...grpc.CallOption) (*Empty, error)
	ChatReceive(ctx context.Context, in *Chat, opts ...grpc.CallOption) (Lobby_ChatReceiveClient, error)
	StatusRequest(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (Lobby_StatusRequestClient, error)
	Command(ctx context.Context, in *CommandRequest, opts ...grpc.CallOption) (*CommandReply, error)
	UserRemove(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Empty, error)
	UserExit(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StatusReply, error)
}

type lobbyClient struct {
	cc grpc.ClientConnInterface
}

func NewLobbyClient(cc grpc.ClientConnInterface) LobbyClient {
	return &lobbyClient{cc}
}

func (c *lobbyClient) ChatSend(ctx context.Context, in *Chat, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Lobby_ChatSend_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lobbyClient) ChatReceive(ctx context.Context, in *Chat, opts ...grpc.CallOption) (Lobby_ChatReceiveClient, error) {
	stream, err := c.cc.NewStream(ctx, &Lobby_ServiceDesc.Streams[0], Lobby_ChatReceive_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &lobbyChatReceiveClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Lobby_ChatReceiveClient interface {
	Recv() (*Chat, error)
	grpc.ClientStream
}

type lobbyChatReceiveClient struct {
	grpc.ClientStream
}

func (x *lobbyChatReceiveClient) Recv() (*Chat, error) {
	m := new(Chat)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *lobbyClient) StatusRequest(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (Lobby_StatusRequestClient, error) {
	stream, err := c.cc.NewStream(ctx, &Lobby_ServiceDesc.Streams[1], Lobby_StatusRequest_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &lobbyStatusRequestClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Lobby_StatusRequestClient interface {
	Recv() (*StatusReply, error)
	grpc.ClientStream
}

type lobbyStatusRequestClient struct {
	grpc.ClientStream
}

func (x *lobbyStatusRequestClient) Recv() (*StatusReply, error) {
	m := new(StatusReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *lobbyClient) Command(ctx context.Context, in *CommandRequest, opts ...grpc.CallOption) (*CommandReply, error) {
	out := new(CommandReply)
	if err := c.cc.Invoke(ctx, Lobby_Command_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lobbyClient) UserRemove(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Lobby_UserRemove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *lobbyClient) UserExit(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StatusReply, error) {
	out := new(StatusReply)
	if err := c.cc.Invoke(ctx, Lobby_UserExit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// LobbyServer is the server API for the Lobby service.
type LobbyServer interface {
	ChatSend(context.Context, *Chat) (*Empty, error)
	ChatReceive(*Chat, Lobby_ChatReceiveServer) error
	StatusRequest(*UserRequest, Lobby_StatusRequestServer) error
	Command(context.Context, *CommandRequest) (*CommandReply, error)
	UserRemove(context.Context, *UserRequest) (*Empty, error)
	UserExit(context.Context, *UserRequest) (*StatusReply, error)
	mustEmbedUnimplementedLobbyServer()
}

type Lobby_ChatReceiveServer interface {
	Send(*Chat) error
	grpc.ServerStream
}

type lobbyChatReceiveServer struct {
	grpc.ServerStream
}

func (x *lobbyChatReceiveServer) Send(m *Chat) error {
	return x.ServerStream.SendMsg(m)
}

type Lobby_StatusRequestServer interface {
	Send(*StatusReply) error
	grpc.ServerStream
}

type lobbyStatusRequestServer struct {
	grpc.ServerStream
}

func (x *lobbyStatusRequestServer) Send(m *StatusReply) error {
	return x.ServerStream.SendMsg(m)
}

type UnimplementedLobbyServer struct{}

func (UnimplementedLobbyServer) ChatSend(context.Context, *Chat) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChatSend not implemented")
}
func (UnimplementedLobbyServer) ChatReceive(*Chat, Lobby_ChatReceiveServer) error {
	return status.Errorf(codes.Unimplemented, "method ChatReceive not implemented")
}
func (UnimplementedLobbyServer) StatusRequest(*UserRequest, Lobby_StatusRequestServer) error {
	return status.Errorf(codes.Unimplemented, "method StatusRequest not implemented")
}
func (UnimplementedLobbyServer) Command(context.Context, *CommandRequest) (*CommandReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Command not implemented")
}
func (UnimplementedLobbyServer) UserRemove(context.Context, *UserRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UserRemove not implemented")
}
func (UnimplementedLobbyServer) UserExit(context.Context, *UserRequest) (*StatusReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UserExit not implemented")
}
func (UnimplementedLobbyServer) mustEmbedUnimplementedLobbyServer() {}

func RegisterLobbyServer(s grpc.ServiceRegistrar, srv LobbyServer) {
	s.RegisterService(&Lobby_ServiceDesc, srv)
}

func _Lobby_ChatSend_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Chat)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LobbyServer).ChatSend(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Lobby_ChatSend_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LobbyServer).ChatSend(ctx, req.(*Chat))
	}
	return interceptor(ctx, in, info, handler)
}

func _Lobby_ChatReceive_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Chat)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(LobbyServer).ChatReceive(m, &lobbyChatReceiveServer{stream})
}

func _Lobby_StatusRequest_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(UserRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(LobbyServer).StatusRequest(m, &lobbyStatusRequestServer{stream})
}

func _Lobby_Command_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LobbyServer).Command(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Lobby_Command_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LobbyServer).Command(ctx, req.(*CommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Lobby_UserRemove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LobbyServer).UserRemove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Lobby_UserRemove_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LobbyServer).UserRemove(ctx, req.(*UserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Lobby_UserExit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LobbyServer).UserExit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Lobby_UserExit_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LobbyServer).UserExit(ctx, req.(*UserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Lobby_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatmesh.Lobby",
	HandlerType: (*LobbyServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ChatSend", Handler: _Lobby_ChatSend_Handler},
		{MethodName: "Command", Handler: _Lobby_Command_Handler},
		{MethodName: "UserRemove", Handler: _Lobby_UserRemove_Handler},
		{MethodName: "UserExit", Handler: _Lobby_UserExit_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ChatReceive",
			Handler:       _Lobby_ChatReceive_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StatusRequest",
			Handler:       _Lobby_StatusRequest_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "chat.proto",
}
