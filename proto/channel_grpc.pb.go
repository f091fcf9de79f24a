package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Channel_ChatSend_FullMethodName      = "/chatmesh.Channel/ChatSend"
	Channel_ChatReceive_FullMethodName   = "/chatmesh.Channel/ChatReceive"
	Channel_StatusRequest_FullMethodName = "/chatmesh.Channel/StatusRequest"
	Channel_UserRemove_FullMethodName    = "/chatmesh.Channel/UserRemove"
)

// ChannelClient is the client API for the Channel service.
type ChannelClient interface {
	ChatSend(ctx context.Context, in *Chat, opts ...grpc.CallOption) (*Empty, error)
	ChatReceive(ctx context.Context, in *Chat, opts ...grpc.CallOption) (Channel_ChatReceiveClient, error)
	StatusRequest(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (Channel_StatusRequestClient, error)
	UserRemove(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Empty, error)
}

type channelClient struct {
	cc grpc.ClientConnInterface
}

func NewChannelClient(cc grpc.ClientConnInterface) ChannelClient {
	return &channelClient{cc}
}

func (c *channelClient) ChatSend(ctx context.Context, in *Chat, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Channel_ChatSend_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *channelClient) ChatReceive(ctx context.Context, in *Chat, opts ...grpc.CallOption) (Channel_ChatReceiveClient, error) {
	stream, err := c.cc.NewStream(ctx, &Channel_ServiceDesc.Streams[0], Channel_ChatReceive_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &channelChatReceiveClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Channel_ChatReceiveClient interface {
	Recv() (*Chat, error)
	grpc.ClientStream
}

type channelChatReceiveClient struct {
	grpc.ClientStream
}

func (x *channelChatReceiveClient) Recv() (*Chat, error) {
	m := new(Chat)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *channelClient) StatusRequest(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (Channel_StatusRequestClient, error) {
	stream, err := c.cc.NewStream(ctx, &Channel_ServiceDesc.Streams[1], Channel_StatusRequest_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &channelStatusRequestClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Channel_StatusRequestClient interface {
	Recv() (*StatusReply, error)
	grpc.ClientStream
}

type channelStatusRequestClient struct {
	grpc.ClientStream
}

func (x *channelStatusRequestClient) Recv() (*StatusReply, error) {
	m := new(StatusReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *channelClient) UserRemove(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.cc.Invoke(ctx, Channel_UserRemove_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ChannelServer is the server API for the Channel service.
type ChannelServer interface {
	ChatSend(context.Context, *Chat) (*Empty, error)
	ChatReceive(*Chat, Channel_ChatReceiveServer) error
	StatusRequest(*UserRequest, Channel_StatusRequestServer) error
	UserRemove(context.Context, *UserRequest) (*Empty, error)
	mustEmbedUnimplementedChannelServer()
}

type Channel_ChatReceiveServer interface {
	Send(*Chat) error
	grpc.ServerStream
}

type channelChatReceiveServer struct {
	grpc.ServerStream
}

func (x *channelChatReceiveServer) Send(m *Chat) error {
	return x.ServerStream.SendMsg(m)
}

type Channel_StatusRequestServer interface {
	Send(*StatusReply) error
	grpc.ServerStream
}

type channelStatusRequestServer struct {
	grpc.ServerStream
}

func (x *channelStatusRequestServer) Send(m *StatusReply) error {
	return x.ServerStream.SendMsg(m)
}

type UnimplementedChannelServer struct{}

func (UnimplementedChannelServer) ChatSend(context.Context, *Chat) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChatSend not implemented")
}
func (UnimplementedChannelServer) ChatReceive(*Chat, Channel_ChatReceiveServer) error {
	return status.Errorf(codes.Unimplemented, "method ChatReceive not implemented")
}
func (UnimplementedChannelServer) StatusRequest(*UserRequest, Channel_StatusRequestServer) error {
	return status.Errorf(codes.Unimplemented, "method StatusRequest not implemented")
}
func (UnimplementedChannelServer) UserRemove(context.Context, *UserRequest) (*Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UserRemove not implemented")
}
func (UnimplementedChannelServer) mustEmbedUnimplementedChannelServer() {}

func RegisterChannelServer(s grpc.ServiceRegistrar, srv ChannelServer) {
	s.RegisterService(&Channel_ServiceDesc, srv)
}

func _Channel_ChatSend_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Chat)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServer).ChatSend(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Channel_ChatSend_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChannelServer).ChatSend(ctx, req.(*Chat))
	}
	return interceptor(ctx, in, info, handler)
}

func _Channel_ChatReceive_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(Chat)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChannelServer).ChatReceive(m, &channelChatReceiveServer{stream})
}

func _Channel_StatusRequest_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(UserRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChannelServer).StatusRequest(m, &channelStatusRequestServer{stream})
}

func _Channel_UserRemove_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChannelServer).UserRemove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Channel_UserRemove_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChannelServer).UserRemove(ctx, req.(*UserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Channel_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatmesh.Channel",
	HandlerType: (*ChannelServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ChatSend", Handler: _Channel_ChatSend_Handler},
		{MethodName: "UserRemove", Handler: _Channel_UserRemove_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ChatReceive",
			Handler:       _Channel_ChatReceive_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StatusRequest",
			Handler:       _Channel_StatusRequest_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "chat.proto",
}
