package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Heartbeat_Heartbeat_FullMethodName  = "/chatmesh.Heartbeat/Heartbeat"
	Heartbeat_IsUserLive_FullMethodName = "/chatmesh.Heartbeat/IsUserLive"
)

// HeartbeatClient is the client API for the Heartbeat service.
type HeartbeatClient interface {
	Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (Heartbeat_HeartbeatClient, error)
	IsUserLive(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UserLivesReply, error)
}

type heartbeatClient struct {
	cc grpc.ClientConnInterface
}

func NewHeartbeatClient(cc grpc.ClientConnInterface) HeartbeatClient {
	return &heartbeatClient{cc}
}

func (c *heartbeatClient) Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (Heartbeat_HeartbeatClient, error) {
	stream, err := c.cc.NewStream(ctx, &Heartbeat_ServiceDesc.Streams[0], Heartbeat_Heartbeat_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &heartbeatHeartbeatClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Heartbeat_HeartbeatClient interface {
	Recv() (*HeartbeatReply, error)
	grpc.ClientStream
}

type heartbeatHeartbeatClient struct {
	grpc.ClientStream
}

func (x *heartbeatHeartbeatClient) Recv() (*HeartbeatReply, error) {
	m := new(HeartbeatReply)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *heartbeatClient) IsUserLive(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UserLivesReply, error) {
	out := new(UserLivesReply)
	if err := c.cc.Invoke(ctx, Heartbeat_IsUserLive_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// HeartbeatServer is the server API for the Heartbeat service.
type HeartbeatServer interface {
	Heartbeat(*HeartbeatRequest, Heartbeat_HeartbeatServer) error
	IsUserLive(context.Context, *UserRequest) (*UserLivesReply, error)
	mustEmbedUnimplementedHeartbeatServer()
}

type Heartbeat_HeartbeatServer interface {
	Send(*HeartbeatReply) error
	grpc.ServerStream
}

type heartbeatHeartbeatServer struct {
	grpc.ServerStream
}

func (x *heartbeatHeartbeatServer) Send(m *HeartbeatReply) error {
	return x.ServerStream.SendMsg(m)
}

type UnimplementedHeartbeatServer struct{}

func (UnimplementedHeartbeatServer) Heartbeat(*HeartbeatRequest, Heartbeat_HeartbeatServer) error {
	return status.Errorf(codes.Unimplemented, "method Heartbeat not implemented")
}
func (UnimplementedHeartbeatServer) IsUserLive(context.Context, *UserRequest) (*UserLivesReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsUserLive not implemented")
}
func (UnimplementedHeartbeatServer) mustEmbedUnimplementedHeartbeatServer() {}

func RegisterHeartbeatServer(s grpc.ServiceRegistrar, srv HeartbeatServer) {
	s.RegisterService(&Heartbeat_ServiceDesc, srv)
}

func _Heartbeat_Heartbeat_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(HeartbeatRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(HeartbeatServer).Heartbeat(m, &heartbeatHeartbeatServer{stream})
}

func _Heartbeat_IsUserLive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HeartbeatServer).IsUserLive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Heartbeat_IsUserLive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HeartbeatServer).IsUserLive(ctx, req.(*UserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var Heartbeat_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chatmesh.Heartbeat",
	HandlerType: (*HeartbeatServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IsUserLive",
			Handler:    _Heartbeat_IsUserLive_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Heartbeat",
			Handler:       _Heartbeat_Heartbeat_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "chat.proto",
}
