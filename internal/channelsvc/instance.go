package channelsvc

import (
	"fmt"
	"log"
	"net"

	"google.golang.org/grpc"

	"github.com/riftline/chatmesh/proto"
)

// Instance pairs a running Channel Server with the gRPC listener serving
// it on its own port, so the Lobby can start and stop one as a unit.
type Instance struct {
	Server     *Server
	Port       uint32
	Address    string
	grpcServer *grpc.Server
}

// Start allocates a TCP listener on ip:port, registers a fresh Channel
// Server, and begins serving in a background goroutine.
func Start(ip string, port uint32) (*Instance, error) {
	addr := fmt.Sprintf("%s:%d", ip, port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := New(port)
	grpcServer := grpc.NewServer()
	proto.RegisterChannelServer(grpcServer, srv)

	inst := &Instance{
		Server:     srv,
		Port:       port,
		Address:    addr,
		grpcServer: grpcServer,
	}

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("channelsvc: listener on %s stopped: %v", addr, err)
		}
	}()

	return inst, nil
}

// Stop tears down the channel's gRPC server.
func (i *Instance) Stop() {
	i.grpcServer.GracefulStop()
}
