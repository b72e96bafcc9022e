// Code generated by protoc-gen-go-grpc from proto/aethel.proto. Hand-
// maintained alongside aethel.pb.go for the same reason: no protoc in this
// workspace. Shape follows the standard protoc-gen-go-grpc output
// (ClientConnInterface-based client, ServiceRegistrar-based server
// registration, generated *Client/*Server streaming wrappers).

package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AethelService_CreateContainer_FullMethodName = "/aethel.v1.AethelService/CreateContainer"
	AethelService_GetContainer_FullMethodName    = "/aethel.v1.AethelService/GetContainer"
	AethelService_ListContainers_FullMethodName  = "/aethel.v1.AethelService/ListContainers"
	AethelService_DeleteContainer_FullMethodName = "/aethel.v1.AethelService/DeleteContainer"
	AethelService_StreamLogs_FullMethodName      = "/aethel.v1.AethelService/StreamLogs"
	AethelService_GetDaemonStatus_FullMethodName = "/aethel.v1.AethelService/GetDaemonStatus"
)

// AethelServiceClient is the client API for AethelService.
type AethelServiceClient interface {
	CreateContainer(ctx context.Context, in *CreateContainerRequest, opts ...grpc.CallOption) (*ContainerInfo, error)
	GetContainer(ctx context.Context, in *GetContainerRequest, opts ...grpc.CallOption) (*ContainerInfo, error)
	ListContainers(ctx context.Context, in *ListContainersRequest, opts ...grpc.CallOption) (AethelService_ListContainersClient, error)
	DeleteContainer(ctx context.Context, in *DeleteContainerRequest, opts ...grpc.CallOption) (*DeleteContainerResponse, error)
	StreamLogs(ctx context.Context, in *StreamLogsRequest, opts ...grpc.CallOption) (AethelService_StreamLogsClient, error)
	GetDaemonStatus(ctx context.Context, in *DaemonStatusRequest, opts ...grpc.CallOption) (*DaemonStatusResponse, error)
}

type aethelServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAethelServiceClient returns a client for AethelService bound to cc.
// The command-line client that would construct one is out of scope for
// this repository (spec §1); this exists so the server side has a real
// counterpart to be exercised against in tests.
func NewAethelServiceClient(cc grpc.ClientConnInterface) AethelServiceClient {
	return &aethelServiceClient{cc}
}

func (c *aethelServiceClient) CreateContainer(ctx context.Context, in *CreateContainerRequest, opts ...grpc.CallOption) (*ContainerInfo, error) {
	out := new(ContainerInfo)
	err := c.cc.Invoke(ctx, AethelService_CreateContainer_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *aethelServiceClient) GetContainer(ctx context.Context, in *GetContainerRequest, opts ...grpc.CallOption) (*ContainerInfo, error) {
	out := new(ContainerInfo)
	err := c.cc.Invoke(ctx, AethelService_GetContainer_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *aethelServiceClient) DeleteContainer(ctx context.Context, in *DeleteContainerRequest, opts ...grpc.CallOption) (*DeleteContainerResponse, error) {
	out := new(DeleteContainerResponse)
	err := c.cc.Invoke(ctx, AethelService_DeleteContainer_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *aethelServiceClient) ListContainers(ctx context.Context, in *ListContainersRequest, opts ...grpc.CallOption) (AethelService_ListContainersClient, error) {
	stream, err := c.cc.NewStream(ctx, &AethelService_ServiceDesc.Streams[0], AethelService_ListContainers_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &aethelServiceListContainersClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// AethelService_ListContainersClient is the client-side stream handle for
// ListContainers.
type AethelService_ListContainersClient interface {
	Recv() (*ContainerInfo, error)
	grpc.ClientStream
}

type aethelServiceListContainersClient struct {
	grpc.ClientStream
}

func (x *aethelServiceListContainersClient) Recv() (*ContainerInfo, error) {
	m := new(ContainerInfo)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *aethelServiceClient) StreamLogs(ctx context.Context, in *StreamLogsRequest, opts ...grpc.CallOption) (AethelService_StreamLogsClient, error) {
	stream, err := c.cc.NewStream(ctx, &AethelService_ServiceDesc.Streams[1], AethelService_StreamLogs_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &aethelServiceStreamLogsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *aethelServiceClient) GetDaemonStatus(ctx context.Context, in *DaemonStatusRequest, opts ...grpc.CallOption) (*DaemonStatusResponse, error) {
	out := new(DaemonStatusResponse)
	err := c.cc.Invoke(ctx, AethelService_GetDaemonStatus_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AethelService_StreamLogsClient is the client-side stream handle for
// StreamLogs.
type AethelService_StreamLogsClient interface {
	Recv() (*LogEntry, error)
	grpc.ClientStream
}

type aethelServiceStreamLogsClient struct {
	grpc.ClientStream
}

func (x *aethelServiceStreamLogsClient) Recv() (*LogEntry, error) {
	m := new(LogEntry)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// AethelServiceServer is the server API for AethelService. internal/rpcserver
// implements this interface.
type AethelServiceServer interface {
	CreateContainer(context.Context, *CreateContainerRequest) (*ContainerInfo, error)
	GetContainer(context.Context, *GetContainerRequest) (*ContainerInfo, error)
	ListContainers(*ListContainersRequest, AethelService_ListContainersServer) error
	DeleteContainer(context.Context, *DeleteContainerRequest) (*DeleteContainerResponse, error)
	StreamLogs(*StreamLogsRequest, AethelService_StreamLogsServer) error
	GetDaemonStatus(context.Context, *DaemonStatusRequest) (*DaemonStatusResponse, error)
	mustEmbedUnimplementedAethelServiceServer()
}

// UnimplementedAethelServiceServer must be embedded by every concrete
// server implementation for forward compatibility with future RPCs.
type UnimplementedAethelServiceServer struct{}

func (UnimplementedAethelServiceServer) CreateContainer(context.Context, *CreateContainerRequest) (*ContainerInfo, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateContainer not implemented")
}

func (UnimplementedAethelServiceServer) GetContainer(context.Context, *GetContainerRequest) (*ContainerInfo, error) {
	return nil, status.Error(codes.Unimplemented, "method GetContainer not implemented")
}

func (UnimplementedAethelServiceServer) ListContainers(*ListContainersRequest, AethelService_ListContainersServer) error {
	return status.Error(codes.Unimplemented, "method ListContainers not implemented")
}

func (UnimplementedAethelServiceServer) DeleteContainer(context.Context, *DeleteContainerRequest) (*DeleteContainerResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteContainer not implemented")
}

func (UnimplementedAethelServiceServer) StreamLogs(*StreamLogsRequest, AethelService_StreamLogsServer) error {
	return status.Error(codes.Unimplemented, "method StreamLogs not implemented")
}

func (UnimplementedAethelServiceServer) GetDaemonStatus(context.Context, *DaemonStatusRequest) (*DaemonStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDaemonStatus not implemented")
}

func (UnimplementedAethelServiceServer) mustEmbedUnimplementedAethelServiceServer() {}

// RegisterAethelServiceServer registers srv on s.
func RegisterAethelServiceServer(s grpc.ServiceRegistrar, srv AethelServiceServer) {
	s.RegisterService(&AethelService_ServiceDesc, srv)
}

func _AethelService_CreateContainer_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateContainerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AethelServiceServer).CreateContainer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AethelService_CreateContainer_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AethelServiceServer).CreateContainer(ctx, req.(*CreateContainerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AethelService_GetContainer_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetContainerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AethelServiceServer).GetContainer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AethelService_GetContainer_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AethelServiceServer).GetContainer(ctx, req.(*GetContainerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AethelService_DeleteContainer_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteContainerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AethelServiceServer).DeleteContainer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AethelService_DeleteContainer_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AethelServiceServer).DeleteContainer(ctx, req.(*DeleteContainerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AethelService_GetDaemonStatus_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DaemonStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AethelServiceServer).GetDaemonStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AethelService_GetDaemonStatus_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AethelServiceServer).GetDaemonStatus(ctx, req.(*DaemonStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AethelService_ListContainers_Handler(srv any, stream grpc.ServerStream) error {
	m := new(ListContainersRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AethelServiceServer).ListContainers(m, &aethelServiceListContainersServer{stream})
}

// AethelService_ListContainersServer is the server-side stream handle for
// ListContainers.
type AethelService_ListContainersServer interface {
	Send(*ContainerInfo) error
	grpc.ServerStream
}

type aethelServiceListContainersServer struct {
	grpc.ServerStream
}

func (x *aethelServiceListContainersServer) Send(m *ContainerInfo) error {
	return x.ServerStream.SendMsg(m)
}

func _AethelService_StreamLogs_Handler(srv any, stream grpc.ServerStream) error {
	m := new(StreamLogsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AethelServiceServer).StreamLogs(m, &aethelServiceStreamLogsServer{stream})
}

// AethelService_StreamLogsServer is the server-side stream handle for
// StreamLogs.
type AethelService_StreamLogsServer interface {
	Send(*LogEntry) error
	grpc.ServerStream
}

type aethelServiceStreamLogsServer struct {
	grpc.ServerStream
}

func (x *aethelServiceStreamLogsServer) Send(m *LogEntry) error {
	return x.ServerStream.SendMsg(m)
}

// AethelService_ServiceDesc is the grpc.ServiceDesc for AethelService.
var AethelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "aethel.v1.AethelService",
	HandlerType: (*AethelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateContainer", Handler: _AethelService_CreateContainer_Handler},
		{MethodName: "GetContainer", Handler: _AethelService_GetContainer_Handler},
		{MethodName: "DeleteContainer", Handler: _AethelService_DeleteContainer_Handler},
		{MethodName: "GetDaemonStatus", Handler: _AethelService_GetDaemonStatus_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListContainers", Handler: _AethelService_ListContainers_Handler, ServerStreams: true},
		{StreamName: "StreamLogs", Handler: _AethelService_StreamLogs_Handler, ServerStreams: true},
	},
	Metadata: "proto/aethel.proto",
}
