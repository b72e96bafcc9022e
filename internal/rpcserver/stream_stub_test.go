package rpcserver

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// grpcServerStreamStub implements grpc.ServerStream's non-Send methods
// with the minimum needed to drive Server.ListContainers/StreamLogs in
// tests without a real network connection.
type grpcServerStreamStub struct{}

func (grpcServerStreamStub) SetHeader(metadata.MD) error  { return nil }
func (grpcServerStreamStub) SendHeader(metadata.MD) error { return nil }
func (grpcServerStreamStub) SetTrailer(metadata.MD)       {}
func (grpcServerStreamStub) Context() context.Context     { return context.Background() }
func (grpcServerStreamStub) SendMsg(m any) error          { return nil }
func (grpcServerStreamStub) RecvMsg(m any) error          { return nil }
