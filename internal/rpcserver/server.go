// Package rpcserver wires the actor to the outside world over
// google.golang.org/grpc (spec §4.8: "the RPC facade translates wire
// requests into actor commands and actor errors into RPC status codes,
// and does nothing else"). It is the one place in this repository that
// imports both internal/actor and internal/aethelerr's Kind alongside
// grpc/status/codes, matching the teacher's habit of keeping transport
// concerns at the command-surface boundary (cmd/sand's cobra layer) and
// out of the packages underneath it.
package rpcserver

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/aethelrun/aetheld/internal/actor"
	"github.com/aethelrun/aetheld/internal/aethelerr"
	"github.com/aethelrun/aetheld/internal/logbus"
	"github.com/aethelrun/aetheld/pb"
	"github.com/aethelrun/aetheld/version"
)

// Actor is the subset of *actor.Actor the server depends on, so tests can
// substitute a fake without running a real actor goroutine.
type Actor interface {
	Create(ctx context.Context, image, name, command string, args []string) (actor.ContainerInfo, error)
	Get(ctx context.Context, id string) (actor.ContainerInfo, error)
	List(ctx context.Context) ([]actor.ContainerInfo, error)
	Delete(ctx context.Context, id string) error
	GetLogBroadcaster(ctx context.Context, id string) (*logbus.Broadcaster, error)
}

// Server implements pb.AethelServiceServer on top of an Actor.
type Server struct {
	pb.UnimplementedAethelServiceServer

	actor Actor
	log   *slog.Logger
}

// New constructs a Server. log may be nil, in which case slog.Default is
// used.
func New(a Actor, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{actor: a, log: log}
}

// Register registers the server on s, wiring in the legacy pb.Codec
// transparently (pb's init already did that process-wide).
func Register(s *grpc.Server, srv *Server) {
	pb.RegisterAethelServiceServer(s, srv)
}

func (s *Server) CreateContainer(ctx context.Context, req *pb.CreateContainerRequest) (*pb.ContainerInfo, error) {
	info, err := s.actor.Create(ctx, req.GetImageName(), req.GetName(), req.GetCommand(), req.GetArgs())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWire(info), nil
}

func (s *Server) GetContainer(ctx context.Context, req *pb.GetContainerRequest) (*pb.ContainerInfo, error) {
	info, err := s.actor.Get(ctx, req.GetContainerId())
	if err != nil {
		return nil, toStatus(err)
	}
	return toWire(info), nil
}

func (s *Server) DeleteContainer(ctx context.Context, req *pb.DeleteContainerRequest) (*pb.DeleteContainerResponse, error) {
	if err := s.actor.Delete(ctx, req.GetContainerId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteContainerResponse{}, nil
}

func (s *Server) GetDaemonStatus(ctx context.Context, req *pb.DaemonStatusRequest) (*pb.DaemonStatusResponse, error) {
	info := version.Get()
	goVersion := ""
	if info.BuildInfo != nil {
		goVersion = info.BuildInfo.GoVersion
	}
	return &pb.DaemonStatusResponse{
		GitRepo:   info.GitRepo,
		GitBranch: info.GitBranch,
		GitCommit: info.GitCommit,
		BuildTime: info.BuildTime,
		GoVersion: goVersion,
	}, nil
}

func (s *Server) ListContainers(req *pb.ListContainersRequest, stream pb.AethelService_ListContainersServer) error {
	infos, err := s.actor.List(stream.Context())
	if err != nil {
		return toStatus(err)
	}
	for _, info := range infos {
		if err := stream.Send(toWire(info)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) StreamLogs(req *pb.StreamLogsRequest, stream pb.AethelService_StreamLogsServer) error {
	broadcaster, err := s.actor.GetLogBroadcaster(stream.Context(), req.GetContainerId())
	if err != nil {
		return toStatus(err)
	}
	if broadcaster == nil {
		return status.Errorf(codes.NotFound, "container %q not found", req.GetContainerId())
	}
	sub := broadcaster.Subscribe()
	defer sub.Unsubscribe()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case chunk, ok := <-sub.C:
			if !ok {
				// Broadcaster closed: the container was deleted (spec §3,
				// logs destroyed atomically with deletion). End the stream
				// rather than returning an error — the client asked for a
				// log tail, not a promise the container still exists.
				return nil
			}
			if err := stream.Send(&pb.LogEntry{Entry: chunk}); err != nil {
				return err
			}
		}
	}
}

func toWire(info actor.ContainerInfo) *pb.ContainerInfo {
	var ip string
	if info.IP != nil {
		ip = info.IP.String()
	}
	return &pb.ContainerInfo{
		Id:        info.ID,
		Name:      info.Name,
		Image:     info.Image,
		Status:    string(info.Status),
		IpAddress: ip,
	}
}

// toStatus maps the daemon's transport-agnostic error taxonomy (spec §7)
// onto gRPC status codes. This is the only place that mapping happens.
func toStatus(err error) error {
	var aerr *aethelerr.Error
	if !errors.As(err, &aerr) {
		return status.Error(codes.Internal, err.Error())
	}
	switch aerr.Kind {
	case aethelerr.KindNotFound:
		return status.Error(codes.NotFound, aerr.Error())
	case aethelerr.KindImage:
		return status.Error(codes.FailedPrecondition, aerr.Error())
	case aethelerr.KindSyscall, aethelerr.KindContainerSetup, aethelerr.KindNamespace:
		return status.Error(codes.Internal, aerr.Error())
	case aethelerr.KindNetwork:
		return status.Error(codes.ResourceExhausted, aerr.Error())
	case aethelerr.KindIO:
		return status.Error(codes.Unavailable, aerr.Error())
	default:
		return status.Error(codes.Unknown, aerr.Error())
	}
}

// Listen is a small convenience: resolve addr and return a TCP listener.
// cmd/aetheld does not call it; it calls net.Listen itself.
func Listen(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
