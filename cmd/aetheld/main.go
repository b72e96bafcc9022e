// Command aetheld is the daemon side of aethel: the control plane that
// accepts CreateContainer/GetContainer/ListContainers/DeleteContainer/
// StreamLogs RPCs and turns them into namespaced Linux processes.
//
// This binary also plays two roles the way a systems-language daemon
// would use argv[0] to dispatch: when os.Args[1] is launch.ReexecArg, the
// process is actually a freshly re-exec'd container init helper (see
// internal/launch), not the daemon, and main dispatches into RunChild
// before anything else — a cobra/kong command tree never even gets built
// on that path, matching cmd/sand's own early verifyPrerequisites-style
// short-circuit before its normal CLI.Run.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/aethelrun/aetheld/internal/actor"
	"github.com/aethelrun/aetheld/internal/config"
	"github.com/aethelrun/aetheld/internal/launch"
	"github.com/aethelrun/aetheld/internal/netprov"
	"github.com/aethelrun/aetheld/internal/ociimage"
	"github.com/aethelrun/aetheld/internal/rpcserver"
	"github.com/aethelrun/aetheld/internal/telemetry"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == launch.ReexecArg {
		launch.RunChild(os.Args[2:])
		return
	}

	cli, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "aetheld: %v\n", err)
		os.Exit(1)
	}

	log := config.InitLogging(cli)
	log.Info("aetheld starting", "images_dir", cli.ImagesDir, "rootfs_dir", cli.RootfsDir, "listen_addr", cli.ListenAddr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Init(ctx, cli.OTLPEndpoint, "aetheld")
	if err != nil {
		log.Error("failed to initialize tracing, continuing without it", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	netProv := netprov.New()
	if err := netProv.SetupBridge(); err != nil {
		// Degraded startup is not fatal (spec §9 open question, resolved
		// in DESIGN.md): containers still get created, just without
		// working networking, until an operator fixes the host.
		log.Warn("bridge setup failed, containers will run without network until this is fixed", "error", err)
	}

	materializer := ociimage.New(cli.ImagesDir, cli.RootfsDir)
	a := actor.New(materializer, actor.BuilderFunc(launch.Build), netProv, log)
	go a.Run(ctx)

	lis, err := net.Listen("tcp", cli.ListenAddr)
	if err != nil {
		log.Error("failed to bind listen address", "addr", cli.ListenAddr, "error", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(telemetry.ServerOption())
	rpcserver.Register(grpcServer, rpcserver.New(a, log))

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	log.Info("aetheld listening", "addr", cli.ListenAddr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Error("gRPC server exited with error", "error", err)
		os.Exit(1)
	}
}
