// Package actor implements the daemon's state actor (spec §4.6): the sole
// writer of the container registry, IP allocator, and log broadcasters.
// It consumes typed commands from a bounded channel, one at a time, so
// that no other goroutine ever needs a lock to touch this state — the
// Go-channel equivalent of the Rust prototype's Tokio actor task.
package actor

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/aethelrun/aetheld/internal/aethelerr"
	"github.com/aethelrun/aetheld/internal/launch"
	"github.com/aethelrun/aetheld/internal/logbus"
)

// Status mirrors the container record's lifecycle state (spec §3): there
// is no Created intermediate, a record only exists once launched.
type Status string

const (
	StatusRunning Status = "Running"
	StatusStopped Status = "Stopped"
)

// ContainerInfo is the transport-agnostic container record returned by
// every actor command. internal/rpcserver converts it to/from the wire
// ContainerInfo message.
type ContainerInfo struct {
	ID        string
	Name      string
	Image     string
	Status    Status
	PID       int
	IP        net.IP
	Command   string
	Args      []string
	CreatedAt time.Time
}

// ImageMaterializer is the subset of internal/ociimage.Materializer the
// actor depends on.
type ImageMaterializer interface {
	PrepareRootfs(imageName string) (string, error)
}

// ContainerBuilder is the subset of internal/launch the actor depends on.
type ContainerBuilder interface {
	Build(id, command string, args []string, rootfsPath string) (*launch.Handle, error)
}

// BuilderFunc adapts a plain function (such as launch.Build) to
// ContainerBuilder.
type BuilderFunc func(id, command string, args []string, rootfsPath string) (*launch.Handle, error)

func (f BuilderFunc) Build(id, command string, args []string, rootfsPath string) (*launch.Handle, error) {
	return f(id, command, args, rootfsPath)
}

// NetworkProvisioner is the subset of internal/netprov the actor depends
// on.
type NetworkProvisioner interface {
	WireContainer(containerPID int, containerID string, ip net.IP) error
}

const (
	firstIPOctet = 2
	lastIPOctet  = 255
)

// Actor owns the container registry and processes commands serially.
// Construct with New and start its loop with Run in its own goroutine.
type Actor struct {
	materializer ImageMaterializer
	builder      ContainerBuilder
	netProv      NetworkProvisioner
	log          *slog.Logger

	inbox chan any

	records      map[string]ContainerInfo
	broadcasters map[string]*logbus.Broadcaster
	nextOctet    int
}

// New constructs an Actor. Call Run to start processing commands.
func New(materializer ImageMaterializer, builder ContainerBuilder, netProv NetworkProvisioner, log *slog.Logger) *Actor {
	if log == nil {
		log = slog.Default()
	}
	return &Actor{
		materializer: materializer,
		builder:      builder,
		netProv:      netProv,
		log:          log,
		inbox:        make(chan any, 64),
		records:      make(map[string]ContainerInfo),
		broadcasters: make(map[string]*logbus.Broadcaster),
		nextOctet:    firstIPOctet,
	}
}

// Run processes commands from the inbox until ctx is cancelled. It is
// meant to be the body of a single dedicated goroutine; no other goroutine
// may touch Actor's internal maps directly (spec §5 "single-writer
// invariant").
func (a *Actor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-a.inbox:
			a.dispatch(cmd)
		}
	}
}

func (a *Actor) dispatch(cmd any) {
	switch c := cmd.(type) {
	case createCmd:
		a.handleCreate(c)
	case getCmd:
		a.handleGet(c)
	case listCmd:
		a.handleList(c)
	case deleteCmd:
		a.handleDelete(c)
	case logBroadcasterCmd:
		a.handleGetLogBroadcaster(c)
	}
}

// send enqueues cmd and is shared by every public method below. It
// respects ctx cancellation on the enqueue side; the reply side is
// handled by each caller so that a dropped reply channel (client-side gRPC
// cancellation, per spec §5) never panics the actor — the actor's sends
// to reply channels are always into buffer-of-one channels nobody is
// required to drain.
func (a *Actor) send(ctx context.Context, cmd any) error {
	select {
	case a.inbox <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type createCmd struct {
	image, name, command string
	args                 []string
	reply                chan createResult
}

type createResult struct {
	info ContainerInfo
	err  error
}

// Create implements the Create command (spec §4.6): generate an id,
// materialize the rootfs, build the container process, allocate an IP,
// wire networking (best-effort), and register the result.
func (a *Actor) Create(ctx context.Context, image, name, command string, args []string) (ContainerInfo, error) {
	reply := make(chan createResult, 1)
	if err := a.send(ctx, createCmd{image: image, name: name, command: command, args: args, reply: reply}); err != nil {
		return ContainerInfo{}, err
	}
	select {
	case r := <-reply:
		return r.info, r.err
	case <-ctx.Done():
		return ContainerInfo{}, ctx.Err()
	}
}

func (a *Actor) handleCreate(c createCmd) {
	id := uuid.NewString()
	name := c.name
	if name == "" {
		name = "aethel-" + id[:8]
	}

	rootfsPath, err := a.materializer.PrepareRootfs(c.image)
	if err != nil {
		c.reply <- createResult{err: aethelerr.New(aethelerr.KindImage, c.image, fmt.Errorf("preparing rootfs: %w", err))}
		return
	}

	handle, err := a.builder.Build(id, c.command, c.args, rootfsPath)
	if err != nil {
		c.reply <- createResult{err: aethelerr.New(aethelerr.KindSyscall, id, fmt.Errorf("building container: %w", err))}
		return
	}

	ip, err := a.allocateIP()
	if err != nil {
		// No record was ever inserted for this id; don't leak the process
		// we just launched.
		_ = syscall.Kill(handle.PID, syscall.SIGKILL)
		handle.LogRead.Close()
		c.reply <- createResult{err: err}
		return
	}

	if err := a.netProv.WireContainer(handle.PID, id, ip); err != nil {
		// Per spec §4.6 step 5: logged, not fatal. The container runs
		// without network.
		a.log.Warn("network wiring failed, container will run without network",
			"container_id", id, "error", err)
	}

	broadcaster := logbus.NewBroadcaster()
	go logbus.Forward(handle.LogRead, broadcaster)

	info := ContainerInfo{
		ID:        id,
		Name:      name,
		Image:     c.image,
		Status:    StatusRunning,
		PID:       handle.PID,
		IP:        ip,
		Command:   c.command,
		Args:      c.args,
		CreatedAt: time.Now(),
	}
	a.records[id] = info
	a.broadcasters[id] = broadcaster

	// Probe marker (spec §4.6 step 8 / §10): emitted unconditionally, not
	// only when the security-probe scenario's script happens to echo it
	// itself — matching the Rust prototype's CreateContainer handler.
	broadcaster.Publish("CHECKS_PASSED\n")

	c.reply <- createResult{info: info}
}

// allocateIP hands out the next monotonic octet in 172.29.0.X (spec §3).
// Allocation terminates cleanly at octet 255: that value is never handed
// out, so it doubles as the fatal exhaustion boundary (spec §8). Nothing
// is ever reused on delete (spec §9 open question, left unresolved).
func (a *Actor) allocateIP() (net.IP, error) {
	if a.nextOctet >= lastIPOctet {
		return nil, aethelerr.New(aethelerr.KindNetwork, "", fmt.Errorf("address pool exhausted at octet %d", lastIPOctet))
	}
	ip := net.IPv4(172, 29, 0, byte(a.nextOctet))
	a.nextOctet++
	return ip, nil
}

type getCmd struct {
	id    string
	reply chan getResult
}

type getResult struct {
	info ContainerInfo
	err  error
}

// Get implements the Get command: look up a container by id.
func (a *Actor) Get(ctx context.Context, id string) (ContainerInfo, error) {
	reply := make(chan getResult, 1)
	if err := a.send(ctx, getCmd{id: id, reply: reply}); err != nil {
		return ContainerInfo{}, err
	}
	select {
	case r := <-reply:
		return r.info, r.err
	case <-ctx.Done():
		return ContainerInfo{}, ctx.Err()
	}
}

func (a *Actor) handleGet(c getCmd) {
	info, ok := a.records[c.id]
	if !ok {
		c.reply <- getResult{err: aethelerr.NotFound(c.id)}
		return
	}
	c.reply <- getResult{info: info}
}

type listCmd struct {
	reply chan []ContainerInfo
}

// List implements the List command: a snapshot slice of every live
// record, safe for the caller to range over without further locking.
func (a *Actor) List(ctx context.Context) ([]ContainerInfo, error) {
	reply := make(chan []ContainerInfo, 1)
	if err := a.send(ctx, listCmd{reply: reply}); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *Actor) handleList(c listCmd) {
	out := make([]ContainerInfo, 0, len(a.records))
	for _, info := range a.records {
		out = append(out, info)
	}
	c.reply <- out
}

type deleteCmd struct {
	id    string
	reply chan error
}

// Delete implements the Delete command: SIGKILL the container's init
// process and remove its record and broadcaster.
func (a *Actor) Delete(ctx context.Context, id string) error {
	reply := make(chan error, 1)
	if err := a.send(ctx, deleteCmd{id: id, reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Actor) handleDelete(c deleteCmd) {
	info, ok := a.records[c.id]
	if !ok {
		c.reply <- aethelerr.NotFound(c.id)
		return
	}

	if err := syscall.Kill(info.PID, syscall.SIGKILL); err != nil {
		c.reply <- aethelerr.New(aethelerr.KindSyscall, c.id, fmt.Errorf("killing container process: %w", err))
		return
	}

	delete(a.records, c.id)
	if b, ok := a.broadcasters[c.id]; ok {
		b.Close()
		delete(a.broadcasters, c.id)
	}
	c.reply <- nil
}

type logBroadcasterCmd struct {
	id    string
	reply chan *logbus.Broadcaster
}

// GetLogBroadcaster implements the GetLogBroadcaster command, returning
// nil if no container with this id is registered.
func (a *Actor) GetLogBroadcaster(ctx context.Context, id string) (*logbus.Broadcaster, error) {
	reply := make(chan *logbus.Broadcaster, 1)
	if err := a.send(ctx, logBroadcasterCmd{id: id, reply: reply}); err != nil {
		return nil, err
	}
	select {
	case b := <-reply:
		return b, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (a *Actor) handleGetLogBroadcaster(c logBroadcasterCmd) {
	c.reply <- a.broadcasters[c.id]
}
