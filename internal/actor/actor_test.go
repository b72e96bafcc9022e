package actor

import (
	"context"
	"net"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aethelrun/aetheld/internal/aethelerr"
	"github.com/aethelrun/aetheld/internal/launch"
)

type fakeMaterializer struct {
	rootfsPath string
	err        error
}

func (f *fakeMaterializer) PrepareRootfs(imageName string) (string, error) {
	return f.rootfsPath, f.err
}

type fakeNetProv struct {
	err error
}

func (f *fakeNetProv) WireContainer(pid int, id string, ip net.IP) error {
	return f.err
}

// spawnDummyProcess starts a real, long-lived child so Delete's SIGKILL
// has a genuine pid to target, mirroring how the example pack's tests
// exercise real subprocesses rather than mocking the OS away entirely.
func spawnDummyProcess(t *testing.T) *launch.Handle {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe: %v", err)
	}
	cmd := exec.Command("sleep", "30")
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Start(); err != nil {
		w.Close()
		t.Skipf("cannot spawn dummy process in this environment: %v", err)
	}
	w.Close()
	go func() { _ = cmd.Wait() }()
	return &launch.Handle{PID: cmd.Process.Pid, LogRead: r}
}

func newTestActor(t *testing.T, rootfs string, netErr error) (*Actor, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	mat := &fakeMaterializer{rootfsPath: rootfs}
	builder := BuilderFunc(func(id, command string, args []string, rootfsPath string) (*launch.Handle, error) {
		return spawnDummyProcess(t), nil
	})
	netProv := &fakeNetProv{err: netErr}

	a := New(mat, builder, netProv, nil)
	go a.Run(ctx)
	return a, ctx
}

func TestCreateDerivesNameFromID(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)

	info, err := a.Create(ctx, "alpine", "", "/bin/sh", []string{"-c", "sleep 30"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := "aethel-" + info.ID[:8]
	if info.Name != want {
		t.Fatalf("Name = %q, want %q", info.Name, want)
	}
}

func TestCreateThenGetReturnsSameRecord(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)

	created, err := a.Create(ctx, "alpine", "mine", "/bin/sh", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := a.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != created.ID || got.Name != created.Name || !got.IP.Equal(created.IP) {
		t.Fatalf("Get returned different record: got %+v, want %+v", got, created)
	}
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)

	_, err := a.Get(ctx, "nonexistent")
	if !aethelerr.Is(err, aethelerr.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)

	created, err := a.Create(ctx, "alpine", "", "/bin/sh", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := a.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := a.Get(ctx, created.ID); !aethelerr.Is(err, aethelerr.KindNotFound) {
		t.Fatalf("expected KindNotFound after delete, got %v", err)
	}

	list, err := a.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after deleting the only container, got %d entries", len(list))
	}
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)
	if err := a.Delete(ctx, "nonexistent"); !aethelerr.Is(err, aethelerr.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestConcurrentCreatesGetSequentialUniqueIPs(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)

	const n = 10
	results := make(chan ContainerInfo, n)
	for i := 0; i < n; i++ {
		go func() {
			info, err := a.Create(ctx, "alpine", "", "/bin/sh", nil)
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			results <- info
		}()
	}

	ips := map[string]bool{}
	ids := map[string]bool{}
	for i := 0; i < n; i++ {
		select {
		case info := <-results:
			ip := info.IP.String()
			if ips[ip] {
				t.Fatalf("duplicate IP assigned: %s", ip)
			}
			ips[ip] = true
			if ids[info.ID] {
				t.Fatalf("duplicate id assigned: %s", info.ID)
			}
			ids[info.ID] = true
		case <-time.After(10 * time.Second):
			t.Fatalf("timed out waiting for concurrent creates")
		}
	}
	if len(ips) != n {
		t.Fatalf("expected %d unique IPs, got %d", n, len(ips))
	}
	for octet := firstIPOctet; octet < firstIPOctet+n; octet++ {
		want := net.IPv4(172, 29, 0, byte(octet)).String()
		if !ips[want] {
			t.Fatalf("expected %s among the sequentially assigned IPs, got %v", want, ips)
		}
	}
}

func TestIPExhaustionIsAFatalCreateError(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), nil)
	a.nextOctet = lastIPOctet - 1 // next call should land exactly on 254, the last valid octet

	if _, err := a.Create(ctx, "alpine", "", "/bin/sh", nil); err != nil {
		t.Fatalf("Create at the last valid octet should still succeed: %v", err)
	}
	_, err := a.Create(ctx, "alpine", "", "/bin/sh", nil)
	if !aethelerr.Is(err, aethelerr.KindNetwork) {
		t.Fatalf("expected KindNetwork exhaustion error, got %v", err)
	}
}

func TestNetworkWiringFailureDoesNotFailCreate(t *testing.T) {
	a, ctx := newTestActor(t, t.TempDir(), context.DeadlineExceeded)
	if _, err := a.Create(ctx, "alpine", "", "/bin/sh", nil); err != nil {
		t.Fatalf("expected network wiring failure to be non-fatal, got %v", err)
	}
}
