// Package launch implements the container launcher: the process spawner
// (spec §4.2), in-child namespace setup (§4.3), and the container builder
// that composes them (§4.4).
//
// Go's goroutine-scheduled runtime cannot safely call raw clone(2) from a
// single OS thread the way a single-threaded process in a systems language
// can — by the time a child function would run, other goroutines may have
// left the thread in a state that clone's copy-on-write semantics don't
// tolerate. Instead this package re-execs /proc/self/exe with a hidden
// first argument (ReexecArg). The re-exec target is started via os/exec
// with Cloneflags set on its SysProcAttr, so the *new process* — not a
// thread inside this one — is born into fresh PID and mount namespaces.
// That new process detects ReexecArg in RunChild, performs the pivot-root
// dance, and execs the real target command, discarding its own Go runtime
// entirely. This is the same shape used by _examples/shadmanZero-mini_container's
// re-exec("--child") split, generalized to carry command/args across the
// re-exec boundary instead of hard-coding /bin/sh.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/aethelrun/aetheld/internal/aethelerr"
)

// ReexecArg is the hidden first argument that tells a freshly exec'd
// aetheld binary to run as a container's init helper rather than as the
// daemon. cmd/aetheld's main() checks for this before doing anything else.
const ReexecArg = "__aethel_child"

// Handle is the result of a successful Build: the host-visible pid of the
// container's init process, and the read end of the pipe its stdout/stderr
// were wired into. Ownership of LogRead transfers to the caller.
type Handle struct {
	PID     int
	LogRead *os.File
}

// Build implements the container builder contract (spec §4.4): given an id,
// a command, its arguments, and a prepared rootfs path, it launches the
// container's init process and returns a handle to it.
func Build(id, command string, args []string, rootfsPath string) (*Handle, error) {
	if err := validateArgv(command, args); err != nil {
		return nil, err
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, aethelerr.New(aethelerr.KindIO, id, fmt.Errorf("creating log pipe: %w", err))
	}

	childArgs := append([]string{ReexecArg, rootfsPath, command}, args...)
	cmd := exec.Command(selfExePath(), childArgs...)
	cmd.Stdout = w
	cmd.Stderr = w
	cmd.SysProcAttr = &syscall.SysProcAttr{
		// New PID and mount namespaces; the network namespace is shared
		// with the host until the network provisioner moves a veth peer
		// into it (spec §4.5 operates on an already-running pid).
		Cloneflags: syscall.CLONE_NEWPID | syscall.CLONE_NEWNS,
	}

	if err := cmd.Start(); err != nil {
		w.Close()
		r.Close()
		return nil, aethelerr.New(aethelerr.KindSyscall, id, fmt.Errorf("spawning container init: %w", err))
	}
	// The write end belongs to the child now; closing our copy lets the
	// log forwarder observe EOF once the child's last fd reference to W
	// goes away (i.e. when the container process exits).
	w.Close()

	// Reap the child when it exits so it doesn't linger as a zombie;
	// termination is otherwise observed only through the log pipe EOF and
	// explicit SIGKILL from the state actor's delete handler.
	go func() { _ = cmd.Wait() }()

	return &Handle{PID: cmd.Process.Pid, LogRead: r}, nil
}

// validateArgv rejects command/argument strings containing an embedded NUL
// byte before any fork happens (spec §8 boundary behavior), mirroring the
// Rust prototype's CString::new failing on interior NULs.
func validateArgv(command string, args []string) error {
	if strings.IndexByte(command, 0) >= 0 {
		return aethelerr.New(aethelerr.KindContainerSetup, command, fmt.Errorf("command contains an embedded NUL byte"))
	}
	for _, a := range args {
		if strings.IndexByte(a, 0) >= 0 {
			return aethelerr.New(aethelerr.KindContainerSetup, a, fmt.Errorf("argument contains an embedded NUL byte"))
		}
	}
	return nil
}

// selfExePath returns the path used to re-exec this binary. /proc/self/exe
// is resolved by the kernel at exec time, so it always names the currently
// running binary even if it was invoked via a relative path or has since
// been replaced on disk.
func selfExePath() string {
	return "/proc/self/exe"
}
