package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// RunChild is the body of the re-exec'd process: the init helper that runs
// inside the freshly cloned PID/mount namespaces before execing the real
// container command. It is invoked from cmd/aetheld's main() as soon as
// os.Args[1] == ReexecArg is detected, before any other daemon
// initialization runs.
//
// childArgs is os.Args[2:]: rootfsPath, command, then command's arguments.
// RunChild never returns on the success path — it replaces the process
// image via syscall.Exec. On failure it prints a diagnostic to stderr
// (which is still wired to the daemon's log pipe at this point) and exits
// with a non-zero status, matching the builder contract's "on failure
// return -1" (spec §4.4 step 3).
func RunChild(childArgs []string) {
	if len(childArgs) < 2 {
		fmt.Fprintln(os.Stderr, "aethel child: missing rootfs path or command")
		os.Exit(1)
	}
	rootfsPath := childArgs[0]
	command := childArgs[1]
	cmdArgs := childArgs[2:]

	// fd plumbing (dup2 stdout/stderr into the pipe) already happened
	// before this process image was even loaded: os/exec wired Stdout and
	// Stderr into the pipe's write end via SysProcAttr-less file
	// inheritance when the parent called cmd.Start(). Anything printed
	// from here on is already flowing to the log forwarder.

	if _, err := os.Stat(filepath.Join(rootfsPath, "bin", "sh")); err == nil {
		if err := pivotRoot(rootfsPath); err != nil {
			// Degraded-but-observable mode (spec §4.3): print and fall
			// through to exec in whatever rootfs we ended up with rather
			// than aborting the child.
			fmt.Fprintf(os.Stderr, "aethel child: namespace setup failed, continuing in host rootfs: %v\n", err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "aethel child: %s/bin/sh not found, skipping pivot-root\n", rootfsPath)
	}

	argv := append([]string{command}, cmdArgs...)
	resolved, err := exec.LookPath(command)
	if err != nil {
		resolved = command
	}

	if err := syscall.Exec(resolved, argv, os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "aethel child: exec %s failed: %v\n", command, err)
		os.Exit(1)
	}
}
