package launch

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// pivotRoot performs the namespace setup contract (spec §4.3): bind-mount
// newRoot onto itself, pivot into it, mount a fresh /proc, and lazily
// detach the old root. Each step's failure is returned rather than
// panicking — the caller decides whether to treat it as fatal or degrade
// (spec: "print a diagnostic and continue inside the host rootfs").
func pivotRoot(newRoot string) error {
	// pivot_root requires newRoot to be a mount point distinct from its
	// parent; bind-mounting it onto itself satisfies that even when it is
	// an ordinary directory.
	if err := unix.Mount(newRoot, newRoot, "", unix.MS_BIND|unix.MS_REC, ""); err != nil {
		return fmt.Errorf("bind-mounting rootfs onto itself: %w", err)
	}

	oldRoot := filepath.Join(newRoot, "old_root")
	if err := os.MkdirAll(oldRoot, 0o700); err != nil {
		return fmt.Errorf("creating old_root: %w", err)
	}

	if err := unix.PivotRoot(newRoot, oldRoot); err != nil {
		return fmt.Errorf("pivot_root: %w", err)
	}

	if err := unix.Chdir("/"); err != nil {
		return fmt.Errorf("chdir to new root: %w", err)
	}

	if err := unix.Mount("proc", "/proc", "proc", 0, ""); err != nil {
		return fmt.Errorf("mounting /proc: %w", err)
	}

	// old_root is now mounted at /old_root relative to the new root.
	if err := unix.Unmount("/old_root", unix.MNT_DETACH); err != nil {
		return fmt.Errorf("lazy-unmounting old_root: %w", err)
	}
	if err := os.Remove("/old_root"); err != nil {
		return fmt.Errorf("removing old_root: %w", err)
	}

	return nil
}
