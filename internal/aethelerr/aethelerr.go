// Package aethelerr defines the error taxonomy shared by every daemon
// component. Errors here are transport-agnostic: nothing in this package
// imports google.golang.org/grpc/status. The RPC facade (internal/rpcserver)
// is the only place these get translated into gRPC status codes.
package aethelerr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure the way the daemon's components fail, mirroring
// the AethelError enum in the Rust prototype this system was distilled from.
type Kind int

const (
	// KindIO covers OS syscall failures on files or pipes.
	KindIO Kind = iota
	// KindSyscall covers namespace/mount/wait/kill failures.
	KindSyscall
	// KindContainerSetup covers invalid strings (embedded NUL in
	// command/args) and missing binaries, detected before fork.
	KindContainerSetup
	// KindImage covers malformed index.json, missing blobs, and broken
	// tar/gzip streams.
	KindImage
	// KindNamespace covers pivot_root, mount-proc, or setns failures.
	KindNamespace
	// KindNetwork covers bridge creation, veth creation, setns-move, and
	// address assignment failures.
	KindNetwork
	// KindNotFound covers lookups against an id with no record.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindSyscall:
		return "syscall"
	case KindContainerSetup:
		return "container_setup"
	case KindImage:
		return "image"
	case KindNamespace:
		return "namespace"
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is a wrapped, classified failure. It behaves like a normal error
// (Error(), Unwrap()) so existing fmt.Errorf %w chains keep working, but
// carries enough structure for the RPC facade to pick a status code without
// string-matching messages.
type Error struct {
	Kind Kind
	// Subject is the offending path, image name, or container id, when
	// applicable. Included in Error() so diagnostics name what failed.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Subject, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New wraps err with a Kind and an optional subject (pass "" when none).
func New(kind Kind, subject string, err error) *Error {
	return &Error{Kind: kind, Subject: subject, Err: err}
}

// NotFound builds a KindNotFound error for the given container id.
func NotFound(id string) *Error {
	return &Error{Kind: KindNotFound, Subject: id, Err: fmt.Errorf("no container with this id")}
}

// Is reports whether err is an *Error of the given Kind, unwrapping through
// any %w chain to find it.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
