package netprov

import (
	"net"
	"os"
	"testing"
)

func TestVethNamesUsesFirst8HexChars(t *testing.T) {
	veth, peer := vethNames("0123456789abcdef")
	if veth != "veth01234567" {
		t.Fatalf("veth = %q, want %q", veth, "veth01234567")
	}
	if peer != "vethp01234567" {
		t.Fatalf("peer = %q, want %q", peer, "vethp01234567")
	}
}

func TestVethNamesHandlesShortIDs(t *testing.T) {
	veth, peer := vethNames("ab")
	if veth != "vethab" || peer != "vethpab" {
		t.Fatalf("got veth=%q peer=%q", veth, peer)
	}
}

// TestSetupBridgeRequiresPrivilege exercises the real netlink path; it
// needs CAP_NET_ADMIN (effectively root) and the bridge kernel module, so
// it skips rather than failing in unprivileged CI/dev environments.
func TestSetupBridgeRequiresPrivilege(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires root/CAP_NET_ADMIN")
	}
	p := New()
	if err := p.SetupBridge(); err != nil {
		t.Fatalf("SetupBridge: %v", err)
	}
}

func TestWireContainerRequiresPrivilege(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("requires root/CAP_NET_ADMIN")
	}
	p := New()
	if err := p.WireContainer(1, "deadbeefcafe", net.ParseIP("172.29.0.2")); err == nil {
		t.Fatalf("expected an error wiring a container against a fake pid")
	}
}
