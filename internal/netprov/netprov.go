// Package netprov implements the container network provisioner (spec
// §4.5): host bridge setup done once at daemon start, and per-container
// veth wiring done for each successfully-spawned container.
package netprov

import (
	"errors"
	"fmt"
	"net"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"

	"github.com/aethelrun/aetheld/internal/aethelerr"
)

const (
	// BridgeName is the host bridge every container is wired to.
	BridgeName = "aethel0"
	// bridgeCIDR is the bridge's own address within the private subnet;
	// the bridge always occupies the first address (spec §3).
	bridgeCIDR = "172.29.0.1/24"
	subnetCIDR = "172.29.0.0/24"
)

// Provisioner owns the host-side bridge and issues per-container wiring
// commands against it.
type Provisioner struct{}

// New returns a Provisioner. There is no per-instance state: all
// configuration is read back from the kernel via netlink on each call,
// matching the "netlink handle is shared (wrapped) across tasks" model in
// spec §5 (requests are serialized by the kernel itself, not by this type).
func New() *Provisioner {
	return &Provisioner{}
}

// SetupBridge ensures the aethel0 bridge exists, is up, carries the
// subnet's gateway address, and has an outbound NAT rule installed (spec
// §4.5 "Host-side bridge setup"). Every step's failure is returned to the
// caller rather than fatal — spec §9 leaves "should degraded startup be
// fatal" an open question, resolved as "no" (see DESIGN.md); the caller
// (cmd/aetheld) logs and continues.
func (p *Provisioner) SetupBridge() error {
	link, err := netlink.LinkByName(BridgeName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if !errors.As(err, &notFound) {
			return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("querying bridge link: %w", err))
		}
		br := &netlink.Bridge{LinkAttrs: netlink.LinkAttrs{Name: BridgeName}}
		if err := netlink.LinkAdd(br); err != nil {
			return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("creating bridge: %w", err))
		}
		link, err = netlink.LinkByName(BridgeName)
		if err != nil {
			return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("looking up newly created bridge: %w", err))
		}
	}

	if err := netlink.LinkSetUp(link); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("bringing bridge up: %w", err))
	}

	addr, err := netlink.ParseAddr(bridgeCIDR)
	if err != nil {
		return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("parsing bridge address: %w", err))
	}
	if err := netlink.AddrAdd(link, addr); err != nil && !errors.Is(err, syscall.EEXIST) {
		return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("assigning bridge address: %w", err))
	}

	if err := installNATRule(); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, BridgeName, fmt.Errorf("installing NAT rule: %w", err))
	}

	return nil
}

// installNATRule shells out to iptables, matching spec §4.5's rule text
// exactly; netlink has no NAT-table API, and the spec's host prerequisite
// is explicitly "iptables binary on PATH" (§6), not an nftables/netlink
// equivalent.
func installNATRule() error {
	cmd := exec.Command("iptables", "-t", "nat", "-A", "POSTROUTING",
		"-s", subnetCIDR, "!", "-o", BridgeName, "-j", "MASQUERADE")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("iptables: %w: %s", err, out)
	}
	return nil
}

// vethNames derives the host/peer veth interface names from a container
// id, per spec §4.5: "veth<id8> and vethp<id8> where <id8> is the first 8
// hex characters of the container id."
func vethNames(containerID string) (veth, peer string) {
	id8 := containerID
	if len(id8) > 8 {
		id8 = id8[:8]
	}
	return "veth" + id8, "vethp" + id8
}

// WireContainer implements the per-container wiring contract (spec §4.5
// "Per-container wiring"): create a veth pair, attach the host side to the
// bridge, move the peer into the container's netns, and configure it there
// as eth0.
func (p *Provisioner) WireContainer(containerPID int, containerID string, ip net.IP) error {
	vethName, peerName := vethNames(containerID)

	veth := &netlink.Veth{
		LinkAttrs: netlink.LinkAttrs{Name: vethName},
		PeerName:  peerName,
	}
	if err := netlink.LinkAdd(veth); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("creating veth pair: %w", err))
	}

	bridge, err := netlink.LinkByName(BridgeName)
	if err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("looking up bridge: %w", err))
	}
	hostSide, err := netlink.LinkByName(vethName)
	if err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("looking up host veth: %w", err))
	}
	if err := netlink.LinkSetMaster(hostSide, bridge); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("attaching veth to bridge: %w", err))
	}
	if err := netlink.LinkSetUp(hostSide); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("bringing host veth up: %w", err))
	}

	peer, err := netlink.LinkByName(peerName)
	if err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("looking up peer veth: %w", err))
	}
	if err := netlink.LinkSetNsPid(peer, containerPID); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, fmt.Errorf("moving peer into container netns: %w", err))
	}

	if err := configureInContainerNamespace(containerPID, peerName, ip); err != nil {
		return aethelerr.New(aethelerr.KindNetwork, containerID, err)
	}
	return nil
}

// configureInContainerNamespace performs spec §4.5 step 4: opening the
// container's network namespace, switching onto it via setns, and
// renaming/bringing-up/addressing the peer as eth0 from inside.
//
// The namespace switch happens on a goroutine that locks its OS thread and
// never unlocks it — per spec, "the namespace switch must be on a thread
// that will not issue host-namespace operations afterward (this thread is
// then discarded)." Returning from the goroutine without unlocking leaves
// that thread (and its altered namespace) to be torn down by the Go
// runtime rather than reused for host-namespace work.
func configureInContainerNamespace(containerPID int, peerName string, ip net.IP) error {
	result := make(chan error, 1)

	go func() {
		runtime.LockOSThread()

		targetNs, err := netns.GetFromPid(containerPID)
		if err != nil {
			result <- fmt.Errorf("opening container netns: %w", err)
			return
		}
		defer targetNs.Close()

		if err := netns.Set(targetNs); err != nil {
			result <- fmt.Errorf("setns into container netns: %w", err)
			return
		}

		link, err := netlink.LinkByName(peerName)
		if err != nil {
			result <- fmt.Errorf("looking up peer inside container netns: %w", err)
			return
		}
		if err := netlink.LinkSetName(link, "eth0"); err != nil {
			result <- fmt.Errorf("renaming peer to eth0: %w", err)
			return
		}
		link, err = netlink.LinkByName("eth0")
		if err != nil {
			result <- fmt.Errorf("looking up renamed eth0: %w", err)
			return
		}
		if err := netlink.LinkSetUp(link); err != nil {
			result <- fmt.Errorf("bringing up eth0: %w", err)
			return
		}
		addr, err := netlink.ParseAddr(ip.String() + "/24")
		if err != nil {
			result <- fmt.Errorf("parsing container address: %w", err)
			return
		}
		if err := netlink.AddrAdd(link, addr); err != nil {
			result <- fmt.Errorf("assigning container address: %w", err)
			return
		}
		result <- nil
	}()

	return <-result
}
