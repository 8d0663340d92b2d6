package probe

import (
	"context"
	"fmt"
	"net"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// IdentityProbe reports the host's basic identity: OS family and version,
// kernel release, hostname, architecture, processor name, primary IP, and
// MAC address.
type IdentityProbe struct{}

// NewIdentityProbe creates the identity probe.
func NewIdentityProbe() *IdentityProbe { return &IdentityProbe{} }

func (*IdentityProbe) Name() string  { return "system" }
func (*IdentityProbe) Title() string { return "System Information" }

// Collect gathers identity facts. The host info query is the only hard
// dependency; IP and MAC lookups degrade to "N/A" individually.
func (p *IdentityProbe) Collect(ctx context.Context) (Result, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return Result{}, err
	}

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = info.Hostname
	}

	var res Result
	res.Add("System", info.OS)
	res.Add("Node Name", hostname)
	res.Add("Release", info.KernelVersion)
	res.Add("Version", info.PlatformVersion)
	res.Add("Machine", info.KernelArch)
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		res.Add("Processor", infos[0].ModelName)
	}
	res.Add("Platform", strings.TrimSpace(info.Platform+" "+info.PlatformVersion))
	res.Add("Architecture", runtime.GOARCH)
	res.Add("Hostname", hostname)
	res.Add("IP Address", primaryIP(hostname))
	res.Add("MAC Address", primaryMAC())
	return res, nil
}

// primaryIP resolves the host's own name and returns the first address,
// preferring IPv4. The answer may legitimately be a loopback or link-local
// address; it is a best-effort hint, not a reachability guarantee.
func primaryIP(hostname string) string {
	addrs, err := net.LookupIP(hostname)
	if err != nil || len(addrs) == 0 {
		return "N/A"
	}
	for _, a := range addrs {
		if v4 := a.To4(); v4 != nil {
			return v4.String()
		}
	}
	return addrs[0].String()
}

// primaryMAC returns the hardware address of the first non-loopback
// interface carrying a six-byte address.
func primaryMAC() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "N/A"
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || len(iface.HardwareAddr) != 6 {
			continue
		}
		return formatMAC(iface.HardwareAddr)
	}
	return "N/A"
}

// formatMAC renders a hardware address as colon-separated lowercase hex
// octets, most-significant octet first.
func formatMAC(hw net.HardwareAddr) string {
	parts := make([]string, len(hw))
	for i, b := range hw {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ":")
}
