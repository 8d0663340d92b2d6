package probe

import (
	"context"
	"fmt"
	"net"
	"strings"

	gnet "github.com/shirou/gopsutil/v4/net"
)

// NetworkProbe reports per-interface status, negotiated link speed, and
// bound addresses, plus an aggregate per-interface I/O table.
type NetworkProbe struct{}

// NewNetworkProbe creates the network probe.
func NewNetworkProbe() *NetworkProbe { return &NetworkProbe{} }

func (*NetworkProbe) Name() string  { return "network" }
func (*NetworkProbe) Title() string { return "Network Information" }

func (p *NetworkProbe) Collect(ctx context.Context) (Result, error) {
	ifaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, iface := range ifaces {
		fields := []Field{
			{Key: "Status", Value: upDown(iface.Flags)},
			{Key: "Speed", Value: linkSpeed(iface.Name)},
		}

		var addrs []string
		for _, addr := range iface.Addrs {
			if rendered := renderAddr(addr.Addr); rendered != "" {
				addrs = append(addrs, rendered)
			}
		}
		if len(addrs) > 0 {
			fields = append(fields, Field{Key: "Addresses", Value: strings.Join(addrs, "\n")})
		}

		res.Sections = append(res.Sections, Section{Title: iface.Name, Fields: fields})
	}

	if counters, err := gnet.IOCountersWithContext(ctx, true); err == nil && len(counters) > 0 {
		table := Table{
			Title:   "IO Statistics",
			Columns: []string{"Interface", "Bytes Sent", "Bytes Received", "Packets Sent", "Packets Received"},
		}
		for _, c := range counters {
			table.Rows = append(table.Rows, []string{
				c.Name,
				formatMiB(c.BytesSent),
				formatMiB(c.BytesRecv),
				fmt.Sprintf("%d", c.PacketsSent),
				fmt.Sprintf("%d", c.PacketsRecv),
			})
		}
		res.Tables = append(res.Tables, table)
	}

	return res, nil
}

// upDown maps interface flags to a display status.
func upDown(flags []string) string {
	for _, f := range flags {
		if strings.EqualFold(f, "up") {
			return "Up"
		}
	}
	return "Down"
}

// renderAddr formats one bound address as
// "<family>: <address> (Netmask: <netmask>)". Addresses without a prefix
// are rendered without the netmask part.
func renderAddr(cidr string) string {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		if bare := net.ParseIP(cidr); bare != nil {
			return fmt.Sprintf("%s: %s", familyName(bare), bare)
		}
		return ""
	}

	mask := ipnet.Mask
	var netmask string
	if v4 := ip.To4(); v4 != nil && len(mask) == 4 {
		netmask = fmt.Sprintf("%d.%d.%d.%d", mask[0], mask[1], mask[2], mask[3])
	} else {
		netmask = net.IP(mask).String()
	}
	return fmt.Sprintf("%s: %s (Netmask: %s)", familyName(ip), ip, netmask)
}

// familyName names the address family of an IP.
func familyName(ip net.IP) string {
	if ip.To4() != nil {
		return "IPv4"
	}
	return "IPv6"
}
