//go:build linux

package probe

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// linkSpeed reads the negotiated link speed from sysfs. Interfaces without
// a PHY (loopback, virtual) report "N/A".
func linkSpeed(name string) string {
	data, err := os.ReadFile("/sys/class/net/" + name + "/speed")
	if err != nil {
		return "N/A"
	}
	mbps, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || mbps <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d Mbps", mbps)
}
