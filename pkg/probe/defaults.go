package probe

import (
	"gitlab.com/tinyland/lab/hostreport/pkg/probe/inventory"
	"gitlab.com/tinyland/lab/hostreport/pkg/probe/softstore"
)

// Defaults returns the nine standard probes in their fixed report order,
// backed by the real host.
func Defaults(processLimit int, mounts []string) []Probe {
	inv := inventory.New()
	store := softstore.Open()
	return []Probe{
		NewIdentityProbe(),
		NewOSProbe(PlatformLicenseSource()),
		NewHardwareProbe(inv),
		NewOfficeProbe(store, nil),
		NewCPUProbe(inv),
		NewMemoryProbe(),
		NewDiskProbe(mounts),
		NewNetworkProbe(),
		NewProcessProbe(processLimit),
	}
}
