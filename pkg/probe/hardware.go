package probe

import (
	"context"
	"fmt"

	"gitlab.com/tinyland/lab/hostreport/pkg/probe/inventory"
)

// HardwareProbe reports the machine enclosure: manufacturer and model, the
// firmware serial number, and the motherboard identity. Each query is
// independent; partial success keeps whichever fields answered.
type HardwareProbe struct {
	inv inventory.Provider
}

// NewHardwareProbe creates the hardware probe over the given inventory
// provider.
func NewHardwareProbe(inv inventory.Provider) *HardwareProbe {
	return &HardwareProbe{inv: inv}
}

func (*HardwareProbe) Name() string  { return "hardware" }
func (*HardwareProbe) Title() string { return "Hardware Information" }

// Collect queries the three inventory facets. Only when all of them fail
// does the probe collapse to the Error shape.
func (p *HardwareProbe) Collect(ctx context.Context) (Result, error) {
	var res Result

	if vendor, model, err := p.inv.System(); err == nil {
		res.Add("Manufacturer", vendor)
		res.Add("Model", model)
	}
	if serial, err := p.inv.BIOSSerial(); err == nil {
		res.Add("Serial Number", serial)
	}
	if vendor, model, err := p.inv.Baseboard(); err == nil {
		res.Add("Motherboard Manufacturer", vendor)
		res.Add("Motherboard Model", model)
	}

	if len(res.Fields) == 0 {
		return Result{}, fmt.Errorf("no hardware inventory available")
	}
	return res, nil
}
