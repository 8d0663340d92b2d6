package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"

	"gitlab.com/tinyland/lab/hostreport/pkg/probe/inventory"
)

// cpuSampleInterval is the blocking window used for the instantaneous
// utilization reading. This is the single longest-blocking step of a run.
const cpuSampleInterval = time.Second

// CPUProbe reports core counts, clock frequency, a one-second utilization
// sample, and the CPU display name.
type CPUProbe struct {
	inv inventory.Provider
}

// NewCPUProbe creates the CPU probe. The inventory provider supplies the
// display name and may be nil.
func NewCPUProbe(inv inventory.Provider) *CPUProbe { return &CPUProbe{inv: inv} }

func (*CPUProbe) Name() string  { return "cpu" }
func (*CPUProbe) Title() string { return "CPU Information" }

// Collect gathers CPU facts. Core counts are the hard dependency; frequency
// and the display name degrade individually.
func (p *CPUProbe) Collect(ctx context.Context) (Result, error) {
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		return Result{}, err
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Add("Physical Cores", fmt.Sprintf("%d", physical))
	res.Add("Total Cores", fmt.Sprintf("%d", logical))

	infos, infoErr := cpu.InfoWithContext(ctx)

	// gopsutil exposes a single nominal frequency; platforms without one
	// report "N/A" for both readings.
	freq := "N/A"
	if infoErr == nil && len(infos) > 0 && infos[0].Mhz > 0 {
		freq = fmt.Sprintf("%.2f MHz", infos[0].Mhz)
	}
	res.Add("Max Frequency", freq)
	res.Add("Current Frequency", freq)

	if usage, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false); err == nil && len(usage) > 0 {
		res.Add("CPU Usage", formatPercent(usage[0]))
	} else {
		res.Add("CPU Usage", "N/A")
	}

	// Display name: prefer the inventory query, fall back to cpuinfo. Its
	// absence does not affect the rest of the probe.
	name := ""
	if p.inv != nil {
		if model, err := p.inv.CPUModel(); err == nil {
			name = model
		}
	}
	if name == "" && infoErr == nil && len(infos) > 0 {
		name = infos[0].ModelName
	}
	if name != "" {
		res.Add("Name", name)
	}

	return res, nil
}
