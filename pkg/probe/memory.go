package probe

import (
	"context"

	"github.com/shirou/gopsutil/v4/mem"
)

// MemoryProbe reports physical and swap memory usage in gibibytes with
// utilization percentages. Unlike the hardware probe this one is
// all-or-nothing: any underlying failure collapses to the Error shape.
type MemoryProbe struct{}

// NewMemoryProbe creates the memory probe.
func NewMemoryProbe() *MemoryProbe { return &MemoryProbe{} }

func (*MemoryProbe) Name() string  { return "memory" }
func (*MemoryProbe) Title() string { return "Memory Information" }

func (p *MemoryProbe) Collect(ctx context.Context) (Result, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Result{}, err
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Add("Total RAM", formatGiB(vm.Total))
	res.Add("Available RAM", formatGiB(vm.Available))
	res.Add("Used RAM", formatGiB(vm.Used))
	res.Add("RAM Usage", formatPercent(vm.UsedPercent))
	res.Add("Total Swap", formatGiB(swap.Total))
	res.Add("Used Swap", formatGiB(swap.Used))
	res.Add("Swap Usage", formatPercent(swap.UsedPercent))
	return res, nil
}
