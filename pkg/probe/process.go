package probe

import (
	"context"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/process"
)

// defaultProcessLimit caps the process snapshot at the top CPU consumers.
const defaultProcessLimit = 20

// procEntry is one row of the process snapshot.
type procEntry struct {
	pid    int32
	name   string
	user   string
	cpu    float64
	memory float32
}

// ProcessProbe snapshots running processes sorted by CPU usage descending.
// Processes that vanish or deny access during enumeration are skipped
// silently, not recorded as failures.
type ProcessProbe struct {
	limit int
}

// NewProcessProbe creates the process probe. A non-positive limit falls back
// to the default of 20.
func NewProcessProbe(limit int) *ProcessProbe {
	if limit <= 0 {
		limit = defaultProcessLimit
	}
	return &ProcessProbe{limit: limit}
}

func (*ProcessProbe) Name() string  { return "processes" }
func (*ProcessProbe) Title() string { return "Top Running Processes" }

func (p *ProcessProbe) Collect(ctx context.Context) (Result, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return Result{}, err
	}

	var entries []procEntry
	for _, proc := range procs {
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			continue // vanished or access denied
		}
		entry := procEntry{pid: proc.Pid, name: name, user: "N/A"}

		if user, err := proc.UsernameWithContext(ctx); err == nil {
			entry.user = user
		}
		// An unavailable CPU reading sorts as zero.
		if pct, err := proc.CPUPercentWithContext(ctx); err == nil {
			entry.cpu = pct
		}
		if pct, err := proc.MemoryPercentWithContext(ctx); err == nil {
			entry.memory = pct
		}
		entries = append(entries, entry)
	}

	entries = topByCPU(entries, p.limit)

	table := Table{
		Columns: []string{"PID", "Name", "User", "CPU %", "Memory %"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.pid),
			e.name,
			e.user,
			fmt.Sprintf("%.1f", e.cpu),
			fmt.Sprintf("%.1f", e.memory),
		})
	}
	return Result{Tables: []Table{table}}, nil
}

// topByCPU sorts entries by CPU percent descending, keeping enumeration
// order for ties, and truncates to limit.
func topByCPU(entries []procEntry, limit int) []procEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].cpu > entries[j].cpu
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
