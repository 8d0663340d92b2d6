package probe

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ReportSection pairs a probe's category key with its normalized result.
type ReportSection struct {
	Key    string
	Title  string
	Result Result
}

// Report is the aggregate of all probe outputs for one run. It always holds
// one section per registered probe, in registration order, and is not
// modified after Collect returns.
type Report struct {
	GeneratedAt time.Time
	Sections    []ReportSection
}

// Section returns the section with the given key.
func (r Report) Section(key string) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return ReportSection{}, false
}

// Options control how the Runner executes its probes.
type Options struct {
	// Parallel runs one goroutine per probe instead of the default
	// sequential pass. Probes share no mutable state, so the result is the
	// same either way; only wall-clock time changes.
	Parallel bool

	// Timeout bounds each probe's Collect call. Zero means unbounded. A
	// probe that exceeds the bound reports an Error field instead of
	// hanging the whole report.
	Timeout time.Duration
}

// Runner executes a fixed set of probes and assembles the aggregate report.
// Probes already swallow their own failures, so Collect has no error path.
type Runner struct {
	probes []Probe
	opts   Options
	log    *slog.Logger
}

// NewRunner creates a Runner over the given probes. A nil logger falls back
// to slog.Default.
func NewRunner(probes []Probe, opts Options, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{probes: probes, opts: opts, log: log}
}

// Collect invokes every probe exactly once and maps each to its category
// key. One probe's failure never prevents the others from completing.
func (r *Runner) Collect(ctx context.Context) Report {
	report := Report{
		GeneratedAt: time.Now(),
		Sections:    make([]ReportSection, len(r.probes)),
	}

	if r.opts.Parallel {
		var wg sync.WaitGroup
		for i, p := range r.probes {
			wg.Add(1)
			go func(i int, p Probe) {
				defer wg.Done()
				report.Sections[i] = r.runOne(ctx, p)
			}(i, p)
		}
		wg.Wait()
		return report
	}

	for i, p := range r.probes {
		report.Sections[i] = r.runOne(ctx, p)
	}
	return report
}

// runOne executes a single probe, converting any returned error into the
// degraded Error shape.
func (r *Runner) runOne(ctx context.Context, p Probe) ReportSection {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := p.Collect(ctx)
	elapsed := time.Since(start)

	if err != nil {
		r.log.Debug("probe failed", "probe", p.Name(), "elapsed", elapsed, "error", err)
		res = ErrorResult(fmt.Sprintf("Unable to retrieve %s information: %v", p.Name(), err))
	} else {
		r.log.Debug("probe complete", "probe", p.Name(), "elapsed", elapsed)
	}

	return ReportSection{Key: p.Name(), Title: p.Title(), Result: res}
}
