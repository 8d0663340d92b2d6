// Package probe implements hostreport's data-collection and normalization
// layer. Each probe queries one facet of the host and normalizes the outcome
// into a display-ready Result. Failures are caught at the probe boundary and
// downgraded to Error fields so that no single probe can take down the
// report.
package probe

import (
	"context"
)

// Field is a single display-ready property. Sensitive marks values the
// renderer must visually distinguish, such as the masked product key.
type Field struct {
	Key       string
	Value     string
	Sensitive bool
}

// Section is a nested per-device table, such as one disk partition or one
// network interface.
type Section struct {
	Title  string
	Fields []Field
}

// Table is a columnar table, such as the process snapshot.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Result is the normalized output of a single probe. Every value is
// renderable as plain text without further interpretation. A degraded result
// carries exactly one Error or Status field and nothing else.
type Result struct {
	Fields   []Field
	Sections []Section
	Tables   []Table
}

// ErrorResult returns the degraded shape for a probe that could not produce
// meaningful data.
func ErrorResult(msg string) Result {
	return Result{Fields: []Field{{Key: "Error", Value: msg}}}
}

// StatusResult returns a single informational status field, used by probes
// whose empty outcome is expected rather than an error ("Not detected").
func StatusResult(msg string) Result {
	return Result{Fields: []Field{{Key: "Status", Value: msg}}}
}

// Add appends a plain field.
func (r *Result) Add(key, value string) {
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Lookup returns the value for key among the flat fields.
func (r Result) Lookup(key string) (string, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// IsError reports whether the result is the degraded Error shape.
func (r Result) IsError() bool {
	if len(r.Fields) != 1 || len(r.Sections) != 0 || len(r.Tables) != 0 {
		return false
	}
	return r.Fields[0].Key == "Error"
}

// Probe is one independent unit of host inspection. Collect must handle
// partial failure internally; returning an error is reserved for the case
// where the probe produced nothing usable, and the Runner converts it into
// an ErrorResult. Nothing propagates past the runner.
type Probe interface {
	// Name returns the fixed category key used in the aggregate report.
	Name() string

	// Title returns the human-readable section heading.
	Title() string

	// Collect performs one collection pass.
	Collect(ctx context.Context) (Result, error)
}
