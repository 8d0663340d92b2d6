package probe

import "fmt"

const (
	gib = 1 << 30
	mib = 1 << 20
)

// formatGiB renders a byte count in gibibytes with two-decimal precision.
func formatGiB(b uint64) string {
	return fmt.Sprintf("%.2f GB", float64(b)/gib)
}

// formatMiB renders a byte count in mebibytes with two-decimal precision.
func formatMiB(b uint64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/mib)
}

// formatPercent renders a utilization percentage with one decimal.
func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
