//go:build !linux

package probe

// linkSpeed is unavailable without sysfs; the field degrades to "N/A".
func linkSpeed(string) string { return "N/A" }
