package probe

import (
	"strings"
	"testing"
)

func TestMemoryProbeCollect(t *testing.T) {
	res := mustCollect(t, NewMemoryProbe())

	for _, key := range []string{
		"Total RAM", "Available RAM", "Used RAM", "RAM Usage",
		"Total Swap", "Used Swap", "Swap Usage",
	} {
		val, ok := res.Lookup(key)
		if !ok {
			t.Errorf("missing field %q", key)
			continue
		}
		if val == "" {
			t.Errorf("field %q is empty", key)
		}
	}

	if total, _ := res.Lookup("Total RAM"); !strings.HasSuffix(total, " GB") {
		t.Errorf("Total RAM = %q, want GB suffix", total)
	}
	if usage, _ := res.Lookup("RAM Usage"); !strings.HasSuffix(usage, "%") {
		t.Errorf("RAM Usage = %q, want %% suffix", usage)
	}
}
