package probe

import (
	"context"
	"path/filepath"
	"testing"

	"gitlab.com/tinyland/lab/hostreport/pkg/probe/softstore"
)

const officeRoot = `SOFTWARE\Microsoft\Office`

func mustCollect(t *testing.T, p Probe) Result {
	t.Helper()
	res, err := p.Collect(context.Background())
	if err != nil {
		t.Fatalf("%s Collect() error: %v", p.Name(), err)
	}
	return res
}

func missingDir(t *testing.T) []string {
	t.Helper()
	return []string{filepath.Join(t.TempDir(), "does-not-exist")}
}

func TestOfficeDetectsVersionToken(t *testing.T) {
	store := &softstore.MemStore{
		Keys: map[string][]string{officeRoot: {"Common", "16.0"}},
		Values: map[string]string{
			officeRoot + `\16.0\Common\InstallRoot|Path`: `C:\Program Files\Microsoft Office\root\Office16`,
			officeRoot + `\16.0\Word\InstallRoot|Path`:   `C:\Program Files\Microsoft Office\root\Office16`,
		},
	}
	res := mustCollect(t, NewOfficeProbe(store, missingDir(t)))

	if got, _ := res.Lookup("Version"); got != "Office 2016/2019/2021/365" {
		t.Errorf("Version = %q, want %q", got, "Office 2016/2019/2021/365")
	}
	if got, _ := res.Lookup("Install Path"); got != `C:\Program Files\Microsoft Office\root\Office16` {
		t.Errorf("Install Path = %q", got)
	}
	if got, _ := res.Lookup("Detected Via"); got != "Word" {
		t.Errorf("Detected Via = %q, want Word", got)
	}
}

func TestOfficeDetectedViaFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{
			name: "excel when word missing",
			values: map[string]string{
				officeRoot + `\15.0\Excel\InstallRoot|Path`: `C:\Office15`,
			},
			want: "Excel",
		},
		{
			name:   "registry when neither app found",
			values: map[string]string{},
			want:   "Registry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &softstore.MemStore{
				Keys:   map[string][]string{officeRoot: {"15.0"}},
				Values: tt.values,
			}
			res := mustCollect(t, NewOfficeProbe(store, missingDir(t)))
			if got, _ := res.Lookup("Detected Via"); got != tt.want {
				t.Errorf("Detected Via = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOfficeFirstEnumeratedTokenWins(t *testing.T) {
	// Store enumeration order decides, not version recency.
	store := &softstore.MemStore{
		Keys: map[string][]string{officeRoot: {"11.0", "16.0"}},
	}
	res := mustCollect(t, NewOfficeProbe(store, missingDir(t)))
	if got, _ := res.Lookup("Version"); got != "Office 2003" {
		t.Errorf("Version = %q, want Office 2003", got)
	}
}

func TestOfficeNotDetected(t *testing.T) {
	res := mustCollect(t, NewOfficeProbe(&softstore.MemStore{}, missingDir(t)))
	if got, _ := res.Lookup("Status"); got != "Not detected" {
		t.Errorf("Status = %q, want %q", got, "Not detected")
	}
	if len(res.Fields) != 1 {
		t.Errorf("degraded result has %d fields, want 1", len(res.Fields))
	}
}

func TestOfficeFilesystemFallback(t *testing.T) {
	dir := t.TempDir()
	res := mustCollect(t, NewOfficeProbe(&softstore.MemStore{}, []string{dir}))

	if got, _ := res.Lookup("Version"); got != "Office (detected via file system)" {
		t.Errorf("Version = %q, want filesystem detection label", got)
	}
	if got, _ := res.Lookup("Install Path"); got != dir {
		t.Errorf("Install Path = %q, want %q", got, dir)
	}
}
