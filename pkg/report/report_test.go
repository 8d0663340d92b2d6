package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/hostreport/pkg/probe"
)

func sampleReport() probe.Report {
	return probe.Report{
		GeneratedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Sections: []probe.ReportSection{
			{
				Key:   "os",
				Title: "Operating System",
				Result: probe.Result{
					Fields: []probe.Field{
						{Key: "OS Edition", Value: "Windows 11 Pro"},
						{Key: "Product Key", Value: "XXXXX-XXXXX-XXXXX-XXXXX-2B4PD", Sensitive: true},
					},
				},
			},
			{
				Key:   "disk",
				Title: "Disk Information",
				Result: probe.Result{
					Sections: []probe.Section{
						{
							Title: "/dev/sda1",
							Fields: []probe.Field{
								{Key: "Total Size", Value: "476.94 GB"},
							},
						},
					},
				},
			},
			{
				Key:   "processes",
				Title: "Running Processes",
				Result: probe.Result{
					Tables: []probe.Table{
						{
							Title:   "Top Processes by CPU",
							Columns: []string{"PID", "Name", "User", "CPU %", "Memory %"},
							Rows:    [][]string{{"4242", "chrome", "alice", "12.3%", "4.1%"}},
						},
					},
				},
			},
		},
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, sampleReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := sb.String()

	for _, want := range []string{
		"Generated on: 2026-03-14 09:26:53",
		"<h2>Operating System</h2>",
		`<span class="sensitive">XXXXX-XXXXX-XXXXX-XXXXX-2B4PD</span>`,
		"<h3>/dev/sda1</h3>",
		"<h3>Top Processes by CPU</h3>",
		"<th>CPU %</th>",
		"<td>chrome</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered document missing %q", want)
		}
	}

	if strings.Contains(html, `<span class="sensitive">Windows 11 Pro</span>`) {
		t.Error("non-sensitive field rendered with the sensitive style")
	}
}

func TestRenderEscapesValues(t *testing.T) {
	rep := probe.Report{
		GeneratedAt: time.Now(),
		Sections: []probe.ReportSection{
			{
				Key:   "system",
				Title: "System Information",
				Result: probe.Result{
					Fields: []probe.Field{{Key: "Node Name", Value: "<script>alert(1)</script>"}},
				},
			},
		},
	}
	var sb strings.Builder
	if err := Render(&sb, rep); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(sb.String(), "<script>alert(1)</script>") {
		t.Error("field value was not HTML-escaped")
	}
}

func TestFilename(t *testing.T) {
	rep := sampleReport()
	got := Filename(rep)
	if got != "system_report_20260314_092653.html" {
		t.Errorf("Filename = %q", got)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	rep := sampleReport()

	path, err := Write(dir, rep)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != Filename(rep) {
		t.Errorf("path = %q, want basename %q", path, Filename(rep))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(data), "<h2>Operating System</h2>") {
		t.Error("written document missing section heading")
	}

	// The temp file must not survive a successful write.
	leftovers, err := filepath.Glob(filepath.Join(dir, ".report-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}

func TestWriteCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")
	if _, err := Write(dir, sampleReport()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}
