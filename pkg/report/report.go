// Package report renders an aggregate probe report as a self-contained HTML
// document and writes it atomically to disk.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"gitlab.com/tinyland/lab/hostreport/pkg/probe"
)

//go:embed templates/report.html
var templates embed.FS

var tmpl = template.Must(template.ParseFS(templates, "templates/report.html"))

// Render writes the HTML document for the given report to w.
func Render(w io.Writer, rep probe.Report) error {
	data := struct {
		GeneratedAt string
		Sections    []probe.ReportSection
	}{
		GeneratedAt: rep.GeneratedAt.Format("2006-01-02 15:04:05"),
		Sections:    rep.Sections,
	}
	return tmpl.Execute(w, data)
}

// Filename returns the timestamped output name for a report.
func Filename(rep probe.Report) string {
	return "system_report_" + rep.GeneratedAt.Format("20060102_150405") + ".html"
}

// Write renders the report into dir, going through a temp file and rename so
// a failed run never leaves a partial document. It returns the final path.
func Write(dir string, rep probe.Report) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, rep); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	cleanup := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	path := filepath.Join(dir, Filename(rep))
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return path, nil
}
