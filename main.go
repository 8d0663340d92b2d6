// hostreport generates a one-shot HTML snapshot of the local machine's
// configuration: identity, operating system and licensing metadata, hardware
// enclosure, office suite, CPU, memory, disks, network interfaces, and the
// top running processes.
//
// Usage:
//
//	hostreport [flags]
//
// Flags:
//
//	-output string    Directory for the generated report (default: config or cwd)
//	-config string    Path to configuration file
//	-open             Open the report in the default viewer when done
//	-parallel         Run probes concurrently
//	-timeout duration Per-probe timeout (0 = none)
//	-top int          Number of processes in the snapshot (default 20)
//	-verbose          Enable debug logging
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gitlab.com/tinyland/lab/hostreport/pkg/cli"
	"gitlab.com/tinyland/lab/hostreport/pkg/config"
	"gitlab.com/tinyland/lab/hostreport/pkg/probe"
	"gitlab.com/tinyland/lab/hostreport/pkg/report"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		outputDir   = flag.String("output", "", "Directory for the generated report")
		configPath  = flag.String("config", "", "Path to configuration file")
		openViewer  = flag.Bool("open", false, "Open the report in the default viewer when done")
		parallel    = flag.Bool("parallel", false, "Run probes concurrently")
		timeout     = flag.Duration("timeout", 0, "Per-probe timeout (0 = none)")
		topN        = flag.Int("top", 0, "Number of processes in the snapshot")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("hostreport %s (%s)\n", version, commit)
		return
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		cli.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}

	// Flags override configuration.
	if *outputDir != "" {
		cfg.Report.OutputDir = *outputDir
	}
	if *openViewer {
		cfg.Report.OpenViewer = true
	}
	if *parallel {
		cfg.Probes.Parallel = true
	}
	if *timeout > 0 {
		cfg.Probes.Timeout = config.Duration{Duration: *timeout}
	}
	if *topN > 0 {
		cfg.Probes.ProcessLimit = *topN
	}

	cli.Heading("System Configuration Reporter")
	fmt.Println("Collecting system information...")

	runner := probe.NewRunner(
		probe.Defaults(cfg.Probes.ProcessLimit, cfg.Probes.MonitoredMounts),
		probe.Options{
			Parallel: cfg.Probes.Parallel,
			Timeout:  cfg.Probes.Timeout.Duration,
		},
		logger,
	)
	rep := runner.Collect(context.Background())

	fmt.Println("Generating HTML report...")
	path, err := report.Write(cfg.Report.OutputDir, rep)
	if err != nil {
		cli.Errorf("failed to generate report: %v", err)
		os.Exit(1)
	}

	cli.Successf("Report generated successfully: %s", report.Filename(rep))
	cli.Pathf("Location: %s", absPath(path))

	if cfg.Report.OpenViewer || cli.Confirm("Would you like to open the report now?") {
		if err := report.Open(path); err != nil {
			logger.Warn("could not open report automatically", "error", err)
			fmt.Println("Could not open the report automatically. Please open it manually.")
		}
	}
}

// loadConfig resolves the configuration, honoring an explicit path.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}
