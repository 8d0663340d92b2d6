package config

// Config is the root hostreport configuration.
type Config struct {
	Report ReportConfig `toml:"report"`
	Probes ProbesConfig `toml:"probes"`
}

// ReportConfig controls where the generated document goes.
type ReportConfig struct {
	// OutputDir is where report documents are written. Empty means the
	// current directory.
	OutputDir string `toml:"output_dir"`

	// OpenViewer opens the generated report in the platform viewer without
	// prompting.
	OpenViewer bool `toml:"open_viewer"`
}

// ProbesConfig controls probe execution.
type ProbesConfig struct {
	// ProcessLimit caps the process snapshot (default 20).
	ProcessLimit int `toml:"process_limit"`

	// Parallel runs probes concurrently. The result is identical to the
	// sequential pass; only wall-clock time changes.
	Parallel bool `toml:"parallel"`

	// Timeout bounds each probe; zero disables the bound.
	Timeout Duration `toml:"timeout"`

	// MonitoredMounts restricts disk collection to these mount paths. An
	// empty slice means "collect all non-virtual partitions".
	MonitoredMounts []string `toml:"monitored_mounts"`
}
