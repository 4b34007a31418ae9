// Package solverconfig loads netsimplex's runtime configuration, adapted
// from the teacher's pkg/config: koanf layered over defaults, an optional
// YAML file, then NETSIMPLEX_-prefixed environment variables.
package solverconfig

// Config is the full set of tunables for a Solve call plus its ambient
// logging and metrics behavior.
type Config struct {
	Solver  SolverConfig  `koanf:"solver"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// SolverConfig mirrors netsimplex.Options, in the shape koanf unmarshals
// into before being converted with ToOptions.
type SolverConfig struct {
	ArtCost        float64 `koanf:"art_cost"`
	Epsilon        float64 `koanf:"epsilon"`
	MaxIter        int     `koanf:"max_iter"`
	BlockSizeFloor int     `koanf:"block_size_floor"`
}

// LogConfig mirrors obslog.Config's koanf-addressable fields.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSizeMB  int     `koanf:"max_size_mb"`
	MaxBackups int     `koanf:"max_backups"`
	MaxAgeDays int     `koanf:"max_age_days"`
	Compress   bool    `koanf:"compress"`
}

// MetricsConfig controls the obsmetrics collector.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}
