// Package config defines the build configuration and its loading hooks.
//
// Conventions:
// - New returns the defaults, which reproduce the fixed relative paths of a
//   zero-argument run.
// - Load layers an optional YAML file and SCOUTBOARD_ env vars on top.
// - Errors are marked with this package's sentinels.
package config

// Config contains process configuration.
type Config struct {
	// PlayersPath is the players KPI table.
	PlayersPath string `koanf:"players_path" validate:"required"`

	// RankingsPath is the rankings table.
	RankingsPath string `koanf:"rankings_path" validate:"required"`

	// OutputPath is the JSON payload written by the build.
	OutputPath string `koanf:"output_path" validate:"required"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// MetricsTextfile, when set, receives the run metrics in the Prometheus
	// text format.
	MetricsTextfile string `koanf:"metrics_textfile"`

	// Indent is the number of spaces per JSON nesting level.
	Indent int `koanf:"indent" validate:"min=1,max=8"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		PlayersPath:  "players_kpi.parquet",
		RankingsPath: "player_rankings.parquet",
		OutputPath:   "data/players.json",
		LogLevel:     "info",
		Indent:       2,
	}
}
