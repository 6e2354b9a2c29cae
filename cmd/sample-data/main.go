// Command sample-data writes synthetic players and rankings tables so the
// dashboard build can be run end to end without production exports.
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"github.com/okian/scoutboard/internal/sampledata"
	"github.com/okian/scoutboard/pkg/logger"
)

func main() {
	defaults := sampledata.DefaultConfig()
	var (
		players  = flag.Int("players", defaults.Players, "Number of player rows to generate")
		dir      = flag.String("dir", ".", "Directory receiving the two parquet tables")
		seed     = flag.Uint64("seed", defaults.Seed, "Random seed; the same seed gives the same tables")
		coverage = flag.Float64("coverage", defaults.Coverage, "Share of players present in the rankings table")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := defaults
	cfg.Players = *players
	cfg.Seed = *seed
	cfg.Coverage = *coverage
	if cfg.Players < 0 || cfg.Coverage < 0 || cfg.Coverage > 1 {
		os.Stderr.WriteString("players must be >= 0 and coverage in [0, 1]\n")
		os.Exit(2)
	}

	ds, err := sampledata.Write(context.Background(), *dir, cfg)
	if err != nil {
		os.Stderr.WriteString("Failed to write sample tables: " + err.Error() + "\n")
		os.Exit(1)
	}
	os.Stdout.WriteString("Wrote " + strconv.Itoa(len(ds.Players)) + " players and " +
		strconv.Itoa(len(ds.Rankings)) + " rankings to " + *dir + "\n")
}
