// Package sampledata generates synthetic players and rankings tables in the
// schema the build reads. It backs cmd/sample-data and end-to-end tests.
package sampledata

import "github.com/okian/scoutboard/internal/domain/model"

// Config controls the generated population.
type Config struct {
	Players  int     // number of player rows
	Seed     uint64  // same seed, same tables
	Coverage float64 // share of players present in the rankings table, in [0, 1]

	// MalformedMatchEvery makes every n-th match entry a null entry; 0 disables.
	MalformedMatchEvery int
	// MissingKPIsEvery drops the KPI block of every n-th player; 0 disables.
	MissingKPIsEvery int
}

// DefaultConfig returns the settings used by cmd/sample-data.
func DefaultConfig() Config {
	return Config{
		Players:             120,
		Seed:                1,
		Coverage:            0.8,
		MalformedMatchEvery: 25,
		MissingKPIsEvery:    20,
	}
}

// Dataset is one generated pair of tables.
type Dataset struct {
	Players  []model.PlayerRecord
	Rankings []model.RankingRecord
}
