// Package source loads the players and rankings tables from parquet files.
package source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/parquet-go/parquet-go"

	"github.com/okian/scoutboard/internal/domain/model"
)

// Tables reads the two input tables of a build from the local disk.
type Tables struct {
	playersPath  string
	rankingsPath string
}

// NewTables returns a loader bound to the players and rankings table paths.
func NewTables(playersPath, rankingsPath string) *Tables {
	return &Tables{playersPath: playersPath, rankingsPath: rankingsPath}
}

// Players reads every row of the players table.
func (t *Tables) Players(ctx context.Context) ([]model.PlayerRecord, error) {
	return ReadTable[model.PlayerRecord](ctx, t.playersPath)
}

// Rankings reads every row of the rankings table.
func (t *Tables) Rankings(ctx context.Context) ([]model.RankingRecord, error) {
	return ReadTable[model.RankingRecord](ctx, t.rankingsPath)
}

// Files returns the base names of the input tables, players first.
func (t *Tables) Files() []string {
	return []string{filepath.Base(t.playersPath), filepath.Base(t.rankingsPath)}
}

// ReadTable loads the whole parquet file at path into memory. Columns are
// matched to T by name; columns T does not declare are ignored and columns
// missing from the file are left at their zero value.
//
// A missing or unreadable file is marked ErrOpenTable, a file that is not a
// valid parquet table is marked ErrDecodeTable. Both keep the underlying
// cause reachable through errors.Is (e.g. os.ErrNotExist).
func ReadTable[T any](ctx context.Context, path string) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "open %s", path), ErrOpenTable)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "stat %s", path), ErrOpenTable)
	}

	rows, err := parquet.Read[T](f, info.Size())
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode %s", path), ErrDecodeTable)
	}
	return rows, nil
}

// WriteTable writes rows as a parquet file at path, replacing any existing
// file. It is used to produce fixtures and sample inputs.
func WriteTable[T any](path string, rows []T) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
