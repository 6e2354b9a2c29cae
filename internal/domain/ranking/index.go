// Package ranking resolves the ranking snapshot of each player and assigns
// the global leaderboard position across the whole population.
package ranking

import (
	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/dedupe"
	"github.com/okian/scoutboard/internal/domain/model"
)

const percentScale = 100

// Index is a slug-keyed view of the rankings table.
type Index struct {
	bySlug     map[string]model.RankSnapshot
	duplicates []string
}

// NewIndex indexes rows by slug. Rows without a slug are ignored; when a slug
// repeats, the later row wins and the slug is reported by Duplicates.
func NewIndex(rows []model.RankingRecord) *Index {
	ix := &Index{bySlug: make(map[string]model.RankSnapshot, len(rows))}
	seen := dedupe.NewInMemoryDeduper(dedupe.WithCapacity(len(rows)))
	for i := range rows {
		row := &rows[i]
		if row.Slug == nil {
			continue
		}
		slug := *row.Slug
		if seen.SeenAndRecord(slug) {
			ix.duplicates = append(ix.duplicates, slug)
		}
		ix.bySlug[slug] = fromRow(row)
	}
	return ix
}

func fromRow(row *model.RankingRecord) model.RankSnapshot {
	return model.RankSnapshot{
		PositionRank: coerce.Int(row.Rank, 0),
		RankScore:    coerce.Round(coerce.Float(row.RankScore, 0), 3),
		SS2:          coerce.Round(coerce.Float(row.SS2, 0), 2),
		Pct70:        coerce.Round(coerce.Float(row.Pct70, 0)*percentScale, 1),
		Pct60:        coerce.Round(coerce.Float(row.Pct60, 0)*percentScale, 1),
	}
}

// Len returns the number of distinct slugs indexed.
func (ix *Index) Len() int { return len(ix.bySlug) }

// Duplicates returns slugs that appeared more than once, once per repeat.
func (ix *Index) Duplicates() []string { return ix.duplicates }

// Resolve returns the snapshot for slug from the rankings table, or one
// derived from the player's own KPIs with PositionRank 0. The boolean reports
// whether the table had an entry.
func (ix *Index) Resolve(slug string, kpis *model.ReadableKPIs) (model.RankSnapshot, bool) {
	if snap, ok := ix.bySlug[slug]; ok {
		return snap, true
	}
	return Fallback(kpis), false
}

// Fallback derives a snapshot from a KPI block.
func Fallback(kpis *model.ReadableKPIs) model.RankSnapshot {
	return model.RankSnapshot{
		PositionRank: 0,
		RankScore:    coerce.Round(coerce.Float(kpis.Value(model.KPIRankScoreComposite), 0), 3),
		SS2:          coerce.Round(coerce.Float(kpis.Value(model.KPIFormScore), 0), 2),
		Pct70:        coerce.Percent(kpis.Value(model.KPIScorePercentile70)),
		Pct60:        coerce.Percent(kpis.Value(model.KPIScorePercentile60)),
	}
}
