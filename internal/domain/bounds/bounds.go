// Package bounds computes population-wide (min, max) ranges of the KPIs that
// are min-max normalized into radar scores.
package bounds

import (
	"math"

	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/model"
)

// Keys lists the KPIs that are normalized against the population.
var Keys = []string{
	model.KPIFormScore,
	model.KPIVolatility,
	model.KPIMinutesLast5,
}

// Range is a closed [Min, Max] interval. The zero Range is degenerate.
type Range struct {
	Min     float64
	Max     float64
	Samples int
}

// Normalize scales v into [0, 1] against r; see coerce.Normalize.
func (r Range) Normalize(v float64, invert bool) float64 {
	return coerce.Normalize(v, r.Min, r.Max, invert)
}

// Bounds maps a KPI name to its population range. It is read-only once built.
type Bounds map[string]Range

// Get returns the range for key. Unknown keys yield the degenerate zero Range.
func (b Bounds) Get(key string) Range {
	return b[key]
}

// Collect scans the KPI block of every record. Records without a KPI block
// contribute nothing; a block missing a key contributes 0 for that key. Every
// entry of Keys is present in the result; a key with no samples maps to the
// zero Range so normalization falls back to its neutral value.
func Collect(records []model.PlayerRecord) Bounds {
	out := make(Bounds, len(Keys))
	for _, key := range Keys {
		out[key] = Range{}
	}
	for i := range records {
		kpis := records[i].KPIs
		if kpis == nil {
			continue
		}
		for _, key := range Keys {
			v := coerce.Float(kpis.Value(key), 0)
			r := out[key]
			if r.Samples == 0 {
				r = Range{Min: v, Max: v}
			} else {
				r.Min = math.Min(r.Min, v)
				r.Max = math.Max(r.Max, v)
			}
			r.Samples++
			out[key] = r
		}
	}
	return out
}
