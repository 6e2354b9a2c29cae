// Package scoring computes the radar scores and composite profile indices of
// a player.
package scoring

import (
	"github.com/okian/scoutboard/internal/domain/bounds"
	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/model"
)

const maxScoreValue = 100

type scale int

const (
	// percentile sources are already shares in [0, 1].
	percentile scale = iota
	// minMax sources are normalized against the population bounds.
	minMax
	// minMaxInverted sources are normalized and inverted, lower is better.
	minMaxInverted
)

type rule struct {
	metric string
	source string
	scale  scale
}

var radarRules = []rule{
	{model.MetricCreation, model.KPIChanceCreation, percentile},
	{model.MetricProgression, model.KPIProgressionActions, percentile},
	{model.MetricDefending, model.KPIDefensiveActions, percentile},
	{model.MetricFinishing, model.KPIShotsOnTarget, percentile},
	{model.MetricForm, model.KPIFormScore, minMax},
	{model.MetricReliability, model.KPIScorePercentile60, percentile},
	{model.MetricMinutes, model.KPIMinutesLast5, minMax},
	{model.MetricStability, model.KPIVolatility, minMaxInverted},
}

// RadarScorer scores KPI blocks against fixed population bounds.
type RadarScorer struct {
	bounds bounds.Bounds
}

// NewRadarScorer creates a scorer bound to b. b is only read.
func NewRadarScorer(b bounds.Bounds) *RadarScorer {
	return &RadarScorer{bounds: b}
}

// Radar returns the eight radar scores of kpis, each in [0, 100] with one
// decimal. A nil block scores 0 on percentile metrics and is normalized as 0
// on the population metrics.
func (s *RadarScorer) Radar(kpis *model.ReadableKPIs) model.Radar {
	var r model.Radar
	for _, rl := range radarRules {
		v := coerce.Float(kpis.Value(rl.source), 0)
		var share float64
		switch rl.scale {
		case percentile:
			share = coerce.Clamp01(v)
		case minMax:
			share = s.bounds.Get(rl.source).Normalize(v, false)
		case minMaxInverted:
			share = s.bounds.Get(rl.source).Normalize(v, true)
		}
		set(&r, rl.metric, coerce.Round(share*maxScoreValue, 1))
	}
	return r
}

func set(r *model.Radar, metric string, v float64) {
	switch metric {
	case model.MetricCreation:
		r.Creation = v
	case model.MetricProgression:
		r.Progression = v
	case model.MetricDefending:
		r.Defending = v
	case model.MetricFinishing:
		r.Finishing = v
	case model.MetricForm:
		r.Form = v
	case model.MetricReliability:
		r.Reliability = v
	case model.MetricMinutes:
		r.Minutes = v
	case model.MetricStability:
		r.Stability = v
	}
}
