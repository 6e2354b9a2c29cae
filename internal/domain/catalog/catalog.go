// Package catalog holds the fixed descriptive metadata shipped with the
// dashboard payload: the radar metric legend, the metric presets and the
// distinct position and club lists.
package catalog

import (
	"github.com/okian/scoutboard/internal/domain/dedupe"
	"github.com/okian/scoutboard/internal/domain/model"
)

var radarMetrics = []model.MetricSpec{
	{
		ID:          model.MetricCreation,
		Label:       "Creation",
		Source:      model.KPIChanceCreation,
		Description: "Percentile de creation d'occasions",
	},
	{
		ID:          model.MetricProgression,
		Label:       "Progression",
		Source:      model.KPIProgressionActions,
		Description: "Percentile d'actions de progression",
	},
	{
		ID:          model.MetricDefending,
		Label:       "Defending",
		Source:      model.KPIDefensiveActions,
		Description: "Percentile d'actions defensives",
	},
	{
		ID:          model.MetricFinishing,
		Label:       "Finishing",
		Source:      model.KPIShotsOnTarget,
		Description: "Percentile de tirs cadres",
	},
	{
		ID:          model.MetricForm,
		Label:       "Form",
		Source:      model.KPIFormScore,
		Description: "Score de forme SS2 normalise",
	},
	{
		ID:          model.MetricReliability,
		Label:       "Reliability",
		Source:      model.KPIScorePercentile60,
		Description: "Frequence des matchs >= 60",
	},
	{
		ID:          model.MetricMinutes,
		Label:       "Minutes",
		Source:      model.KPIMinutesLast5,
		Description: "Charge de jeu recente",
	},
	{
		ID:          model.MetricStability,
		Label:       "Stability",
		Source:      model.KPIVolatility,
		Description: "Regularite entre matchs (inverse de volatilite)",
	},
}

// Presets only describe views for the dashboard; they never filter data.
var presets = model.Presets{
	{
		Name: "balanced",
		Metrics: []string{
			model.MetricCreation,
			model.MetricProgression,
			model.MetricDefending,
			model.MetricFinishing,
			model.MetricForm,
			model.MetricReliability,
			model.MetricMinutes,
			model.MetricStability,
		},
	},
	{
		Name: "offensive",
		Metrics: []string{
			model.MetricCreation,
			model.MetricFinishing,
			model.MetricForm,
			model.MetricProgression,
			model.MetricReliability,
			model.MetricMinutes,
		},
	},
	{
		Name: "builder",
		Metrics: []string{
			model.MetricProgression,
			model.MetricCreation,
			model.MetricReliability,
			model.MetricStability,
			model.MetricMinutes,
			model.MetricDefending,
		},
	},
	{
		Name: "defensive",
		Metrics: []string{
			model.MetricDefending,
			model.MetricStability,
			model.MetricReliability,
			model.MetricMinutes,
			model.MetricProgression,
			model.MetricForm,
		},
	},
}

// RadarMetrics returns a copy of the radar metric legend in display order.
func RadarMetrics() []model.MetricSpec {
	out := make([]model.MetricSpec, len(radarMetrics))
	copy(out, radarMetrics)
	return out
}

// MetricPresets returns a deep copy of the preset catalog in display order.
func MetricPresets() model.Presets {
	out := make(model.Presets, len(presets))
	for i, p := range presets {
		metrics := make([]string, len(p.Metrics))
		copy(metrics, p.Metrics)
		out[i] = model.Preset{Name: p.Name, Metrics: metrics}
	}
	return out
}

// Positions returns the sorted distinct positions present in players.
func Positions(players []model.Player) []string {
	values := make([]string, len(players))
	for i := range players {
		values[i] = players[i].Position
	}
	return dedupe.Distinct(values)
}

// Clubs returns the sorted distinct club slugs present in players.
func Clubs(players []model.Player) []string {
	values := make([]string, len(players))
	for i := range players {
		values[i] = players[i].ClubSlug
	}
	return dedupe.Distinct(values)
}
