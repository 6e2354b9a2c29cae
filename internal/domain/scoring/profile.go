package scoring

import (
	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/model"
)

// Each profile index is the mean of exactly three radar metrics.
var (
	attackInputs      = [3]string{model.MetricCreation, model.MetricFinishing, model.MetricForm}
	controlInputs     = [3]string{model.MetricProgression, model.MetricReliability, model.MetricMinutes}
	defenseInputs     = [3]string{model.MetricDefending, model.MetricStability, model.MetricReliability}
	consistencyInputs = [3]string{model.MetricStability, model.MetricMinutes, model.MetricReliability}
)

// Profile derives the four composite indices from a radar.
func Profile(r model.Radar) model.Profile {
	return model.Profile{
		AttackIndex:      mean(r, attackInputs),
		ControlIndex:     mean(r, controlInputs),
		DefenseIndex:     mean(r, defenseInputs),
		ConsistencyIndex: mean(r, consistencyInputs),
	}
}

func mean(r model.Radar, ids [3]string) float64 {
	var sum float64
	for _, id := range ids {
		sum += r.Value(id)
	}
	return coerce.Round(sum/float64(len(ids)), 1)
}
