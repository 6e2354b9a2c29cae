package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okian/scoutboard/internal/domain/bounds"
	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/matches"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/ranking"
	"github.com/okian/scoutboard/internal/domain/scoring"
)

// Identity fallbacks for rows missing a position or a club.
const (
	UnknownPosition = "Unknown"
	UnknownClub     = "unknown-club"
)

const percentScale = 100

// Outcome reports the recovered conditions met while transforming one row.
type Outcome struct {
	Ranked         bool // the rankings table had an entry for the slug
	SkippedMatches int  // malformed match entries dropped
}

// Transformer turns player rows into dashboard records against fixed
// population bounds and a rankings index. It is not safe for concurrent use.
type Transformer struct {
	scorer *scoring.RadarScorer
	index  *ranking.Index
	title  cases.Caser
}

// NewTransformer creates a transformer. b and ix are only read.
func NewTransformer(b bounds.Bounds, ix *ranking.Index) *Transformer {
	return &Transformer{
		scorer: scoring.NewRadarScorer(b),
		index:  ix,
		title:  cases.Title(language.Und),
	}
}

// Transform builds the record of rec. GlobalRank is left at 0; it is only
// known once every row is built.
func (t *Transformer) Transform(rec *model.PlayerRecord) (model.Player, Outcome) {
	slug := coerce.String(rec.Slug, "")
	club := coerce.String(rec.ClubSlug, UnknownClub)

	history, skipped := matches.Extract(rec.Matches, club)
	radar := t.scorer.Radar(rec.KPIs)
	snap, ranked := t.index.Resolve(slug, rec.KPIs)

	p := model.Player{
		Slug:     slug,
		Name:     coerce.String(rec.Name, ""),
		Position: coerce.String(rec.Position, UnknownPosition),
		ClubSlug: club,
		ClubName: t.ClubLabel(club),
		Summary:  summarize(rec.KPIs, history),
		Rankings: snap,
		Radar:    radar,
		Profile:  scoring.Profile(radar),
		Matches:  history,
	}
	return p, Outcome{Ranked: ranked, SkippedMatches: skipped}
}

// ClubLabel turns a club slug into a display name: "fc-porto-b" -> "Fc Porto B".
func (t *Transformer) ClubLabel(slug string) string {
	return t.title.String(strings.TrimSpace(strings.ReplaceAll(slug, "-", " ")))
}

func summarize(kpis *model.ReadableKPIs, history []model.Match) model.Summary {
	f := func(name string) float64 { return coerce.Float(kpis.Value(name), 0) }

	return model.Summary{
		AvgScoreLast5:      coerce.Round(f(model.KPIAvgScoreLast5), 2),
		AvgScoreLast15:     coerce.Round(f(model.KPIAvgScoreLast15), 2),
		FormScore:          coerce.Round(f(model.KPIFormScore), 2),
		ScoreTrend:         coerce.Round(f(model.KPIScoreTrend), 3),
		MinutesLast5:       coerce.Int(kpis.Value(model.KPIMinutesLast5), 0),
		StarterRateLast5:   coerce.Round(coerce.Clamp01(f(model.KPIStarterRateLast5))*percentScale, 1),
		Volatility:         coerce.Round(f(model.KPIVolatility), 3),
		ScoreStdDev:        coerce.Round(f(model.KPIScoreStdDev), 2),
		RankScoreComposite: coerce.Round(f(model.KPIRankScoreComposite), 3),
		FixtureDifficulty:  coerce.Round(f(model.KPIFixtureDifficulty), 3),
		MatchesSampled:     len(history),
		RecentAvgScore:     recentAverage(history),
	}
}

// recentAverage is the mean extracted match score, 0 without matches.
func recentAverage(history []model.Match) float64 {
	if len(history) == 0 {
		return 0
	}
	var sum float64
	for _, m := range history {
		sum += m.Score
	}
	return coerce.Round(sum/float64(len(history)), 2)
}
