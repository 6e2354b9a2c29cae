// Package model contains the raw table rows read from disk and the derived
// records written to the dashboard payload.
package model

// Readable KPI field names as they appear in the players table.
const (
	KPIFormScore          = "ss2_form_score"
	KPIVolatility         = "volatility_between_games"
	KPIMinutesLast5       = "minutes_played_last5"
	KPIChanceCreation     = "chance_creation_percentile"
	KPIProgressionActions = "progression_actions_percentile"
	KPIDefensiveActions   = "defensive_actions_percentile"
	KPIShotsOnTarget      = "shots_on_target_percentile"
	KPIScorePercentile60  = "score_percentile_60"
	KPIScorePercentile70  = "score_percentile_70"
	KPIRankScoreComposite = "rank_score_composite"
	KPIAvgScoreLast5      = "avg_score_last_5"
	KPIAvgScoreLast15     = "avg_score_last_15"
	KPIScoreTrend         = "score_trend"
	KPIStarterRateLast5   = "starter_rate_last5"
	KPIScoreStdDev        = "score_std_dev"
	KPIFixtureDifficulty  = "fixture_difficulty_score"
)

// PlayerRecord is one row of the players table. Every column is optional;
// columns not listed here are ignored when the table is read.
type PlayerRecord struct {
	Slug     *string       `parquet:"slug,optional"`
	Name     *string       `parquet:"name,optional"`
	Position *string       `parquet:"position,optional"`
	ClubSlug *string       `parquet:"club_slug,optional"`
	KPIs     *ReadableKPIs `parquet:"kpis_readable,optional"` // nil when the cell is not a KPI block
	Matches  []*RawMatch   `parquet:"matches,list"`           // nil entries are malformed matches
}

// ReadableKPIs is the nested KPI block of a player row.
type ReadableKPIs struct {
	FormScore          *float64 `parquet:"ss2_form_score,optional"`
	Volatility         *float64 `parquet:"volatility_between_games,optional"`
	MinutesLast5       *float64 `parquet:"minutes_played_last5,optional"`
	ChanceCreation     *float64 `parquet:"chance_creation_percentile,optional"`
	ProgressionActions *float64 `parquet:"progression_actions_percentile,optional"`
	DefensiveActions   *float64 `parquet:"defensive_actions_percentile,optional"`
	ShotsOnTarget      *float64 `parquet:"shots_on_target_percentile,optional"`
	ScorePercentile60  *float64 `parquet:"score_percentile_60,optional"`
	ScorePercentile70  *float64 `parquet:"score_percentile_70,optional"`
	RankScoreComposite *float64 `parquet:"rank_score_composite,optional"`
	AvgScoreLast5      *float64 `parquet:"avg_score_last_5,optional"`
	AvgScoreLast15     *float64 `parquet:"avg_score_last_15,optional"`
	ScoreTrend         *float64 `parquet:"score_trend,optional"`
	StarterRateLast5   *float64 `parquet:"starter_rate_last5,optional"`
	ScoreStdDev        *float64 `parquet:"score_std_dev,optional"`
	FixtureDifficulty  *float64 `parquet:"fixture_difficulty_score,optional"`
}

// Value returns the raw value stored under a readable KPI name, or nil when
// the block is absent or the name is unknown. The result is meant for the
// coerce package.
func (k *ReadableKPIs) Value(name string) any {
	if k == nil {
		return nil
	}
	var v *float64
	switch name {
	case KPIFormScore:
		v = k.FormScore
	case KPIVolatility:
		v = k.Volatility
	case KPIMinutesLast5:
		v = k.MinutesLast5
	case KPIChanceCreation:
		v = k.ChanceCreation
	case KPIProgressionActions:
		v = k.ProgressionActions
	case KPIDefensiveActions:
		v = k.DefensiveActions
	case KPIShotsOnTarget:
		v = k.ShotsOnTarget
	case KPIScorePercentile60:
		v = k.ScorePercentile60
	case KPIScorePercentile70:
		v = k.ScorePercentile70
	case KPIRankScoreComposite:
		v = k.RankScoreComposite
	case KPIAvgScoreLast5:
		v = k.AvgScoreLast5
	case KPIAvgScoreLast15:
		v = k.AvgScoreLast15
	case KPIScoreTrend:
		v = k.ScoreTrend
	case KPIStarterRateLast5:
		v = k.StarterRateLast5
	case KPIScoreStdDev:
		v = k.ScoreStdDev
	case KPIFixtureDifficulty:
		v = k.FixtureDifficulty
	}
	if v == nil {
		return nil
	}
	return v
}

// RawMatch is one entry of a player's match history, using the compact
// column names of the source feed.
type RawMatch struct {
	Date      *string         `parquet:"d,optional"`
	Score     *float64        `parquet:"s,optional"`
	Status    *string         `parquet:"st,optional"`
	HomeSlug  *string         `parquet:"at,optional"` // compared against the player's club
	AwaySlug  *string         `parquet:"ht,optional"`
	Advanced  *MatchAdvanced  `parquet:"aa,optional"`
	Decisions *MatchDecisions `parquet:"dec,optional"`
}

// MatchAdvanced holds the advanced action counters of a match.
type MatchAdvanced struct {
	MinsPlayed             *float64 `parquet:"mins_played,optional"`
	AdjustedTotalAttAssist *float64 `parquet:"adjusted_total_att_assist,optional"`
}

// MatchDecisions holds decision counters; only the positive branch is read.
type MatchDecisions struct {
	Positive *MatchPositive `parquet:"pos,optional"`
}

// MatchPositive holds the positive decision counters of a match.
type MatchPositive struct {
	Goals      *float64 `parquet:"goals,optional"`
	GoalAssist *float64 `parquet:"goal_assist,optional"`
}

// RankingRecord is one row of the rankings table.
type RankingRecord struct {
	Slug      *string  `parquet:"slug,optional"`
	Rank      *int64   `parquet:"rank,optional"`
	RankScore *float64 `parquet:"rank_score,optional"`
	SS2       *float64 `parquet:"SS2,optional"`
	Pct70     *float64 `parquet:"pct70,optional"`
	Pct60     *float64 `parquet:"pct60,optional"`
}
