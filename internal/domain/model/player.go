package model

// Radar metric ids.
const (
	MetricCreation    = "creation"
	MetricProgression = "progression"
	MetricDefending   = "defending"
	MetricFinishing   = "finishing"
	MetricForm        = "form"
	MetricReliability = "reliability"
	MetricMinutes     = "minutes"
	MetricStability   = "stability"
)

// Player is the fully derived dashboard record of one players-table row.
type Player struct {
	Slug     string       `json:"slug"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	ClubSlug string       `json:"club_slug"`
	ClubName string       `json:"club_name"`
	Summary  Summary      `json:"summary"`
	Rankings RankSnapshot `json:"rankings"`
	Radar    Radar        `json:"radar"`
	Profile  Profile      `json:"profile"`
	Matches  []Match      `json:"matches"`
}

// WithGlobalRank returns a copy of p whose rank snapshot carries rank.
func (p Player) WithGlobalRank(rank int) Player {
	p.Rankings.GlobalRank = rank
	return p
}

// Summary holds rolling KPI figures and pass-through statistics.
type Summary struct {
	AvgScoreLast5      float64 `json:"avg_score_last5"`
	AvgScoreLast15     float64 `json:"avg_score_last15"`
	FormScore          float64 `json:"ss2_form_score"`
	ScoreTrend         float64 `json:"score_trend"`
	MinutesLast5       int     `json:"minutes_last5"`
	StarterRateLast5   float64 `json:"starter_rate_last5"`
	Volatility         float64 `json:"volatility"`
	ScoreStdDev        float64 `json:"score_std_dev"`
	RankScoreComposite float64 `json:"rank_score_composite"`
	FixtureDifficulty  float64 `json:"fixture_difficulty"`
	MatchesSampled     int     `json:"matches_sampled"`
	RecentAvgScore     float64 `json:"recent_avg_score"` // mean of extracted match scores, 0 without matches
}

// RankSnapshot is the ranking metadata of a player, either copied from the
// rankings table or derived from the player's own KPIs (PositionRank 0).
type RankSnapshot struct {
	PositionRank int     `json:"position_rank"`
	RankScore    float64 `json:"rank_score"`
	SS2          float64 `json:"ss2"`
	Pct70        float64 `json:"pct70"`
	Pct60        float64 `json:"pct60"`
	GlobalRank   int     `json:"global_rank"`
}

// Radar holds the eight [0,100] radar scores.
type Radar struct {
	Creation    float64 `json:"creation"`
	Progression float64 `json:"progression"`
	Defending   float64 `json:"defending"`
	Finishing   float64 `json:"finishing"`
	Form        float64 `json:"form"`
	Reliability float64 `json:"reliability"`
	Minutes     float64 `json:"minutes"`
	Stability   float64 `json:"stability"`
}

// Value returns the score for a radar metric id, 0 for unknown ids.
func (r Radar) Value(id string) float64 {
	switch id {
	case MetricCreation:
		return r.Creation
	case MetricProgression:
		return r.Progression
	case MetricDefending:
		return r.Defending
	case MetricFinishing:
		return r.Finishing
	case MetricForm:
		return r.Form
	case MetricReliability:
		return r.Reliability
	case MetricMinutes:
		return r.Minutes
	case MetricStability:
		return r.Stability
	default:
		return 0
	}
}

// Profile holds the four composite indices.
type Profile struct {
	AttackIndex      float64 `json:"attack_index"`
	ControlIndex     float64 `json:"control_index"`
	DefenseIndex     float64 `json:"defense_index"`
	ConsistencyIndex float64 `json:"consistency_index"`
}

// Match is a normalized entry of a player's recent match history.
type Match struct {
	Date       string  `json:"date"`
	Score      float64 `json:"score"`
	Status     string  `json:"status"`
	Opponent   string  `json:"opponent"`
	IsHome     bool    `json:"is_home"`
	Minutes    int     `json:"minutes"`
	Goals      int     `json:"goals"`
	Assists    int     `json:"assists"`
	KeyActions int     `json:"key_actions"`
}
