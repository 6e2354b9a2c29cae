package sampledata

import (
	"cmp"
	"context"
	"encoding/binary"
	"math/rand/v2"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/okian/scoutboard/internal/adapters/source"
	"github.com/okian/scoutboard/internal/domain/coerce"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/pkg/logger"
)

// Performer tiers, drawn uniformly; each maps to a base level in [0, 10].
const (
	caseAveragePerformer = iota
	caseHighPerformer
	caseLowPerformer
	caseElitePerformer
	caseVeryLowPerformer
	caseMidHighPerformer
	caseMidLowPerformer
	caseWideRange
	tierCount
)

type generator struct {
	cfg     Config
	src     *rand.ChaCha8
	rng     *rand.Rand
	matchNo int
}

// Generate builds a dataset from cfg. It is deterministic in cfg.
func Generate(cfg Config) Dataset {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:], cfg.Seed)
	src := rand.NewChaCha8(seed)
	g := &generator{cfg: cfg, src: src, rng: rand.New(src)}

	players := make([]model.PlayerRecord, cfg.Players)
	for i := range players {
		players[i] = g.player(i)
	}
	return Dataset{Players: players, Rankings: g.rankings(players)}
}

// Write generates a dataset and stores it as PlayersFile and RankingsFile
// under dir.
func Write(ctx context.Context, dir string, cfg Config) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	ds := Generate(cfg)

	playersPath := filepath.Join(dir, PlayersFile)
	if err := source.WriteTable(playersPath, ds.Players); err != nil {
		return Dataset{}, errors.Wrap(err, "write players table")
	}
	rankingsPath := filepath.Join(dir, RankingsFile)
	if err := source.WriteTable(rankingsPath, ds.Rankings); err != nil {
		return Dataset{}, errors.Wrap(err, "write rankings table")
	}

	logger.Get().Info(ctx, "sample tables written",
		logger.String("players_path", playersPath),
		logger.Int("players", len(ds.Players)),
		logger.String("rankings_path", rankingsPath),
		logger.Int("rankings", len(ds.Rankings)),
	)
	return ds, nil
}

func (g *generator) player(i int) model.PlayerRecord {
	id, err := uuid.NewRandomFromReader(g.src)
	short := "00000000"
	if err == nil {
		short = id.String()[:8]
	}
	first := pick(g.rng, firstNames)
	last := pick(g.rng, lastNames)
	position := pick(g.rng, positions)
	club := pick(g.rng, clubs)
	level := g.level()

	rec := model.PlayerRecord{
		Slug:     ptr(strings.ToLower(first+"-"+last) + "-" + short),
		Name:     ptr(first + " " + last),
		Position: ptr(position),
		ClubSlug: ptr(club),
	}
	if g.cfg.MissingKPIsEvery == 0 || (i+1)%g.cfg.MissingKPIsEvery != 0 {
		rec.KPIs = g.kpis(level, position)
	}
	rec.Matches = g.matches(level, position, club)
	return rec
}

// level follows a skewed mix of performer tiers so bounds and ranks spread out.
func (g *generator) level() float64 {
	f := g.rng.Float64()
	switch g.rng.IntN(tierCount) {
	case caseAveragePerformer:
		return 3 + f*4
	case caseHighPerformer:
		return 7 + f*2
	case caseLowPerformer:
		return 0.1 + f*2.9
	case caseElitePerformer:
		return 9 + f
	case caseVeryLowPerformer:
		return 0.1 + f*0.9
	case caseMidHighPerformer:
		return 6 + f*2
	case caseMidLowPerformer:
		return 2 + f*2
	default:
		return 0.1 + f*9.9
	}
}

func (g *generator) kpis(level float64, position string) *model.ReadableKPIs {
	share := level / 10
	volatility := coerce.Round(2+(10-level)*0.8+g.noise(1), 3)
	attack, defend := 0.0, 0.0
	switch position {
	case "Forward":
		attack = 0.15
	case "Defender", "Goalkeeper":
		defend = 0.15
	}

	return &model.ReadableKPIs{
		FormScore:          ptr(coerce.Round(30+level*6+g.noise(5), 2)),
		Volatility:         ptr(volatility),
		MinutesLast5:       ptr(float64(g.rng.IntN(5*maxMinutes + 1))),
		ChanceCreation:     ptr(g.share(share+attack, 0.15)),
		ProgressionActions: ptr(g.share(share, 0.15)),
		DefensiveActions:   ptr(g.share(share+defend, 0.15)),
		ShotsOnTarget:      ptr(g.share(share+attack, 0.2)),
		ScorePercentile60:  ptr(g.share(share, 0.1)),
		ScorePercentile70:  ptr(g.share(share-0.1, 0.1)),
		RankScoreComposite: ptr(coerce.Round(share+g.noise(0.05), 3)),
		AvgScoreLast5:      ptr(coerce.Round(35+level*5+g.noise(6), 2)),
		AvgScoreLast15:     ptr(coerce.Round(35+level*5+g.noise(3), 2)),
		ScoreTrend:         ptr(coerce.Round(g.noise(3), 3)),
		StarterRateLast5:   ptr(g.share(share, 0.2)),
		ScoreStdDev:        ptr(coerce.Round(volatility*1.2, 2)),
		FixtureDifficulty:  ptr(coerce.Round(0.3+g.rng.Float64()*0.6, 3)),
	}
}

func (g *generator) matches(level float64, position, club string) []*model.RawMatch {
	n := g.rng.IntN(maxMatches + 1)
	start, _ := time.Parse(time.DateOnly, seasonStart)
	out := make([]*model.RawMatch, 0, n)
	for k := range n {
		g.matchNo++
		if g.cfg.MalformedMatchEvery > 0 && g.matchNo%g.cfg.MalformedMatchEvery == 0 {
			out = append(out, nil)
			continue
		}
		out = append(out, g.match(start.AddDate(0, 0, k*matchSpacing), level, position, club))
	}
	// Feeds are not date ordered.
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (g *generator) match(day time.Time, level float64, position, club string) *model.RawMatch {
	opponent := pick(g.rng, clubs)
	for opponent == club {
		opponent = pick(g.rng, clubs)
	}
	home, away := club, opponent
	if g.rng.IntN(2) == 0 {
		home, away = opponent, club
	}

	status, minutes := "starter", 60+g.rng.IntN(maxMinutes-60+1)
	switch r := g.rng.Float64(); {
	case r < 0.15:
		status, minutes = "bench", 0
	case r < 0.35:
		status, minutes = "substitute", 1+g.rng.IntN(30)
	}

	goals := 0
	if minutes > 0 && position == "Forward" && g.rng.Float64() < level/15 {
		goals = 1 + g.rng.IntN(2)
	}
	assists := 0
	if minutes > 0 && g.rng.Float64() < level/25 {
		assists = 1
	}

	return &model.RawMatch{
		Date:     ptr(day.Format(time.DateOnly)),
		Score:    ptr(coerce.Round(35+level*5+g.noise(12), 2)),
		Status:   ptr(status),
		HomeSlug: ptr(home),
		AwaySlug: ptr(away),
		Advanced: &model.MatchAdvanced{
			MinsPlayed:             ptr(float64(minutes)),
			AdjustedTotalAttAssist: ptr(float64(g.rng.IntN(int(level) + 2))),
		},
		Decisions: &model.MatchDecisions{
			Positive: &model.MatchPositive{
				Goals:      ptr(float64(goals)),
				GoalAssist: ptr(float64(assists)),
			},
		},
	}
}

// rankings covers about cfg.Coverage of the players, ranked within their
// position by composite score.
func (g *generator) rankings(players []model.PlayerRecord) []model.RankingRecord {
	byPosition := make(map[string][]model.RankingRecord)
	for _, p := range players {
		if g.rng.Float64() >= g.cfg.Coverage {
			continue
		}
		kpis := p.KPIs
		row := model.RankingRecord{
			Slug:      p.Slug,
			RankScore: ptr(coerce.Float(kpis.Value(model.KPIRankScoreComposite), 0)),
			SS2:       ptr(coerce.Float(kpis.Value(model.KPIFormScore), 0)),
			Pct70:     ptr(coerce.Float(kpis.Value(model.KPIScorePercentile70), 0)),
			Pct60:     ptr(coerce.Float(kpis.Value(model.KPIScorePercentile60), 0)),
		}
		byPosition[*p.Position] = append(byPosition[*p.Position], row)
	}

	var out []model.RankingRecord
	for _, position := range positions {
		rows := byPosition[position]
		slices.SortStableFunc(rows, func(a, b model.RankingRecord) int {
			return cmp.Compare(*b.RankScore, *a.RankScore)
		})
		for i := range rows {
			rows[i].Rank = ptr(int64(i + 1))
		}
		out = append(out, rows...)
	}
	return out
}

func (g *generator) noise(amplitude float64) float64 {
	return (g.rng.Float64()*2 - 1) * amplitude
}

func (g *generator) share(center, spread float64) float64 {
	return coerce.Round(coerce.Clamp01(center+g.noise(spread)), 4)
}

func pick[T any](rng *rand.Rand, from []T) T {
	return from[rng.IntN(len(from))]
}

func ptr[T any](v T) *T { return &v }
