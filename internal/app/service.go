// Package service runs the dashboard build: it loads the input tables,
// derives every player record, ranks the population and writes the payload.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/okian/scoutboard/internal/adapters/sink"
	"github.com/okian/scoutboard/internal/adapters/source"
	"github.com/okian/scoutboard/internal/config"
	"github.com/okian/scoutboard/internal/domain/bounds"
	"github.com/okian/scoutboard/internal/domain/catalog"
	"github.com/okian/scoutboard/internal/domain/model"
	"github.com/okian/scoutboard/internal/domain/ranking"
	"github.com/okian/scoutboard/pkg/logger"
	"github.com/okian/scoutboard/pkg/metrics"
)

// TimestampLayout formats generated_at_utc, second precision with a Z suffix.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Source provides the two input tables.
type Source interface {
	Players(ctx context.Context) ([]model.PlayerRecord, error)
	Rankings(ctx context.Context) ([]model.RankingRecord, error)
	// Files returns the names listed under source_files, players first.
	Files() []string
}

// Sink persists the finished payload.
type Sink interface {
	Write(ctx context.Context, p *model.Payload) (sink.Receipt, error)
}

// Result summarizes a completed run.
type Result struct {
	RunID          string
	OutputPath     string
	Players        int
	Bytes          int64
	Digest         string
	Fallbacks      int
	SkippedMatches int
}

// Service orchestrates a single build run.
type Service struct {
	source Source
	sink   Sink
	clock  func() time.Time
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the table source.
func WithSource(src Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithSink sets the payload sink.
func WithSink(dst Sink) Option {
	return func(s *Service) {
		if dst != nil {
			s.sink = dst
		}
	}
}

// WithClock sets the clock used for generated_at_utc.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. Without options it reads and writes the default
// relative paths.
func New(opts ...Option) *Service {
	defaults := config.New()
	s := &Service{
		source: source.NewTables(defaults.PlayersPath, defaults.RankingsPath),
		sink:   sink.NewJSONWriter(defaults.OutputPath),
		clock:  time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes the pipeline once. Any load or write failure aborts the run
// before the output file is touched or replaced.
func (s *Service) Run(ctx context.Context) (Result, error) {
	if s.logger == nil {
		s.logger = logger.Get()
	}
	res := Result{RunID: uuid.NewString()}
	log := s.logger.With(logger.String("run_id", res.RunID))
	began := time.Now()
	generatedAt := s.clock().UTC()

	// load
	stage := time.Now()
	records, err := s.source.Players(ctx)
	if err != nil {
		return s.fail(ctx, log, metrics.StageLoad, err)
	}
	rows, err := s.source.Rankings(ctx)
	if err != nil {
		return s.fail(ctx, log, metrics.StageLoad, err)
	}
	metrics.ObserveStage(metrics.StageLoad, time.Since(stage))
	log.Info(ctx, "tables loaded",
		logger.Int("players", len(records)),
		logger.Int("rankings", len(rows)),
	)

	// bounds
	stage = time.Now()
	b := bounds.Collect(records)
	for _, key := range bounds.Keys {
		r := b.Get(key)
		if r.Samples == 0 {
			log.Warn(ctx, "no KPI samples for bound, using neutral range", logger.String("kpi", key))
			continue
		}
		log.Debug(ctx, "bound collected",
			logger.String("kpi", key),
			logger.Float64("min", r.Min),
			logger.Float64("max", r.Max),
			logger.Int("samples", r.Samples),
		)
	}
	metrics.ObserveStage(metrics.StageBounds, time.Since(stage))

	// transform
	stage = time.Now()
	ix := ranking.NewIndex(rows)
	metrics.RecordRankingsIndexed(ix.Len())
	if dups := ix.Duplicates(); len(dups) > 0 {
		metrics.RecordRankingDuplicates(len(dups))
		log.Warn(ctx, "duplicate slugs in rankings, later rows win",
			logger.Int("count", len(dups)),
			logger.Any("slugs", dups),
		)
	}

	tf := NewTransformer(b, ix)
	built := make([]model.Player, 0, len(records))
	for i := range records {
		p, out := tf.Transform(&records[i])
		if !out.Ranked {
			res.Fallbacks++
			metrics.RecordRankingFallback()
			log.Debug(ctx, "no rankings entry, snapshot derived from KPIs", logger.String("slug", p.Slug))
		}
		if out.SkippedMatches > 0 {
			res.SkippedMatches += out.SkippedMatches
			log.Debug(ctx, "malformed matches skipped",
				logger.String("slug", p.Slug),
				logger.Int("count", out.SkippedMatches),
			)
		}
		built = append(built, p)
	}
	metrics.RecordPlayersTransformed(len(built))
	metrics.RecordMatchesSkipped(res.SkippedMatches)
	metrics.ObserveStage(metrics.StageTransform, time.Since(stage))
	log.Info(ctx, "players transformed",
		logger.Int("players", len(built)),
		logger.Int("ranking_fallbacks", res.Fallbacks),
		logger.Int("matches_skipped", res.SkippedMatches),
	)

	// rank
	stage = time.Now()
	ranked := ranking.Assign(built)
	metrics.ObserveStage(metrics.StageRank, time.Since(stage))

	// serialize
	stage = time.Now()
	payload := buildPayload(s.source.Files(), ranked, generatedAt)
	receipt, err := s.sink.Write(ctx, payload)
	if err != nil {
		return s.fail(ctx, log, metrics.StageSerialize, err)
	}
	metrics.ObserveStage(metrics.StageSerialize, time.Since(stage))
	metrics.RecordRunSuccess(time.Now(), receipt.Players, receipt.Bytes)

	res.OutputPath = receipt.Path
	res.Players = receipt.Players
	res.Bytes = receipt.Bytes
	res.Digest = receipt.Digest
	log.Info(ctx, "payload written",
		logger.String("path", receipt.Path),
		logger.Int("players", receipt.Players),
		logger.Int("bytes", int(receipt.Bytes)),
		logger.String("digest", receipt.Digest),
		logger.Duration("elapsed", time.Since(began)),
	)
	return res, nil
}

func (s *Service) fail(ctx context.Context, log logger.Logger, stage string, err error) (Result, error) {
	metrics.RecordRunFailure(stage)
	log.Error(ctx, "build aborted", logger.String("stage", stage), logger.Error(err))
	return Result{}, err
}

func buildPayload(files []string, players []model.Player, at time.Time) *model.Payload {
	return &model.Payload{
		GeneratedAtUTC: at.Format(TimestampLayout),
		SourceFiles:    files,
		RadarMetrics:   catalog.RadarMetrics(),
		MetricPresets:  catalog.MetricPresets(),
		Positions:      catalog.Positions(players),
		Clubs:          catalog.Clubs(players),
		Players:        sortByName(players),
	}
}

// sortByName returns players ordered by case-folded name. Equal names keep
// their input order.
func sortByName(players []model.Player) []model.Player {
	fold := cases.Lower(language.Und)
	keys := make([]string, len(players))
	order := make([]int, len(players))
	for i := range players {
		keys[i] = fold.String(players[i].Name)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return keys[order[a]] < keys[order[b]] })

	out := make([]model.Player, len(players))
	for i, j := range order {
		out[i] = players[j]
	}
	return out
}
