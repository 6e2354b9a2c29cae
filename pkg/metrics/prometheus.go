package metrics

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage label values.
const (
	StageLoad      = "load"
	StageBounds    = "bounds"
	StageTransform = "transform"
	StageRank      = "rank"
	StageSerialize = "serialize"
)

// Manager manages all Prometheus metrics of a build run.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Volume
	playersTransformed prometheus.Counter
	rankingsIndexed    prometheus.Counter
	rankingFallbacks   prometheus.Counter
	rankingDuplicates  prometheus.Counter
	matchesSkipped     prometheus.Counter

	// Timing
	stageDuration *prometheus.HistogramVec

	// Outcome
	runFailures   *prometheus.CounterVec
	lastSuccess   prometheus.Gauge
	payloadBytes  prometheus.Gauge
	playersOutput prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scoutboard",
		subsystem:        "build",
		histogramBuckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.playersTransformed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_transformed_total",
		Help:      "Total number of player rows turned into dashboard records",
	})

	m.rankingsIndexed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rankings_indexed_total",
		Help:      "Total number of distinct slugs indexed from the rankings table",
	})

	m.rankingFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_fallbacks_total",
		Help:      "Total number of players whose rank snapshot was derived from their own KPIs",
	})

	m.rankingDuplicates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_duplicates_total",
		Help:      "Total number of rankings rows overriding an earlier row with the same slug",
	})

	m.matchesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_skipped_total",
		Help:      "Total number of malformed match entries dropped",
	})

	m.stageDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"stage"},
	)

	m.runFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "run_failures_total",
			Help:      "Total number of aborted runs by failing stage",
		},
		[]string{"stage"},
	)

	m.lastSuccess = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful run",
	})

	m.payloadBytes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "payload_bytes",
		Help:      "Size of the last written payload in bytes",
	})

	m.playersOutput = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_output",
		Help:      "Number of players in the last written payload",
	})
}

// RecordPlayersTransformed adds n to the transformed players counter.
func RecordPlayersTransformed(n int) {
	globalManager.playersTransformed.Add(float64(n))
}

// RecordRankingsIndexed adds n to the indexed rankings counter.
func RecordRankingsIndexed(n int) {
	globalManager.rankingsIndexed.Add(float64(n))
}

// RecordRankingFallback increments the ranking fallback counter.
func RecordRankingFallback() {
	globalManager.rankingFallbacks.Inc()
}

// RecordRankingDuplicates adds n to the duplicated rankings slug counter.
func RecordRankingDuplicates(n int) {
	globalManager.rankingDuplicates.Add(float64(n))
}

// RecordMatchesSkipped adds n to the malformed match counter.
func RecordMatchesSkipped(n int) {
	globalManager.matchesSkipped.Add(float64(n))
}

// ObserveStage records how long a pipeline stage took.
func ObserveStage(stage string, d time.Duration) {
	globalManager.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordRunFailure increments the failure counter for the failing stage.
func RecordRunFailure(stage string) {
	globalManager.runFailures.WithLabelValues(stage).Inc()
}

// RecordRunSuccess stamps the completion time and the payload figures.
func RecordRunSuccess(at time.Time, players int, bytes int64) {
	globalManager.lastSuccess.Set(float64(at.Unix()))
	globalManager.playersOutput.Set(float64(players))
	globalManager.payloadBytes.Set(float64(bytes))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile writes the registry in the Prometheus text format to path,
// for pickup by a node-exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return errors.Mark(errors.Wrapf(err, "write metrics to %s", path), ErrWriteTextfile)
	}
	return nil
}
