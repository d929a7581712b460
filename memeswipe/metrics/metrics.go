package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder receives engine and HTTP events.
type Recorder interface {
	IncRequestsTotal(route string, status int)
	ObserveRequestDuration(route string, duration time.Duration)
	IncActions(action, outcome string)
	AddExperience(amount int64)
	AddDiamonds(source string, amount int64)
	AddLevelUps(levels int)
	IncQuestsCompleted(kind string)
	IncStreakTransitions(status string)
	IncCatalogCacheHits()
	IncCatalogCacheMisses()
}

type prometheusRecorder struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	actionsTotal      *prometheus.CounterVec
	experienceTotal   prometheus.Counter
	diamondsTotal     *prometheus.CounterVec
	levelUpsTotal     prometheus.Counter
	questsCompleted   *prometheus.CounterVec
	streakTransitions *prometheus.CounterVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
}

// New returns a no-op recorder when disabled; otherwise collectors are registered on reg.
func New(enabled bool, reg prometheus.Registerer) Recorder {
	if !enabled {
		return Noop()
	}

	factory := promauto.With(reg)
	return &prometheusRecorder{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memeswipe_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "memeswipe_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		actionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memeswipe_actions_total",
			Help: "Progression actions by outcome",
		}, []string{"action", "outcome"}),

		experienceTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "memeswipe_experience_granted_total",
			Help: "Experience credited to users",
		}),

		diamondsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memeswipe_diamonds_granted_total",
			Help: "Diamonds credited to users by source",
		}, []string{"source"}),

		levelUpsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "memeswipe_level_ups_total",
			Help: "Levels gained by users",
		}),

		questsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memeswipe_quests_completed_total",
			Help: "Quest assignments completed by action kind",
		}, []string{"kind"}),

		streakTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memeswipe_streak_transitions_total",
			Help: "Daily streak evaluations by status",
		}, []string{"status"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "memeswipe_catalog_cache_hits_total",
			Help: "Quest catalog cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "memeswipe_catalog_cache_misses_total",
			Help: "Quest catalog cache misses",
		}),
	}
}

func (m *prometheusRecorder) IncRequestsTotal(route string, status int) {
	m.requestsTotal.WithLabelValues(route, httpStatusBucket(status)).Inc()
}

func (m *prometheusRecorder) ObserveRequestDuration(route string, duration time.Duration) {
	m.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (m *prometheusRecorder) IncActions(action, outcome string) {
	m.actionsTotal.WithLabelValues(action, outcome).Inc()
}

func (m *prometheusRecorder) AddExperience(amount int64) {
	if amount > 0 {
		m.experienceTotal.Add(float64(amount))
	}
}

func (m *prometheusRecorder) AddDiamonds(source string, amount int64) {
	if amount > 0 {
		m.diamondsTotal.WithLabelValues(source).Add(float64(amount))
	}
}

func (m *prometheusRecorder) AddLevelUps(levels int) {
	if levels > 0 {
		m.levelUpsTotal.Add(float64(levels))
	}
}

func (m *prometheusRecorder) IncQuestsCompleted(kind string) {
	m.questsCompleted.WithLabelValues(kind).Inc()
}

func (m *prometheusRecorder) IncStreakTransitions(status string) {
	m.streakTransitions.WithLabelValues(status).Inc()
}

func (m *prometheusRecorder) IncCatalogCacheHits() {
	m.cacheHits.Inc()
}

func (m *prometheusRecorder) IncCatalogCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// Noop returns a recorder that discards everything.
func Noop() Recorder {
	return noopRecorder{}
}

type noopRecorder struct{}

func (noopRecorder) IncRequestsTotal(_ string, _ int)                 {}
func (noopRecorder) ObserveRequestDuration(_ string, _ time.Duration) {}
func (noopRecorder) IncActions(_, _ string)                           {}
func (noopRecorder) AddExperience(_ int64)                            {}
func (noopRecorder) AddDiamonds(_ string, _ int64)                    {}
func (noopRecorder) AddLevelUps(_ int)                                {}
func (noopRecorder) IncQuestsCompleted(_ string)                      {}
func (noopRecorder) IncStreakTransitions(_ string)                    {}
func (noopRecorder) IncCatalogCacheHits()                             {}
func (noopRecorder) IncCatalogCacheMisses()                           {}
