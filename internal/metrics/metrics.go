package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	GamesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamesStarted,
			Help: HelpTextGamesStarted,
		},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelCrop},
	)

	CropsMatured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsMatured,
			Help: HelpTextCropsMatured,
		},
		[]string{LabelCrop},
	)

	CropsWithered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsWithered,
			Help: HelpTextCropsWithered,
		},
		[]string{LabelCrop},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelCrop},
	)

	CropsRemoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsRemoved,
			Help: HelpTextCropsRemoved,
		},
		[]string{LabelCrop},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
	)

	AdvisorQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdvisorQueries,
			Help: HelpTextAdvisorQueries,
		},
		[]string{LabelKind},
	)
)
