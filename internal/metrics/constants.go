package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Game metric names
const (
	MetricNameGamesStarted   = "homestead_games_started_total"
	MetricNameActiveSessions = "homestead_active_sessions"
	MetricNameCropsPlanted   = "homestead_crops_planted_total"
	MetricNameCropsMatured   = "homestead_crops_matured_total"
	MetricNameCropsWithered  = "homestead_crops_withered_total"
	MetricNameCropsHarvested = "homestead_crops_harvested_total"
	MetricNameCropsRemoved   = "homestead_crops_removed_total"
	MetricNameDaysAdvanced   = "homestead_days_advanced_total"
	MetricNameLevelUps       = "homestead_level_ups_total"
	MetricNameCoinsEarned    = "homestead_coins_earned_total"
	MetricNameAdvisorQueries = "homestead_advisor_queries_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published"
)

// Game metric help text
const (
	HelpTextGamesStarted   = "Total number of game sessions started"
	HelpTextActiveSessions = "Number of game sessions currently held in memory"
	HelpTextCropsPlanted   = "Total number of crops planted"
	HelpTextCropsMatured   = "Total number of crops that reached maturity"
	HelpTextCropsWithered  = "Total number of crops that withered"
	HelpTextCropsHarvested = "Total number of crops harvested"
	HelpTextCropsRemoved   = "Total number of crops removed without harvest"
	HelpTextDaysAdvanced   = "Total number of daily ticks across all sessions"
	HelpTextLevelUps       = "Total number of level ups"
	HelpTextCoinsEarned    = "Total coins earned from harvests"
	HelpTextAdvisorQueries = "Total number of advisor queries"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelCrop   = "crop"
	LabelKind   = "kind"
)

// Metadata keys read from events
const (
	MetadataKeyCrop = "crop"
)

// UnmatchedRoute labels requests no route matched so raw paths never become labels
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
