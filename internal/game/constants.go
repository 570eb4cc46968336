package game

import "time"

// Store defaults used when the config leaves them unset
const (
	DefaultCacheSize = 1024
	DefaultTTL       = 24 * time.Hour
)

// ReasonUnknownAction is reported when Apply receives an action it does not know
const ReasonUnknownAction = "unknown action"

// Log messages
const (
	LogMsgGameStarted       = "Game session started"
	LogMsgActionApplied     = "Action applied"
	LogMsgActionDeclined    = "Action declined"
	LogMsgPublishFailed     = "Failed to publish game event"
	LogMsgInvariantViolated = "Plot invariant violated after action"
	LogMsgSessionEvicted    = "Game session evicted"
)
