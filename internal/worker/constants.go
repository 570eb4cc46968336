package worker

import "time"

// DefaultSessionGaugeInterval is how often the active session gauge is refreshed
const DefaultSessionGaugeInterval = 15 * time.Second

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
)

// Log messages - jobs
const (
	LogMsgSessionGaugeTick = "Active sessions sampled"
)
