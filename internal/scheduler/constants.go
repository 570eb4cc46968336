package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Job scheduled"
	LogMsgTickSkipped  = "Scheduled tick skipped"
)
