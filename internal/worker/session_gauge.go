package worker

import (
	"context"

	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/metrics"
)

// SessionCounter reports how many sessions are live
type SessionCounter interface {
	Len() int
}

// SessionGaugeJob publishes the live session count to the active sessions gauge
type SessionGaugeJob struct {
	counter SessionCounter
}

// NewSessionGaugeJob creates the job
func NewSessionGaugeJob(counter SessionCounter) *SessionGaugeJob {
	return &SessionGaugeJob{counter: counter}
}

// Process samples the counter once
func (j *SessionGaugeJob) Process(ctx context.Context) error {
	n := j.counter.Len()
	metrics.ActiveSessions.Set(float64(n))
	logger.FromContext(ctx).Debug(LogMsgSessionGaugeTick, "sessions", n)
	return nil
}
