package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/Homestead_Go/internal/logger"
	"github.com/osse101/Homestead_Go/internal/worker"
)

// Scheduler enqueues jobs onto a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job once now and then every interval until Stop.
// A tick that finds the pool queue full is skipped.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		s.workerPool.Enqueue(job)
		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					logger.Debug(LogMsgTickSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
	logger.Info(LogMsgJobScheduled, "job", name, "interval", interval)
}

// Stop stops all scheduled jobs and waits for their goroutines. Safe to call twice.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
