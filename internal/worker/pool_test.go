package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsJobs(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&executed, 1)
		return nil
	})
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestPool_FailingJobDoesNotKillWorker(t *testing.T) {
	var executed int32
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(JobFunc(func(ctx context.Context) error { return errors.New("boom") }))
	pool.Enqueue(JobFunc(func(ctx context.Context) error {
		atomic.AddInt32(&executed, 1)
		return nil
	}))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestPool_EnqueueFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	// not started, so nothing drains the queue
	noop := JobFunc(func(ctx context.Context) error { return nil })

	assert.True(t, pool.Enqueue(noop))
	assert.False(t, pool.Enqueue(noop))
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()
	pool.Stop()

	assert.False(t, pool.Enqueue(JobFunc(func(ctx context.Context) error { return nil })))
}
