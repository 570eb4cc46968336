package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Callers that know a key is gone
// for good call Forget so the map does not grow without bound.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Forget drops the mutex for key. A later GetLock creates a fresh one.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}

// Len reports how many keys currently hold a mutex
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
