package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Homestead_Go/internal/concurrency"
	"github.com/osse101/Homestead_Go/internal/domain"
	"github.com/osse101/Homestead_Go/internal/logger"
)

// sessionEntry is what the store keeps per session
type sessionEntry struct {
	Snapshot  domain.Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store keeps live sessions in memory. Sessions past the TTL or pushed out
// by the size limit are gone; there is no persistence behind it.
type Store struct {
	lru   *expirable.LRU[string, *sessionEntry]
	locks *concurrency.LockManager
}

// NewStore creates a session store holding at most size sessions, each
// living ttl after its last write
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Store{locks: concurrency.NewLockManager()}
	s.lru = expirable.NewLRU[string, *sessionEntry](size, s.onEvict, ttl)
	return s
}

func (s *Store) onEvict(id string, _ *sessionEntry) {
	s.locks.Forget(id)
	logger.Debug(LogMsgSessionEvicted, logger.AttrKeySessionID, id)
}

// Create stores a new session and returns its id
func (s *Store) Create(snapshot domain.Snapshot) string {
	id := uuid.New().String()
	now := time.Now()
	s.lru.Add(id, &sessionEntry{
		Snapshot:  snapshot.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	})
	return id
}

// Get returns a copy of the session's current snapshot
func (s *Store) Get(id string) (domain.Snapshot, error) {
	entry, ok := s.lru.Get(id)
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return entry.Snapshot.Clone(), nil
}

// Update runs fn against the session's snapshot while holding the session
// lock and commits whatever snapshot fn returns. Calls for one session run
// one at a time; different sessions do not block each other.
func (s *Store) Update(id string, fn func(domain.Snapshot) domain.Snapshot) (domain.Snapshot, error) {
	mu := s.locks.GetLock(id)
	mu.Lock()
	defer mu.Unlock()

	entry, ok := s.lru.Get(id)
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	next := fn(entry.Snapshot.Clone())
	s.lru.Add(id, &sessionEntry{
		Snapshot:  next.Clone(),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: time.Now(),
	})
	return next, nil
}

// Len reports the number of live sessions
func (s *Store) Len() int {
	return s.lru.Len()
}
