package game

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Homestead_Go/internal/domain"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(10, time.Hour)
	snap := NewSnapshot(3, 100)

	id := store.Create(snap)
	got, err := store.Get(id)

	require.NoError(t, err)
	assert.Equal(t, snap, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore(10, time.Hour)
	id := store.Create(NewSnapshot(3, 100))

	got, err := store.Get(id)
	require.NoError(t, err)
	got.Plots[0].Crop = domain.CropOnion

	again, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.CropNone, again.Plots[0].Crop)
}

func TestStore_NotFound(t *testing.T) {
	store := NewStore(10, time.Hour)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = store.Update("missing", func(s domain.Snapshot) domain.Snapshot { return s })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_EvictsOldestWhenFull(t *testing.T) {
	store := NewStore(2, time.Hour)

	first := store.Create(NewSnapshot(1, 0))
	second := store.Create(NewSnapshot(1, 0))
	third := store.Create(NewSnapshot(1, 0))

	_, err := store.Get(first)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(second)
	assert.NoError(t, err)
	_, err = store.Get(third)
	assert.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	store := NewStore(10, 20*time.Millisecond)
	id := store.Create(NewSnapshot(1, 0))

	time.Sleep(60 * time.Millisecond)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_EvictionForgetsLock(t *testing.T) {
	store := NewStore(1, time.Hour)
	id := store.Create(NewSnapshot(1, 0))
	_, err := store.Update(id, func(s domain.Snapshot) domain.Snapshot { return s })
	require.NoError(t, err)
	require.Equal(t, 1, store.locks.Len())

	store.Create(NewSnapshot(1, 0))

	_, err = store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 0, store.locks.Len())
}

func TestStore_UpdateSerializesPerSession(t *testing.T) {
	store := NewStore(10, time.Hour)
	id := store.Create(NewSnapshot(1, 0))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(id, func(s domain.Snapshot) domain.Snapshot {
				s.State.Coins++
				return s
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 100, got.State.Coins)
}
