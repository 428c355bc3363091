package memstore_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/tableside/internal/adapters/outbound/memstore"
	"github.com/tableside/tableside/internal/domain"
)

var burger = domain.MenuItem{ID: "burger-01", Name: "Classic Cheeseburger", Price: 8.50}

func TestSessions_Create(t *testing.T) {
	store := memstore.NewSessions()
	sess := store.Create()

	require.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Cart)
	assert.Empty(t, sess.Cart)
	assert.Equal(t, sess.CreatedAt, sess.LastActive)
	assert.Equal(t, 1, store.Len())
}

func TestSessions_Get_NotFound(t *testing.T) {
	store := memstore.NewSessions()
	_, err := store.Get("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessions_Update_NotFound(t *testing.T) {
	store := memstore.NewSessions()
	_, err := store.Update("missing", func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessions_Update_BumpsLastActive(t *testing.T) {
	store := memstore.NewSessions()
	created := store.Create()

	time.Sleep(5 * time.Millisecond)
	updated, err := store.Update(created.ID, func(sess *domain.Session) error {
		sess.Cart = sess.Cart.AddLine(burger, 1)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.LastActive.After(created.LastActive))
}

func TestSessions_Update_ErrorLeavesSessionUntouched(t *testing.T) {
	store := memstore.NewSessions()
	created := store.Create()

	_, err := store.Update(created.ID, func(*domain.Session) error {
		return domain.ErrEmptyCart
	})
	require.ErrorIs(t, err, domain.ErrEmptyCart)

	after, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.LastActive, after.LastActive)
}

func TestSessions_Get_ReturnsSnapshot(t *testing.T) {
	store := memstore.NewSessions()
	sess := store.Create()
	_, err := store.Update(sess.ID, func(s *domain.Session) error {
		s.Cart = s.Cart.AddLine(burger, 1)
		return nil
	})
	require.NoError(t, err)

	snap, err := store.Get(sess.ID)
	require.NoError(t, err)
	snap.Cart[0].Quantity = 99

	again, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Cart[0].Quantity, "snapshot mutations must not leak into the store")
}

func TestSessions_ConcurrentUpdates_LoseNoIncrement(t *testing.T) {
	store := memstore.NewSessions()
	sess := store.Create()

	const workers = 100
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := store.Update(sess.ID, func(s *domain.Session) error {
				s.Cart = s.Cart.AddLine(burger, 1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.Len(t, final.Cart, 1)
	assert.Equal(t, workers, final.Cart[0].Quantity)
}

func TestSessions_ConcurrentCreates_AllDistinct(t *testing.T) {
	store := memstore.NewSessions()

	const workers = 50
	ids := make(chan string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ids <- store.Create().ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, workers, store.Len())
}

func TestSessions_EvictIdle(t *testing.T) {
	store := memstore.NewSessions()
	stale := store.Create()
	time.Sleep(10 * time.Millisecond)
	cutoff := time.Now()
	fresh := store.Create()

	evicted := store.EvictIdle(cutoff)

	assert.Equal(t, 1, evicted)
	_, err := store.Get(stale.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSessions_EvictIdle_NothingStale(t *testing.T) {
	store := memstore.NewSessions()
	store.Create()

	evicted := store.EvictIdle(time.Now().Add(-time.Hour))
	assert.Zero(t, evicted)
	assert.Equal(t, 1, store.Len())
}
