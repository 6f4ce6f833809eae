package cache_test

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symex/internal/adapters/cache"
	"go.trai.ch/symex/internal/adapters/logger"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var session = domain.Session{ProjectID: "p1", CommitID: "c1"}

func element(t *testing.T, id string) domain.Element {
	t.Helper()
	el, err := domain.ElementFromMap(map[string]any{"@id": id, "@type": "PartDefinition"})
	require.NoError(t, err)
	return el
}

func discardLogger() *logger.Logger {
	log := logger.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStore_GetOrFetch(t *testing.T) {
	t.Run("FetchesOncePerID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockModelClient(ctrl)
		client.EXPECT().
			Element(gomock.Any(), session, "e1").
			Return(element(t, "e1"), nil).
			Times(1)

		store := cache.New(session, client, discardLogger())

		first, err := store.GetOrFetch(context.Background(), "e1")
		require.NoError(t, err)
		second, err := store.GetOrFetch(context.Background(), "e1")
		require.NoError(t, err)

		// Fetch+cache is idempotent: both calls return the same element.
		assert.Equal(t, first, second)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("FetchFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockModelClient(ctrl)
		client.EXPECT().
			Element(gomock.Any(), session, "gone").
			Return(domain.Element{}, domain.ErrRemote)

		store := cache.New(session, client, discardLogger())

		_, err := store.GetOrFetch(context.Background(), "gone")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrNotFoundInCache.Error())
		assert.Equal(t, 0, store.Len())
	})

	t.Run("ConcurrentCallsShareOneFlight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockModelClient(ctrl)

		var calls atomic.Int32
		release := make(chan struct{})
		client.EXPECT().
			Element(gomock.Any(), session, "e1").
			DoAndReturn(func(context.Context, domain.Session, string) (domain.Element, error) {
				calls.Add(1)
				<-release
				return element(t, "e1"), nil
			}).
			Times(1)

		store := cache.New(session, client, discardLogger())

		const goroutines = 8
		var wg sync.WaitGroup
		started := make(chan struct{}, goroutines)
		for range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				started <- struct{}{}
				el, err := store.GetOrFetch(context.Background(), "e1")
				assert.NoError(t, err)
				assert.Equal(t, "e1", el.ID)
			}()
		}
		for range goroutines {
			<-started
		}
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestStore_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockModelClient(ctrl)
	client.EXPECT().
		Element(gomock.Any(), session, "e1").
		Return(element(t, "e1"), nil).
		Times(2)

	store := cache.New(session, client, discardLogger())

	_, err := store.GetOrFetch(context.Background(), "e1")
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	store.Clear()
	assert.Equal(t, 0, store.Len())
	_, ok := store.Get("e1")
	assert.False(t, ok)

	// A previously cached id issues a new request after Clear.
	_, err = store.GetOrFetch(context.Background(), "e1")
	require.NoError(t, err)
}

func TestStore_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := cache.New(session, mocks.NewMockModelClient(ctrl), discardLogger())

	store.Set(element(t, "a"))
	store.Set(element(t, "b"))

	snap := store.Snapshot()
	require.Len(t, snap, 2)

	// The snapshot is a copy, detached from the store.
	delete(snap, "a")
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, session, store.Session())
}
