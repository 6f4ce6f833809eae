package expander_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports/mocks"
	"go.trai.ch/symex/internal/engine/expander"
	"go.uber.org/mock/gomock"
)

func element(t *testing.T, id, typ string, childRefs ...string) domain.Element {
	t.Helper()
	data := map[string]any{"@id": id, "@type": typ}
	if len(childRefs) > 0 {
		refs := make([]any, len(childRefs))
		for i, ref := range childRefs {
			refs[i] = map[string]any{"@id": ref}
		}
		data["ownedMember"] = refs
	}
	el, err := domain.ElementFromMap(data)
	require.NoError(t, err)
	return el
}

func newLoggerMock(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	return log
}

func TestExpander_Expand(t *testing.T) {
	t.Run("FailedChildOmittedOrderPreserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)

		parent := element(t, "root", "Package", "c1", "c2", "c3")
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "c1").Return(element(t, "c1", "PartDefinition"), nil)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "c2").Return(domain.Element{}, domain.ErrRemote)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "c3").Return(element(t, "c3", "PartUsage"), nil)

		e := expander.New(cacheMock, newLoggerMock(ctrl), 4)
		results := e.Expand(context.Background(), parent)

		require.Len(t, results, 3)
		assert.True(t, results[0].Loaded())
		assert.Error(t, results[1].Err)
		assert.True(t, results[2].Loaded())

		node := domain.NewNode(parent, 0)
		require.True(t, node.BeginExpand())
		node.Complete(results)

		children := node.Children()
		require.Len(t, children, 2)
		assert.Equal(t, "c1", children[0].Element.ID)
		assert.Equal(t, "c3", children[1].Element.ID)
	})

	t.Run("NonDisplayableFiltered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)

		parent := element(t, "root", "Package", "m1", "p1")
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "m1").Return(element(t, "m1", "Membership"), nil)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "p1").Return(element(t, "p1", "PartDefinition"), nil)

		e := expander.New(cacheMock, newLoggerMock(ctrl), 4)
		results := e.Expand(context.Background(), parent)

		require.Len(t, results, 2)
		assert.True(t, results[0].Filtered)
		assert.True(t, results[1].Loaded())
	})

	t.Run("NoChildRefs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := expander.New(mocks.NewMockElementCache(ctrl), newLoggerMock(ctrl), 4)
		assert.Empty(t, e.Expand(context.Background(), element(t, "leaf", "PartDefinition")))
	})

	t.Run("BoundedParallelism", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)

		const limit = 2
		var mu sync.Mutex
		inFlight, maxInFlight := 0, 0

		refs := []string{"a", "b", "c", "d", "e", "f"}
		parent := element(t, "root", "Package", refs...)
		for _, ref := range refs {
			cacheMock.EXPECT().GetOrFetch(gomock.Any(), ref).
				DoAndReturn(func(_ context.Context, id string) (domain.Element, error) {
					mu.Lock()
					inFlight++
					if inFlight > maxInFlight {
						maxInFlight = inFlight
					}
					mu.Unlock()

					el := element(t, id, "PartUsage")

					mu.Lock()
					inFlight--
					mu.Unlock()
					return el, nil
				})
		}

		e := expander.New(cacheMock, newLoggerMock(ctrl), limit)
		results := e.Expand(context.Background(), parent)

		require.Len(t, results, len(refs))
		assert.LessOrEqual(t, maxInFlight, limit)
		for i, res := range results {
			assert.Equal(t, refs[i], res.Ref)
		}
	})
}

func TestExpander_ExpandNode(t *testing.T) {
	t.Run("CompletesNode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "c1").Return(element(t, "c1", "PartDefinition"), nil)

		e := expander.New(cacheMock, newLoggerMock(ctrl), 4)
		node := domain.NewNode(element(t, "root", "Package", "c1"), 0)

		results, err := e.ExpandNode(context.Background(), node)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, domain.StateExpanded, node.State())
	})

	t.Run("SecondExpandIsNoop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)
		// Exactly one fetch even though ExpandNode runs twice.
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "c1").Return(element(t, "c1", "PartDefinition"), nil).Times(1)

		e := expander.New(cacheMock, newLoggerMock(ctrl), 4)
		node := domain.NewNode(element(t, "root", "Package", "c1"), 0)

		_, err := e.ExpandNode(context.Background(), node)
		require.NoError(t, err)
		results, err := e.ExpandNode(context.Background(), node)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("CancelledBeforeStart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := expander.New(mocks.NewMockElementCache(ctrl), newLoggerMock(ctrl), 4)
		node := domain.NewNode(element(t, "root", "Package", "c1"), 0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.ExpandNode(ctx, node)
		require.ErrorIs(t, err, context.Canceled)
		// The node may be retried after cancellation.
		assert.Equal(t, domain.StateUnexpanded, node.State())
	})
}

func TestWalker_Load(t *testing.T) {
	t.Run("LoadsSubtree", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)

		root := element(t, "root", "Package", "a", "b")
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "a").Return(element(t, "a", "PartDefinition", "a1"), nil)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "b").Return(element(t, "b", "PartDefinition"), nil)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "a1").Return(element(t, "a1", "AttributeUsage"), nil)

		e := expander.New(cacheMock, newLoggerMock(ctrl), 4)
		w := expander.NewWalker(e, 10)

		count, err := w.Load(context.Background(), []domain.Element{root})
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("CyclesVisitedOnce", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)

		// a references b, b references a.
		root := element(t, "a", "Package", "b")
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "b").Return(element(t, "b", "Package", "a"), nil)
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "a").Return(root, nil)

		e := expander.New(cacheMock, newLoggerMock(ctrl), 2)
		w := expander.NewWalker(e, 10)

		count, err := w.Load(context.Background(), []domain.Element{root})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("CancelledBetweenLevels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cacheMock := mocks.NewMockElementCache(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		root := element(t, "root", "Package", "a")
		cacheMock.EXPECT().GetOrFetch(gomock.Any(), "a").
			DoAndReturn(func(context.Context, string) (domain.Element, error) {
				// Cancel while the first level is in flight; the walker
				// finishes the level and stops before the next one.
				cancel()
				return element(t, "a", "Package", "a1"), nil
			})

		e := expander.New(cacheMock, newLoggerMock(ctrl), 2)
		w := expander.NewWalker(e, 10)

		count, err := w.Load(ctx, []domain.Element{root})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 2, count)
	})
}
