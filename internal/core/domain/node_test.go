package domain_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symex/internal/core/domain"
)

func makeElement(t *testing.T, id, typ string) domain.Element {
	t.Helper()
	el, err := domain.ElementFromMap(map[string]any{"@id": id, "@type": typ})
	require.NoError(t, err)
	return el
}

func TestNode_StateMachine(t *testing.T) {
	t.Run("PlaceholderUntilExpanded", func(t *testing.T) {
		n := domain.NewNode(makeElement(t, "root", "Package"), 0)
		assert.Equal(t, domain.StateUnexpanded, n.State())
		assert.True(t, n.HasPlaceholder())

		require.True(t, n.BeginExpand())
		assert.Equal(t, domain.StateExpanding, n.State())
		assert.True(t, n.HasPlaceholder())

		n.Complete(nil)
		assert.Equal(t, domain.StateExpanded, n.State())
		assert.False(t, n.HasPlaceholder())
		assert.Empty(t, n.Children())
	})

	t.Run("BeginExpandOnlyOnce", func(t *testing.T) {
		n := domain.NewNode(makeElement(t, "root", "Package"), 0)
		require.True(t, n.BeginExpand())
		assert.False(t, n.BeginExpand())
	})

	t.Run("PlaceholderNeverReturns", func(t *testing.T) {
		n := domain.NewNode(makeElement(t, "root", "Package"), 0)
		require.True(t, n.BeginExpand())
		n.Complete(nil)

		// Retried expansion must not revive the placeholder.
		assert.False(t, n.BeginExpand())
		n.AbortExpand()
		assert.Equal(t, domain.StateExpanded, n.State())
		assert.False(t, n.HasPlaceholder())
	})

	t.Run("AbortAllowsRetry", func(t *testing.T) {
		n := domain.NewNode(makeElement(t, "root", "Package"), 0)
		require.True(t, n.BeginExpand())
		n.AbortExpand()
		assert.Equal(t, domain.StateUnexpanded, n.State())
		assert.True(t, n.BeginExpand())
	})
}

func TestNode_Complete(t *testing.T) {
	t.Run("FailedChildrenOmittedInOrder", func(t *testing.T) {
		n := domain.NewNode(makeElement(t, "root", "Package"), 0)
		require.True(t, n.BeginExpand())

		n.Complete([]domain.ChildResult{
			{Ref: "c1", Element: makeElement(t, "c1", "PartDefinition")},
			{Ref: "c2", Err: errors.New("boom")},
			{Ref: "c3", Element: makeElement(t, "c3", "PartUsage")},
		})

		children := n.Children()
		require.Len(t, children, 2)
		assert.Equal(t, "c1", children[0].Element.ID)
		assert.Equal(t, "c3", children[1].Element.ID)
		assert.Equal(t, 1, children[0].Depth)

		failed := n.FailedResults()
		require.Len(t, failed, 1)
		assert.Equal(t, "c2", failed[0].Ref)
	})

	t.Run("FilteredDistinctFromFailed", func(t *testing.T) {
		n := domain.NewNode(makeElement(t, "root", "Package"), 0)
		require.True(t, n.BeginExpand())

		n.Complete([]domain.ChildResult{
			{Ref: "meta", Element: makeElement(t, "meta", "Membership"), Filtered: true},
		})

		assert.Empty(t, n.Children())
		assert.Empty(t, n.FailedResults())
		require.Len(t, n.Results(), 1)
		assert.True(t, n.Results()[0].Filtered)
	})
}

func TestNode_ConcurrentExpansion(t *testing.T) {
	// Two independent nodes expanded concurrently never observe a
	// partial or interleaved child list.
	parentA := domain.NewNode(makeElement(t, "a", "Package"), 0)
	parentB := domain.NewNode(makeElement(t, "b", "Package"), 0)

	resultsFor := func(prefix string, count int) []domain.ChildResult {
		results := make([]domain.ChildResult, count)
		for i := range results {
			id := prefix + string(rune('0'+i))
			results[i] = domain.ChildResult{Ref: id, Element: makeElement(t, id, "PartUsage")}
		}
		return results
	}

	var wg sync.WaitGroup
	for _, tc := range []struct {
		node   *domain.Node
		prefix string
	}{
		{parentA, "a"},
		{parentB, "b"},
	} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.True(t, tc.node.BeginExpand())
			tc.node.Complete(resultsFor(tc.prefix, 5))
		}()
	}
	wg.Wait()

	for _, tc := range []struct {
		node   *domain.Node
		prefix string
	}{
		{parentA, "a"},
		{parentB, "b"},
	} {
		children := tc.node.Children()
		require.Len(t, children, 5)
		for i, child := range children {
			assert.Equal(t, tc.prefix+string(rune('0'+i)), child.Element.ID)
		}
	}
}

func TestSession(t *testing.T) {
	assert.False(t, domain.Session{}.Valid())
	assert.False(t, domain.Session{ProjectID: "p"}.Valid())
	assert.True(t, domain.Session{ProjectID: "p", CommitID: "c"}.Valid())
}
