// Package expander implements lazy materialization of the element tree.
package expander

import (
	"context"

	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelism bounds the child-fetch worker pool when the
// configuration does not say otherwise.
const DefaultParallelism = 8

// Expander resolves the child references of elements through the cache,
// fanning uncached fetches out over a bounded worker pool. A node with
// K uncached children costs roughly K/parallelism round trips instead
// of K sequential ones.
type Expander struct {
	cache       ports.ElementCache
	logger      ports.Logger
	parallelism int
}

// New creates an Expander over the given session cache.
func New(cache ports.ElementCache, log ports.Logger, parallelism int) *Expander {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	return &Expander{
		cache:       cache,
		logger:      log,
		parallelism: parallelism,
	}
}

// Expand resolves the element's child references and classifies every
// slot. Result order follows the original reference order. A child that
// fails to fetch is reported as Failed and logged, never fatal; a child
// outside the displayable allow-list is Filtered but stays cached.
func (e *Expander) Expand(ctx context.Context, el domain.Element) []domain.ChildResult {
	refs := el.ChildRefs()
	if len(refs) == 0 {
		return nil
	}

	results := make([]domain.ChildResult, len(refs))

	// Child failures must not cancel sibling fetches, so every worker
	// reports into its own slot and the group never sees an error.
	var g errgroup.Group
	g.SetLimit(e.parallelism)
	for i, ref := range refs {
		g.Go(func() error {
			results[i] = e.resolve(ctx, ref)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// ExpandNode drives the node state machine: it transitions the node to
// Expanding, resolves its children, and atomically replaces the
// placeholder. A node that is already expanding or expanded is left
// alone and its existing results are returned.
func (e *Expander) ExpandNode(ctx context.Context, n *domain.Node) ([]domain.ChildResult, error) {
	if !n.BeginExpand() {
		return n.Results(), nil
	}

	if err := ctx.Err(); err != nil {
		n.AbortExpand()
		return nil, err
	}

	results := e.Expand(ctx, n.Element)
	n.Complete(results)
	return results, nil
}

func (e *Expander) resolve(ctx context.Context, ref string) domain.ChildResult {
	el, err := e.cache.GetOrFetch(ctx, ref)
	if err != nil {
		e.logger.Warn("child fetch failed", "id", ref, "error", err)
		return domain.ChildResult{Ref: ref, Err: err}
	}
	if !domain.Displayable(el.Type) {
		return domain.ChildResult{Ref: ref, Element: el, Filtered: true}
	}
	return domain.ChildResult{Ref: ref, Element: el}
}
