package expander

import (
	"context"
	"fmt"

	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/core/ports"
)

// Walker loads a commit's full displayable subtree into the cache,
// level by level. Cancellation is cooperative and coarse: the context
// is checked between levels, so fetches already issued complete but no
// further ones start.
type Walker struct {
	expander *Expander
	maxDepth int
}

// NewWalker creates a Walker over the given expander.
func NewWalker(e *Expander, maxDepth int) *Walker {
	return &Walker{expander: e, maxDepth: maxDepth}
}

// Load expands the subtree under roots and returns the number of
// displayable elements visited, roots included. Progress is written to
// the vertex attached to the context, if any.
func (w *Walker) Load(ctx context.Context, roots []domain.Element) (int, error) {
	vertex, hasVertex := ports.VertexFromContext(ctx)

	visited := make(map[string]struct{}, len(roots))
	frontier := make([]domain.Element, 0, len(roots))
	for _, root := range roots {
		visited[root.ID] = struct{}{}
		frontier = append(frontier, root)
	}
	count := len(frontier)

	for depth := 0; depth < w.maxDepth && len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		var next []domain.Element
		for _, el := range frontier {
			for _, res := range w.expander.Expand(ctx, el) {
				if !res.Loaded() {
					continue
				}
				if _, seen := visited[res.Element.ID]; seen {
					continue
				}
				visited[res.Element.ID] = struct{}{}
				next = append(next, res.Element)
			}
		}

		count += len(next)
		if hasVertex && len(next) > 0 {
			_, _ = fmt.Fprintf(vertex.Stdout(), "depth %d: %d elements\n", depth+1, len(next))
		}
		frontier = next
	}

	return count, nil
}
