package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/zerr"
)

type ChangeKind string

const (
	Added     ChangeKind = "added"
	Removed   ChangeKind = "removed"
	Modified  ChangeKind = "modified"
	Unchanged ChangeKind = "unchanged"
)

// Change records the fate of a single element id between two commits.
// Before is zero for Added, After is zero for Removed.
type Change struct {
	ID     string
	Kind   ChangeKind
	Before domain.Element
	After  domain.Element
}

// Name prefers the after-side element, falling back to the before side
// for removed ids.
func (c Change) Name() string {
	if c.Kind == Removed {
		return c.Before.Name()
	}
	return c.After.Name()
}

// Compare classifies every id in the union of the two element maps.
// An id present on both sides counts as modified when the canonical
// JSON digests differ, so map field order never registers as a change.
// Results are sorted by id.
func Compare(before, after map[string]domain.Element) []Change {
	ids := make(map[string]struct{}, len(before)+len(after))
	for id := range before {
		ids[id] = struct{}{}
	}
	for id := range after {
		ids[id] = struct{}{}
	}

	changes := make([]Change, 0, len(ids))
	for id := range ids {
		b, inBefore := before[id]
		a, inAfter := after[id]
		switch {
		case !inBefore:
			changes = append(changes, Change{ID: id, Kind: Added, After: a})
		case !inAfter:
			changes = append(changes, Change{ID: id, Kind: Removed, Before: b})
		case b.Digest() != a.Digest():
			changes = append(changes, Change{ID: id, Kind: Modified, Before: b, After: a})
		default:
			changes = append(changes, Change{ID: id, Kind: Unchanged, Before: b, After: a})
		}
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].ID < changes[j].ID })
	return changes
}

// DiffRenderer formats a change set as a textual report.
type DiffRenderer struct {
	unified bool
}

// NewDiffRenderer builds a renderer. With unified set, every modified
// element additionally gets a unified diff of its pretty-printed JSON.
func NewDiffRenderer(unified bool) *DiffRenderer {
	return &DiffRenderer{unified: unified}
}

func (r *DiffRenderer) Render(changes []Change) (string, error) {
	var counts = map[ChangeKind]int{}
	for _, c := range changes {
		counts[c.Kind]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "added %d, removed %d, modified %d, unchanged %d\n",
		counts[Added], counts[Removed], counts[Modified], counts[Unchanged])

	for _, c := range changes {
		switch c.Kind {
		case Added:
			fmt.Fprintf(&b, "+ %s (%s)\n", c.ID, c.Name())
		case Removed:
			fmt.Fprintf(&b, "- %s (%s)\n", c.ID, c.Name())
		case Modified:
			fmt.Fprintf(&b, "~ %s (%s)\n", c.ID, c.Name())
			if r.unified {
				detail, err := unifiedDetail(c)
				if err != nil {
					return "", err
				}
				b.WriteString(detail)
			}
		}
	}
	return b.String(), nil
}

func unifiedDetail(c Change) (string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(c.Before.PrettyJSON()),
		B:        difflib.SplitLines(c.After.PrettyJSON()),
		FromFile: "a/" + c.ID,
		ToFile:   "b/" + c.ID,
		Context:  3,
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "render unified diff"), "id", c.ID)
	}
	return text, nil
}
