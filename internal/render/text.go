package render

import (
	"fmt"
	"strings"

	"go.trai.ch/symex/internal/core/domain"
)

const indentStep = "    "

// TextRenderer produces the textual SysML notation for cached element
// subtrees. It reads only from the supplied element map and never
// triggers fetches.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render writes the notation for every root in order. Elements whose
// children are not present in the map render as if they were leaves.
func (r *TextRenderer) Render(elements map[string]domain.Element, roots []domain.Element) string {
	var b strings.Builder
	visited := make(map[string]struct{})
	for _, root := range roots {
		r.renderElement(&b, elements, root, 0, visited)
	}
	return b.String()
}

func (r *TextRenderer) renderElement(b *strings.Builder, elements map[string]domain.Element, el domain.Element, depth int, visited map[string]struct{}) {
	if _, seen := visited[el.ID]; seen {
		return
	}
	visited[el.ID] = struct{}{}

	indent := strings.Repeat(indentStep, depth)

	keyword, known := domain.Keyword(el.Type)
	if !known {
		// Unknown types keep their place in the document but are
		// never descended into.
		fmt.Fprintf(b, "%s// unsupported %s %s\n", indent, el.Type, el.Name())
		return
	}

	children := r.displayableChildren(elements, el, visited)
	if len(children) == 0 {
		fmt.Fprintf(b, "%s%s %s;\n", indent, keyword, el.Name())
		return
	}

	fmt.Fprintf(b, "%s%s %s {\n", indent, keyword, el.Name())
	for _, child := range children {
		r.renderElement(b, elements, child, depth+1, visited)
	}
	fmt.Fprintf(b, "%s}\n", indent)
}

func (r *TextRenderer) displayableChildren(elements map[string]domain.Element, el domain.Element, visited map[string]struct{}) []domain.Element {
	var children []domain.Element
	for _, ref := range el.ChildRefs() {
		child, ok := elements[ref]
		if !ok {
			continue
		}
		if !domain.Displayable(child.Type) {
			continue
		}
		if _, seen := visited[ref]; seen {
			continue
		}
		children = append(children, child)
	}
	return children
}
