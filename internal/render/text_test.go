package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/render"
)

func element(t *testing.T, id, typ, name string, childRefs ...string) domain.Element {
	t.Helper()
	data := map[string]any{"@id": id, "@type": typ}
	if name != "" {
		data["declaredName"] = name
	}
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

func elementMap(els ...domain.Element) map[string]domain.Element {
	m := make(map[string]domain.Element, len(els))
	for _, el := range els {
		m[el.ID] = el
	}
	return m
}

func TestTextRenderer_Render(t *testing.T) {
	r := render.NewTextRenderer()

	t.Run("LeafEndsWithSemicolon", func(t *testing.T) {
		motor := element(t, "m", "PartDefinition", "Motor")
		out := r.Render(elementMap(motor), []domain.Element{motor})
		assert.Equal(t, "part def Motor;\n", out)
	})

	t.Run("ChildrenNestInBraces", func(t *testing.T) {
		motor := element(t, "m", "PartDefinition", "Motor", "r")
		rotor := element(t, "r", "PartUsage", "rotor")
		out := r.Render(elementMap(motor, rotor), []domain.Element{motor})
		assert.Equal(t, "part def Motor {\n    part rotor;\n}\n", out)
	})

	t.Run("UncachedChildRendersAsLeaf", func(t *testing.T) {
		motor := element(t, "m", "PartDefinition", "Motor", "missing")
		out := r.Render(elementMap(motor), []domain.Element{motor})
		assert.Equal(t, "part def Motor;\n", out)
	})

	t.Run("UnknownTypeCommentPlaceholder", func(t *testing.T) {
		odd := element(t, "o", "Membership", "link")
		out := r.Render(elementMap(odd), []domain.Element{odd})
		assert.Equal(t, "// unsupported Membership link\n", out)
	})

	t.Run("UnknownTypeNotNested", func(t *testing.T) {
		pkg := element(t, "p", "Package", "Vehicle", "m", "x")
		member := element(t, "m", "Membership", "", "hidden")
		motor := element(t, "x", "PartDefinition", "Motor")
		out := r.Render(elementMap(pkg, member, motor), []domain.Element{pkg})
		assert.Equal(t, "package Vehicle {\n    part def Motor;\n}\n", out)
	})

	t.Run("CycleRendersOnce", func(t *testing.T) {
		a := element(t, "a", "Package", "A", "b")
		b := element(t, "b", "Package", "B", "a")
		out := r.Render(elementMap(a, b), []domain.Element{a})
		assert.Equal(t, "package A {\n    package B;\n}\n", out)
	})
}
