package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/symex/internal/render"
)

func TestCompare(t *testing.T) {
	t.Run("AddedRemovedUnchanged", func(t *testing.T) {
		x := element(t, "x", "PartDefinition", "X")
		y := element(t, "y", "PartDefinition", "Y")
		z := element(t, "z", "PartDefinition", "Z")

		changes := render.Compare(elementMap(x, y), elementMap(y, z))

		require.Len(t, changes, 3)
		assert.Equal(t, render.Change{ID: "x", Kind: render.Removed, Before: x}, changes[0])
		assert.Equal(t, render.Unchanged, changes[1].Kind)
		assert.Equal(t, render.Change{ID: "z", Kind: render.Added, After: z}, changes[2])
	})

	t.Run("ModifiedOnValueChange", func(t *testing.T) {
		before, err := domain.ElementFromMap(map[string]any{"@id": "m", "@type": "PartDefinition", "declaredName": "Motor"})
		require.NoError(t, err)
		after, err := domain.ElementFromMap(map[string]any{"@id": "m", "@type": "PartDefinition", "declaredName": "Engine"})
		require.NoError(t, err)

		changes := render.Compare(elementMap(before), elementMap(after))
		require.Len(t, changes, 1)
		assert.Equal(t, render.Modified, changes[0].Kind)
	})

	t.Run("FieldOrderIsNotAChange", func(t *testing.T) {
		before, err := domain.ElementFromMap(map[string]any{"@id": "m", "@type": "PartDefinition", "declaredName": "Motor", "isAbstract": false})
		require.NoError(t, err)
		after, err := domain.ElementFromMap(map[string]any{"isAbstract": false, "declaredName": "Motor", "@type": "PartDefinition", "@id": "m"})
		require.NoError(t, err)

		changes := render.Compare(elementMap(before), elementMap(after))
		require.Len(t, changes, 1)
		assert.Equal(t, render.Unchanged, changes[0].Kind)
	})
}

func TestDiffRenderer_Render(t *testing.T) {
	x := element(t, "x", "PartDefinition", "X")
	y := element(t, "y", "PartDefinition", "Y")
	z := element(t, "z", "PartDefinition", "Z")
	changes := render.Compare(elementMap(x, y), elementMap(y, z))

	t.Run("Summary", func(t *testing.T) {
		out, err := render.NewDiffRenderer(false).Render(changes)
		require.NoError(t, err)
		assert.Contains(t, out, "added 1, removed 1, modified 0, unchanged 1")
		assert.Contains(t, out, "+ z (Z)")
		assert.Contains(t, out, "- x (X)")
		assert.NotContains(t, out, "y (")
	})

	t.Run("UnifiedDetail", func(t *testing.T) {
		before, err := domain.ElementFromMap(map[string]any{"@id": "m", "@type": "PartDefinition", "declaredName": "Motor"})
		require.NoError(t, err)
		after, err := domain.ElementFromMap(map[string]any{"@id": "m", "@type": "PartDefinition", "declaredName": "Engine"})
		require.NoError(t, err)

		out, err := render.NewDiffRenderer(true).Render(render.Compare(elementMap(before), elementMap(after)))
		require.NoError(t, err)
		assert.Contains(t, out, "~ m (Engine)")
		assert.Contains(t, out, "--- a/m")
		assert.Contains(t, out, "+++ b/m")
		assert.Contains(t, out, `-  "declaredName": "Motor"`)
		assert.Contains(t, out, `+  "declaredName": "Engine"`)
	})
}
