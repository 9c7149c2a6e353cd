package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chickencurry27/storybook/pkg/figma"
)

func TestComponentsDiscovery(t *testing.T) {
	doc := figma.Node{
		ID:   "0:0",
		Type: "DOCUMENT",
		Children: []figma.Node{
			{
				ID:   "0:1",
				Type: "CANVAS",
				Name: "Page 1",
				Children: []figma.Node{
					{ID: "1:1", Type: "COMPONENT", Name: "User Card"},
					{
						ID: "1:2", Type: "COMPONENT_SET", Name: "Button",
						Children: []figma.Node{
							{ID: "1:3", Type: "COMPONENT", Name: "Button/Primary"},
							{ID: "1:4", Type: "COMPONENT", Name: "Button/Secondary"},
						},
					},
					{ID: "1:5", Type: "FRAME", Name: "Scratch"},
				},
			},
		},
	}

	comps := Components(&doc)

	// One artifact set per discovered root: the set counts once, its nested
	// variants are part of the set and never emitted separately.
	require.Len(t, comps, 2)
	assert.Equal(t, "UserCard", comps[0].Name)
	assert.Equal(t, "Button", comps[1].Name)
}

func TestComponentNameUniqueAcrossDocument(t *testing.T) {
	doc := figma.Node{
		Type: "DOCUMENT",
		Children: []figma.Node{
			{ID: "1:1", Type: "COMPONENT", Name: "Card"},
			{ID: "1:2", Type: "COMPONENT", Name: "Card!!"},
			{ID: "1:3", Type: "COMPONENT", Name: "card"},
		},
	}

	comps := Components(&doc)
	require.Len(t, comps, 3)
	assert.Equal(t, "Card", comps[0].Name)
	assert.Equal(t, "Card2", comps[1].Name)
	assert.Equal(t, "Card3", comps[2].Name)
}

func TestAnnotateElementClassesUnique(t *testing.T) {
	root := figma.Node{
		ID: "1:1", Type: "COMPONENT", Name: "Row",
		Children: []figma.Node{
			{ID: "2:1", Type: "VECTOR", Name: "Icon"},
			{ID: "2:2", Type: "VECTOR", Name: "Icon"},
			{
				ID: "2:3", Type: "FRAME", Name: "Icon",
				Children: []figma.Node{
					{ID: "3:1", Type: "TEXT", Name: "Icon", Characters: "x"},
				},
			},
		},
	}

	comp := Annotate(&root)

	seen := map[string]string{}
	Walk(comp.Root, func(n *Node) {
		if prev, dup := seen[n.ElementClass]; dup {
			t.Errorf("element class %q used by both %q and %q", n.ElementClass, prev, n.ID)
		}
		seen[n.ElementClass] = n.ID
	})

	// Sibling order determines which node keeps the bare slug.
	assert.Equal(t, "icon", comp.Root.Children[0].ElementClass)
	assert.Equal(t, "icon-1", comp.Root.Children[1].ElementClass)
	assert.Equal(t, "icon-2", comp.Root.Children[2].ElementClass)
}

func TestAnnotateTextPropsPreOrder(t *testing.T) {
	root := figma.Node{
		ID: "1:1", Type: "COMPONENT", Name: "Card",
		Children: []figma.Node{
			{
				ID: "2:1", Type: "FRAME", Name: "Header",
				Children: []figma.Node{
					{ID: "3:1", Type: "TEXT", Name: "Title", Characters: "Hello"},
				},
			},
			{ID: "2:2", Type: "TEXT", Name: "Body", Characters: "World"},
		},
	}

	comp := Annotate(&root)

	require.Len(t, comp.TextProps, 2)
	assert.Equal(t, TextProp{Name: "text1", Default: "Hello"}, comp.TextProps[0])
	assert.Equal(t, TextProp{Name: "text2", Default: "World"}, comp.TextProps[1])

	assert.Equal(t, "text1", comp.Root.Children[0].Children[0].TextProp)
	assert.Equal(t, "text2", comp.Root.Children[1].TextProp)
}

func TestAnnotateAssetSubtreeIsOpaque(t *testing.T) {
	root := figma.Node{
		ID: "1:1", Type: "COMPONENT", Name: "Badge",
		Children: []figma.Node{
			{
				ID: "2:1", Type: "BOOLEAN_OPERATION", Name: "Mark",
				Children: []figma.Node{
					{ID: "3:1", Type: "VECTOR", Name: "Part"},
				},
			},
		},
	}

	comp := Annotate(&root)

	require.Len(t, comp.Root.Children, 1)
	mark := comp.Root.Children[0]
	assert.Equal(t, KindAsset, mark.Kind)
	assert.Equal(t, "svg", mark.ExportFormat)
	// The exported binary covers the whole subtree; no markup below it.
	assert.Empty(t, mark.Children)
	assert.True(t, comp.HasAssets)
}

func TestAnnotateNoTextLayersSynthesizesDisplayProp(t *testing.T) {
	root := figma.Node{
		ID: "1:1", Type: "COMPONENT", Name: "Empty Card",
		Children: []figma.Node{
			{ID: "2:1", Type: "TEXT", Name: "Ghost"},
			{ID: "2:2", Type: "RECTANGLE", Name: "Box"},
		},
	}

	comp := Annotate(&root)

	// Empty TEXT layers are decoration; the component still exposes one
	// display prop defaulting to its own name.
	require.Len(t, comp.TextProps, 1)
	assert.Equal(t, TextProp{Name: "text1", Default: "EmptyCard"}, comp.TextProps[0])
	assert.Empty(t, comp.Root.Children[0].TextProp)
}

func TestAnnotateNoAssets(t *testing.T) {
	root := figma.Node{
		ID: "1:1", Type: "COMPONENT", Name: "Plain",
		Children: []figma.Node{
			{ID: "2:1", Type: "TEXT", Name: "Label", Characters: "hi"},
		},
	}

	comp := Annotate(&root)
	assert.False(t, comp.HasAssets)
	assert.Empty(t, comp.Root.Children[0].ExportFormat)
}
