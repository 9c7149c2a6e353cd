// Package graph normalizes a fetched Figma document into an annotated,
// traversal-ready tree. Each component subtree is walked exactly once:
// classification, style extraction, and identifier assignment all happen
// here, so the three emitters read one immutable structure and can never
// drift apart on class names or prop names.
package graph

import (
	"fmt"

	"github.com/Chickencurry27/storybook/pkg/figma"
	"github.com/Chickencurry27/storybook/pkg/naming"
	"github.com/Chickencurry27/storybook/pkg/style"
)

// Node is one annotated node of a component subtree. The tree is immutable
// after Annotate returns; emitters read it concurrently without locking.
type Node struct {
	ID   string
	Name string
	Type string
	Kind Kind

	// ElementClass is the per-component unique slug for this node.
	ElementClass string

	// Characters and TextProp are set for text nodes only. TextProp is the
	// positional prop name ("text1", "text2", ...) in pre-order.
	Characters string
	TextProp   string

	// ExportFormat ("svg"/"png") and HasImageFill are set for asset nodes.
	ExportFormat string
	ImageFill    bool

	Style *style.Record
	Text  *style.TextStyle

	Children []*Node
}

// TextProp pairs a positional prop name with the literal characters found in
// the design, used as the prop's default value.
type TextProp struct {
	Name    string
	Default string
}

// Component is one annotated component subtree plus the document-level
// metadata the emitters need.
type Component struct {
	// Name is the PascalCase component name, unique across the document.
	Name string

	Root *Node

	// TextProps lists the text props in pre-order; their order matches the
	// TextProp fields on the tree's text nodes. A component without text
	// layers carries one synthesized prop defaulting to the component name.
	TextProps []TextProp

	// HasAssets is true when any node in the subtree is an asset candidate.
	HasAssets bool
}

// Components discovers every COMPONENT and COMPONENT_SET node in the document
// and annotates each into a Component. Discovery stops descending once a
// component root is found, so nested definitions inside a COMPONENT_SET are
// emitted once as part of the set, never twice.
func Components(doc *figma.Node) []*Component {
	usedNames := make(map[string]bool)
	var comps []*Component

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if n.Type == "COMPONENT" || n.Type == "COMPONENT_SET" {
			comps = append(comps, annotateComponent(n, usedNames))
			return
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(doc)

	return comps
}

// Annotate builds the annotated tree for a single component root. Exposed for
// callers that already hold the root node; Components is the usual entry.
func Annotate(root *figma.Node) *Component {
	return annotateComponent(root, make(map[string]bool))
}

func annotateComponent(root *figma.Node, usedNames map[string]bool) *Component {
	name := naming.ToComponentName(root.Name)
	if name == "" {
		name = "Component"
	}
	// Component names must be unique across the whole document; a numeric
	// suffix keeps PascalCase intact (UserCard, UserCard2, ...).
	unique := name
	for i := 2; usedNames[unique]; i++ {
		unique = fmt.Sprintf("%s%d", name, i)
	}
	usedNames[unique] = true

	comp := &Component{Name: unique}
	scope := naming.NewScope()
	comp.Root = comp.annotate(root, "", scope)

	// A component with no text layers still exposes one display prop,
	// defaulting to the component name, so downstream previews are never
	// rendered without text.
	if len(comp.TextProps) == 0 {
		comp.TextProps = append(comp.TextProps, TextProp{Name: "text1", Default: unique})
	}

	return comp
}

// annotate walks the subtree pre-order. The element class is resolved before
// the children are visited, so sibling order decides which sibling keeps the
// unsuffixed slug.
func (c *Component) annotate(n *figma.Node, parentLayoutMode string, scope *naming.Scope) *Node {
	node := &Node{
		ID:           n.ID,
		Name:         n.Name,
		Type:         n.Type,
		Kind:         Classify(n),
		ElementClass: scope.Resolve(n.Name),
		Style:        style.Extract(n, parentLayoutMode),
	}

	switch node.Kind {
	case KindText:
		node.Characters = n.Characters
		node.Text = style.ExtractText(n)
		node.TextProp = fmt.Sprintf("text%d", len(c.TextProps)+1)
		c.TextProps = append(c.TextProps, TextProp{Name: node.TextProp, Default: n.Characters})
	case KindAsset:
		node.ExportFormat = ExportFormat(n)
		node.ImageFill = HasImageFill(n)
		c.HasAssets = true
		// Asset subtrees are baked into the exported image; their children
		// produce no markup of their own.
		return node
	}

	for i := range n.Children {
		node.Children = append(node.Children, c.annotate(&n.Children[i], n.LayoutMode, scope))
	}

	return node
}

// Walk visits the annotated tree pre-order.
func Walk(root *Node, fn func(*Node)) {
	fn(root)
	for _, child := range root.Children {
		Walk(child, fn)
	}
}
