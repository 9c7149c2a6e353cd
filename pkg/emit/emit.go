// Package emit renders the three coupled textual artifacts for one annotated
// component: a JSX template, a SCSS style sheet, and a Storybook catalog
// entry. All three read the same immutable tree and the same asset map, so
// class names, prop names, and asset handles line up across outputs by
// construction.
package emit

import (
	"fmt"
	"strings"

	"github.com/Chickencurry27/storybook/pkg/assets"
	"github.com/Chickencurry27/storybook/pkg/graph"
)

// ArtifactSet is the full generated output for one component. The three
// artifacts are always produced together from the same annotated subtree;
// there is no partial regeneration.
type ArtifactSet struct {
	Template string // <Name>.jsx
	Style    string // <Name>.scss
	Catalog  string // <Name>.stories.jsx
}

// Generate renders all three artifacts for the component.
func Generate(comp *graph.Component, assetMap map[string]assets.Record) ArtifactSet {
	return ArtifactSet{
		Template: Template(comp, assetMap),
		Style:    Style(comp),
		Catalog:  Catalog(comp),
	}
}

// className returns the emitted CSS class for a node: the bare component name
// for the root, componentClass__elementClass for everything below it.
func className(comp *graph.Component, n *graph.Node) string {
	if n == comp.Root {
		return comp.Name
	}
	return comp.Name + "__" + n.ElementClass
}

// assetHandles assigns one JS import identifier per node with a resolved
// asset binary, keyed by node ID, in pre-order. Camel-casing element classes
// is not injective ("icon-1" and "icon1" both camel to "icon1"), so a
// per-component used-set appends numeric suffixes on collision, the same way
// element classes are scoped.
func assetHandles(comp *graph.Component, assetMap map[string]assets.Record) map[string]string {
	handles := make(map[string]string)
	used := make(map[string]bool)

	graph.Walk(comp.Root, func(n *graph.Node) {
		if n.Kind != graph.KindAsset {
			return
		}
		rec, ok := assetMap[n.ID]
		if !ok || rec.Filename == "" {
			return
		}

		base := camelCase(n.ElementClass)
		if base == "" || (base[0] >= '0' && base[0] <= '9') {
			base = "asset" + base
		}

		handle := base
		for i := 2; used[handle]; i++ {
			handle = fmt.Sprintf("%s%d", base, i)
		}
		used[handle] = true
		handles[n.ID] = handle
	})

	return handles
}

// camelCase joins kebab/snake fragments ("avatar-image" -> "avatarImage").
func camelCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}

	return b.String()
}

// jsString escapes a value for a single-quoted JS string literal.
func jsString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}
