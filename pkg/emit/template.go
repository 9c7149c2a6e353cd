package emit

import (
	"fmt"
	"strings"

	"github.com/Chickencurry27/storybook/pkg/assets"
	"github.com/Chickencurry27/storybook/pkg/graph"
)

// Template renders the JSX component template. Text nodes become placeholders
// bound to their positional prop, nodes with a resolved asset filename become
// image references bound to an import handle, containers wrap their children,
// and shapes without an asset become empty styled placeholders.
func Template(comp *graph.Component, assetMap map[string]assets.Record) string {
	var sb strings.Builder

	sb.WriteString("import React from 'react';\n")
	sb.WriteString(fmt.Sprintf("import './%s.scss';\n", comp.Name))

	handles := assetHandles(comp, assetMap)
	imports := assetImports(comp, assetMap, handles)
	if len(imports) > 0 {
		sb.WriteString("\n")
		for _, imp := range imports {
			sb.WriteString(imp)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("const %s = (%s) => (\n", comp.Name, propSignature(comp)))
	renderNode(&sb, comp, comp.Root, handles, 1)
	sb.WriteString(");\n")
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("export default %s;\n", comp.Name))

	return sb.String()
}

// propSignature builds the destructured props: one text prop per text node
// with its design default, plus the className passthrough.
func propSignature(comp *graph.Component) string {
	var parts []string
	for _, p := range comp.TextProps {
		parts = append(parts, fmt.Sprintf("%s = %s", p.Name, jsString(p.Default)))
	}
	parts = append(parts, "className = ''")
	return "{ " + strings.Join(parts, ", ") + " }"
}

// assetImports returns one import line per node with a resolved asset
// filename, in pre-order so output is deterministic.
func assetImports(comp *graph.Component, assetMap map[string]assets.Record, handles map[string]string) []string {
	var imports []string
	graph.Walk(comp.Root, func(n *graph.Node) {
		handle, ok := handles[n.ID]
		if !ok {
			return
		}
		imports = append(imports, fmt.Sprintf("import %s from '../../assets/%s';\n",
			handle, assetMap[n.ID].Filename))
	})
	return imports
}

// classAttr renders the className attribute for a node. The root element
// additionally carries the caller-supplied class.
func classAttr(comp *graph.Component, n *graph.Node) string {
	if n == comp.Root {
		return fmt.Sprintf("className={`%s ${className}`.trim()}", comp.Name)
	}
	return fmt.Sprintf("className=%q", className(comp, n))
}

func renderNode(sb *strings.Builder, comp *graph.Component, n *graph.Node, handles map[string]string, depth int) {
	indent := strings.Repeat("  ", depth)
	attr := classAttr(comp, n)

	switch n.Kind {
	case graph.KindDecoration:
		return

	case graph.KindText:
		sb.WriteString(fmt.Sprintf("%s<span %s>{%s}</span>\n", indent, attr, n.TextProp))

	case graph.KindAsset:
		if handle, ok := handles[n.ID]; ok {
			sb.WriteString(fmt.Sprintf("%s<img %s src={%s} alt=%q />\n",
				indent, attr, handle, n.Name))
		} else {
			// Export failed or was skipped: degrade to a plain placeholder box.
			sb.WriteString(fmt.Sprintf("%s<div %s />\n", indent, attr))
		}

	case graph.KindShape:
		sb.WriteString(fmt.Sprintf("%s<div %s />\n", indent, attr))

	case graph.KindContainer:
		sb.WriteString(fmt.Sprintf("%s<div %s>\n", indent, attr))
		for _, child := range n.Children {
			renderNode(sb, comp, child, handles, depth+1)
		}
		sb.WriteString(indent + "</div>\n")
	}
}
