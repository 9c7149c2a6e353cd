package emit

import (
	"fmt"
	"strings"

	"github.com/Chickencurry27/storybook/pkg/graph"
	"github.com/Chickencurry27/storybook/pkg/style"
)

// Style renders the SCSS sheet: one rule per node under the
// componentClass__elementClass naming scheme. Asset nodes keep their box
// rules but get no background-color or border-radius; they render as images,
// not colored boxes. Properties the extractor left unset are omitted, never
// emitted as zero values.
func Style(comp *graph.Component) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// Generated styles for %s. Do not edit by hand.\n", comp.Name))

	graph.Walk(comp.Root, func(n *graph.Node) {
		if n.Kind == graph.KindDecoration {
			return
		}
		sb.WriteString("\n")
		sb.WriteString("." + className(comp, n) + " {\n")
		writeRule(&sb, n)
		sb.WriteString("}\n")
	})

	return sb.String()
}

func writeRule(sb *strings.Builder, n *graph.Node) {
	rec := n.Style

	if rec.Display != "" {
		prop(sb, "display", rec.Display)
		prop(sb, "flex-direction", rec.FlexDirection)
		prop(sb, "justify-content", rec.JustifyContent)
		prop(sb, "align-items", rec.AlignItems)
		if rec.Gap > 0 {
			prop(sb, "gap", px(rec.Gap))
		}
	}

	if rec.FlexGrow > 0 {
		prop(sb, "flex-grow", fmt.Sprintf("%g", rec.FlexGrow))
	}
	prop(sb, "width", rec.Width)
	prop(sb, "height", rec.Height)

	if rec.HasPadding() {
		prop(sb, "padding", fmt.Sprintf("%s %s %s %s",
			px(rec.PaddingTop), px(rec.PaddingRight), px(rec.PaddingBottom), px(rec.PaddingLeft)))
	}

	// Asset nodes are rendered as images; color and radius come from the
	// exported binary, not from CSS.
	if n.Kind != graph.KindAsset {
		prop(sb, "background-color", rec.Background)
		if rec.BorderRadius > 0 {
			prop(sb, "border-radius", px(rec.BorderRadius))
		}
	}

	if n.Kind == graph.KindText && n.Text != nil {
		writeTypography(sb, n.Text)
	}
}

// writeTypography emits only the typography fields present on the node's
// style block; an absent field produces no property at all.
func writeTypography(sb *strings.Builder, ts *style.TextStyle) {
	if ts.FontFamily != "" {
		prop(sb, "font-family", fmt.Sprintf("'%s', sans-serif", ts.FontFamily))
	}
	if ts.FontSize > 0 {
		prop(sb, "font-size", px(ts.FontSize))
	}
	if ts.FontWeight > 0 {
		prop(sb, "font-weight", fmt.Sprintf("%g", ts.FontWeight))
	}
	if ts.LineHeight > 0 {
		prop(sb, "line-height", px(ts.LineHeight))
	}
	if ts.LetterSpacing != 0 {
		prop(sb, "letter-spacing", px(ts.LetterSpacing))
	}
	prop(sb, "text-align", ts.TextAlign)
	prop(sb, "color", ts.Color)
}

func prop(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("  %s: %s;\n", name, value))
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
