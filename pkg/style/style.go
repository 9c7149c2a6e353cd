// Package style converts a Figma node's geometric, paint, and typography
// attributes into semantic style records consumed by the emitters.
package style

import (
	"fmt"
	"math"

	"github.com/Chickencurry27/storybook/pkg/figma"
)

// Record is the resolved box model and flex layout for one node.
// Empty string and zero fields mean "do not emit this property".
type Record struct {
	// Box model. Width/Height are CSS values ("120px", "100%") or empty when
	// the dimension is content-driven (HUG sizing).
	Width  string
	Height string

	// FlexGrow > 0 means the node fills its parent's primary axis.
	FlexGrow float64

	// Flex container parameters, set only for auto-layout nodes.
	Display        string // "flex" when the node has a layout mode
	FlexDirection  string // "row" or "column"
	JustifyContent string
	AlignItems     string
	Gap            float64

	// Padding edges in px: top, right, bottom, left. Missing edges are 0.
	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64
	PaddingLeft   float64

	// Background is the hex color of the first visible SOLID fill, empty when
	// the node has none.
	Background string

	// BorderRadius in px; 0 means no rule.
	BorderRadius float64
}

// HasPadding reports whether any padding edge is non-zero.
func (r *Record) HasPadding() bool {
	return r.PaddingTop > 0 || r.PaddingRight > 0 || r.PaddingBottom > 0 || r.PaddingLeft > 0
}

// TextStyle is the resolved typography for a TEXT node. Zero values mean the
// field was absent on the node's style block and must be omitted from output,
// not emitted as zero.
type TextStyle struct {
	FontFamily    string
	FontSize      float64
	FontWeight    float64
	LineHeight    float64
	LetterSpacing float64
	TextAlign     string // "left", "center", "right", "justified" lowered from Figma
	Color         string // hex from the first visible SOLID fill
}

// Sizing modes reported per axis by the Figma auto-layout model.
const (
	SizingFixed = "FIXED"
	SizingHug   = "HUG"
	SizingFill  = "FILL"
)

// Extract resolves a node's box model, color, and flex parameters into a
// Record. parentLayoutMode is the auto-layout axis of the node's parent
// ("HORIZONTAL", "VERTICAL", or empty) and decides how FILL sizing maps onto
// flex-grow versus a 100% dimension.
func Extract(node *figma.Node, parentLayoutMode string) *Record {
	rec := &Record{}

	resolveBox(node, parentLayoutMode, rec)
	resolveLayout(node, rec)

	rec.PaddingTop = node.PaddingTop
	rec.PaddingRight = node.PaddingRight
	rec.PaddingBottom = node.PaddingBottom
	rec.PaddingLeft = node.PaddingLeft

	rec.Background = FirstSolidFill(node.Fills)
	rec.BorderRadius = cornerRadius(node)

	return rec
}

// resolveBox applies the per-axis sizing policy:
// FILL on the parent's primary axis becomes flex-grow, FILL on the counter
// axis becomes a 100% dimension, HUG omits the dimension entirely, and FIXED
// (or no layout information) emits the literal bounding-box pixels.
func resolveBox(node *figma.Node, parentLayoutMode string, rec *Record) {
	var w, h float64
	if node.AbsoluteBoundingBox != nil {
		w = node.AbsoluteBoundingBox.Width
		h = node.AbsoluteBoundingBox.Height
	}

	switch node.LayoutSizingHorizontal {
	case SizingFill:
		if parentLayoutMode == "HORIZONTAL" {
			rec.FlexGrow = growFactor(node)
		} else {
			rec.Width = "100%"
		}
	case SizingHug:
		// content-sized, omit
	default: // FIXED or absent
		if w > 0 {
			rec.Width = pxValue(w)
		}
	}

	switch node.LayoutSizingVertical {
	case SizingFill:
		if parentLayoutMode == "VERTICAL" {
			rec.FlexGrow = growFactor(node)
		} else {
			rec.Height = "100%"
		}
	case SizingHug:
		// content-sized, omit
	default:
		if h > 0 {
			rec.Height = pxValue(h)
		}
	}
}

func growFactor(node *figma.Node) float64 {
	if node.LayoutGrow > 0 {
		return node.LayoutGrow
	}
	return 1
}

// resolveLayout maps Figma auto-layout settings onto flex container rules.
func resolveLayout(node *figma.Node, rec *Record) {
	if node.LayoutMode == "" || node.LayoutMode == "NONE" {
		return
	}

	rec.Display = "flex"
	if node.LayoutMode == "HORIZONTAL" {
		rec.FlexDirection = "row"
	} else {
		rec.FlexDirection = "column"
	}

	rec.JustifyContent = primaryAlign(node.PrimaryAxisAlignItems)
	rec.AlignItems = counterAlign(node.CounterAxisAlignItems)
	rec.Gap = node.ItemSpacing
}

func primaryAlign(v string) string {
	switch v {
	case "CENTER":
		return "center"
	case "MAX":
		return "flex-end"
	case "SPACE_BETWEEN":
		return "space-between"
	default: // MIN or absent
		return "flex-start"
	}
}

func counterAlign(v string) string {
	switch v {
	case "CENTER":
		return "center"
	case "MAX":
		return "flex-end"
	default: // MIN or absent
		return "flex-start"
	}
}

// cornerRadius prefers the scalar cornerRadius and falls back to the first
// entry of the per-corner radius array.
func cornerRadius(node *figma.Node) float64 {
	if node.CornerRadius > 0 {
		return node.CornerRadius
	}
	if len(node.RectangleCornerRadii) > 0 {
		return node.RectangleCornerRadii[0]
	}
	return 0
}

// ExtractText resolves the typography of a TEXT node. Fields absent on the
// node's style block stay zero so the emitter can skip them.
func ExtractText(node *figma.Node) *TextStyle {
	ts := &TextStyle{
		Color: FirstSolidFill(node.Fills),
	}

	if node.Style == nil {
		return ts
	}

	ts.FontFamily = node.Style.FontFamily
	ts.FontSize = node.Style.FontSize
	ts.FontWeight = node.Style.FontWeight
	ts.LineHeight = node.Style.LineHeightPx
	ts.LetterSpacing = node.Style.LetterSpacing

	switch node.Style.TextAlignHorizontal {
	case "LEFT":
		ts.TextAlign = "left"
	case "CENTER":
		ts.TextAlign = "center"
	case "RIGHT":
		ts.TextAlign = "right"
	case "JUSTIFIED":
		ts.TextAlign = "justify"
	}

	return ts
}

// FirstSolidFill returns the hex color of the first visible SOLID paint in the
// list, or empty when there is none. Gradients and secondary fills are
// deliberately ignored: downstream output assumes single-color nodes.
func FirstSolidFill(fills []figma.Paint) string {
	for _, fill := range fills {
		if fill.Type == "SOLID" && fill.Color != nil && fill.IsVisible() {
			return ColorToHex(fill.Color)
		}
	}
	return ""
}

// ColorToHex converts a Figma RGBA color (0-1 floats) to #RRGGBB format.
// Returns "#000000" if the color is nil.
func ColorToHex(color *figma.Color) string {
	if color == nil {
		return "#000000"
	}

	r := int(math.Round(color.R * 255))
	g := int(math.Round(color.G * 255))
	b := int(math.Round(color.B * 255))

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func pxValue(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
