package graph

import "github.com/Chickencurry27/storybook/pkg/figma"

// Kind is the structural role of a node, decided purely from the node itself
// with no parent context, so classification is order-independent.
type Kind int

const (
	// KindDecoration marks nodes that produce no output of their own
	// (empty text layers, slices, guides).
	KindDecoration Kind = iota

	// KindContainer wraps children in markup and carries layout rules.
	KindContainer

	// KindText becomes a placeholder bound to a positional text prop.
	KindText

	// KindShape is an empty styled box with no binary asset.
	KindShape

	// KindAsset is exported as a binary image and referenced in markup.
	KindAsset
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindShape:
		return "shape"
	case KindAsset:
		return "asset"
	default:
		return "decoration"
	}
}

// vectorTypes are node types exported in a vector format.
var vectorTypes = map[string]bool{
	"VECTOR":            true,
	"BOOLEAN_OPERATION": true,
	"STAR":              true,
	"ELLIPSE":           true,
	"POLYGON":           true,
	"LINE":              true,
}

// shapeTypes are leaf node types that render as a plain styled box when they
// carry no asset.
var shapeTypes = map[string]bool{
	"RECTANGLE": true,
	"FRAME":     true,
	"GROUP":     true,
	"COMPONENT": true,
	"INSTANCE":  true,
}

// Classify determines a node's structural role. Asset candidacy wins over
// containment: a frame with an image fill is exported as an image, not
// recursed into.
func Classify(node *figma.Node) Kind {
	if IsAssetCandidate(node) {
		return KindAsset
	}
	if node.Type == "TEXT" && node.Characters != "" {
		return KindText
	}
	if len(node.Children) > 0 {
		return KindContainer
	}
	if shapeTypes[node.Type] {
		return KindShape
	}
	return KindDecoration
}

// IsAssetCandidate reports whether a node is eligible for binary export:
// it carries an explicit export directive, contains an image fill, or is a
// pure vector type.
func IsAssetCandidate(node *figma.Node) bool {
	if len(node.ExportSettings) > 0 {
		return true
	}
	if HasImageFill(node) {
		return true
	}
	return vectorTypes[node.Type]
}

// HasImageFill reports whether any visible fill references an image.
func HasImageFill(node *figma.Node) bool {
	for _, fill := range node.Fills {
		if fill.Type == "IMAGE" && fill.IsVisible() {
			return true
		}
	}
	return false
}

// ExportFormat decides the binary format for an asset candidate: pure vector
// types render as SVG, everything else (image fills, export directives on
// raster content) as PNG.
func ExportFormat(node *figma.Node) string {
	if vectorTypes[node.Type] && !HasImageFill(node) {
		return "svg"
	}
	return "png"
}
