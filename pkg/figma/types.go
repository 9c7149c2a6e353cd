package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, document structure, published styles, and schema version information.
type FileResponse struct {
	Name          string           `json:"name"`
	LastModified  string           `json:"lastModified"`
	ThumbnailURL  string           `json:"thumbnailUrl"`
	Version       string           `json:"version"`
	Document      Node             `json:"document"`
	Styles        map[string]Style `json:"styles"`
	SchemaVersion int              `json:"schemaVersion"`
}

// ImagesResponse represents the response from the Figma image render endpoint.
// Images maps node IDs to short-lived download URLs; a missing or empty URL
// means Figma could not render that node.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// StylesResponse represents the response from the Figma styles API endpoint.
// It includes metadata about all published styles in the file.
type StylesResponse struct {
	Meta Meta `json:"meta"`
}

// Meta contains metadata about published styles in a Figma file.
type Meta struct {
	Styles []StyleMetadata `json:"styles"`
}

// StyleMetadata contains metadata for a single published style in Figma.
// It includes the unique key, file reference, node ID, style type (FILL, TEXT, EFFECT, or GRID), name, and description.
type StyleMetadata struct {
	Key         string `json:"key"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	StyleType   string `json:"style_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, components, text, shapes, or vectors, each with
// their own fills, corner radii, auto-layout settings, and children. The tree
// is a strict ownership hierarchy: every node except the document root belongs
// to exactly one parent.
type Node struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Type                   string          `json:"type"`
	Children               []Node          `json:"children,omitempty"`
	BackgroundColor        *Color          `json:"backgroundColor,omitempty"`
	Fills                  []Paint         `json:"fills,omitempty"`
	Strokes                []Paint         `json:"strokes,omitempty"`
	StrokeWeight           float64         `json:"strokeWeight,omitempty"`
	CornerRadius           float64         `json:"cornerRadius,omitempty"`
	RectangleCornerRadii   []float64       `json:"rectangleCornerRadii,omitempty"`
	Characters             string          `json:"characters,omitempty"`
	Style                  *TypeStyle      `json:"style,omitempty"`
	AbsoluteBoundingBox    *Rectangle      `json:"absoluteBoundingBox,omitempty"`
	ExportSettings         []ExportSetting `json:"exportSettings,omitempty"`
	LayoutMode             string          `json:"layoutMode,omitempty"`
	PrimaryAxisAlignItems  string          `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string          `json:"counterAxisAlignItems,omitempty"`
	LayoutSizingHorizontal string          `json:"layoutSizingHorizontal,omitempty"`
	LayoutSizingVertical   string          `json:"layoutSizingVertical,omitempty"`
	LayoutGrow             float64         `json:"layoutGrow,omitempty"`
	PaddingLeft            float64         `json:"paddingLeft,omitempty"`
	PaddingRight           float64         `json:"paddingRight,omitempty"`
	PaddingTop             float64         `json:"paddingTop,omitempty"`
	PaddingBottom          float64         `json:"paddingBottom,omitempty"`
	ItemSpacing            float64         `json:"itemSpacing,omitempty"`
}

// ExportSetting represents a designer-defined export directive on a node.
// Its presence alone marks the node as exportable.
type ExportSetting struct {
	Suffix string `json:"suffix,omitempty"`
	Format string `json:"format,omitempty"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, IMAGE, GRADIENT_LINEAR, etc.), visibility,
// opacity, and either color information or an image reference.
//
// Visible defaults to true in the Figma API: the field is absent for visible
// paints, so a pointer distinguishes "absent" from "explicitly false".
type Paint struct {
	Type     string  `json:"type"`
	Visible  *bool   `json:"visible,omitempty"`
	Opacity  float64 `json:"opacity,omitempty"`
	Color    *Color  `json:"color,omitempty"`
	ImageRef string  `json:"imageRef,omitempty"`
}

// IsVisible reports whether the paint is rendered.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// TypeStyle represents text styling properties from Figma.
// It includes font family, weight, size, line height, letter spacing, and text alignment settings.
// Zero values mean the field was absent on the node's style block.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontPostScriptName  string  `json:"fontPostScriptName,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
