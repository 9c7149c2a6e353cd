// Package tokens derives the shared design-token file from the document
// tree: colors, typography, spacing, and radii are collected from every node,
// deduplicated, normalized onto standard scales, and rendered as SCSS
// variables. Output is fully sorted so repeated runs against an unchanged
// document are byte-identical.
package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Chickencurry27/storybook/pkg/figma"
	"github.com/Chickencurry27/storybook/pkg/naming"
	"github.com/Chickencurry27/storybook/pkg/style"
)

// Set holds the collected token values for one document.
type Set struct {
	// Colors maps a slugged node name to a hex value, one entry per unique
	// color (first-seen name wins).
	Colors map[string]string

	// FontFamily is the first font family encountered in the document.
	FontFamily string

	// FontSizes, Spacing, and Radii map scale names to pixel values.
	FontSizes map[string]float64
	Spacing   map[string]float64
	Radii     map[string]float64

	// PublishedStyles lists the names of styles published in the file, when
	// the styles endpoint was reachable. Informational only.
	PublishedStyles []string
}

// Collect walks the document tree and gathers raw token values, then
// normalizes them onto standard scales.
func Collect(doc *figma.Node) *Set {
	s := &Set{
		Colors:    make(map[string]string),
		FontSizes: make(map[string]float64),
		Spacing:   make(map[string]float64),
		Radii:     make(map[string]float64),
	}

	var fontSizes, spacing, radii []float64
	seenColors := make(map[string]bool)

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if hex := style.FirstSolidFill(n.Fills); hex != "" && !seenColors[hex] {
			seenColors[hex] = true
			key := naming.ToIdentifier(n.Name)
			if key == "" {
				key = "color"
			}
			if _, taken := s.Colors[key]; taken {
				key = fmt.Sprintf("%s-%d", key, len(s.Colors))
			}
			s.Colors[key] = hex
		}

		if n.Style != nil {
			if s.FontFamily == "" && n.Style.FontFamily != "" {
				s.FontFamily = n.Style.FontFamily
			}
			if n.Style.FontSize > 0 {
				fontSizes = append(fontSizes, n.Style.FontSize)
			}
		}

		for _, v := range []float64{n.PaddingTop, n.PaddingRight, n.PaddingBottom, n.PaddingLeft, n.ItemSpacing} {
			if v > 0 {
				spacing = append(spacing, v)
			}
		}

		if n.CornerRadius > 0 {
			radii = append(radii, n.CornerRadius)
		}

		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(doc)

	s.FontSizes = toScale(fontSizes, []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"})
	s.Spacing = toScale(spacing, []string{"1", "2", "3", "4", "5", "6", "8", "10", "12", "16"})
	s.Radii = toScale(radii, []string{"sm", "md", "lg", "xl", "2xl"})

	return s
}

// AddPublishedStyles records the published style inventory for the token file
// header.
func (s *Set) AddPublishedStyles(meta []figma.StyleMetadata) {
	for _, m := range meta {
		s.PublishedStyles = append(s.PublishedStyles, fmt.Sprintf("%s (%s)", m.Name, m.StyleType))
	}
	sort.Strings(s.PublishedStyles)
}

// toScale maps sorted unique values onto a standard scale; values beyond the
// scale are dropped.
func toScale(values []float64, names []string) map[string]float64 {
	seen := make(map[float64]bool)
	var unique []float64
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			unique = append(unique, v)
		}
	}
	sort.Float64s(unique)

	out := make(map[string]float64)
	for i, v := range unique {
		if i >= len(names) {
			break
		}
		out[names[i]] = v
	}
	return out
}

// SCSS renders the token set as SCSS variables. Sections and keys are sorted
// so output is deterministic across runs.
func SCSS(s *Set, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("// Generated design tokens from %q. Do not edit by hand.\n", fileName))
	if len(s.PublishedStyles) > 0 {
		sb.WriteString("// Published styles: " + strings.Join(s.PublishedStyles, ", ") + "\n")
	}

	if len(s.Colors) > 0 {
		sb.WriteString("\n")
		for _, key := range sortedKeys(s.Colors) {
			sb.WriteString(fmt.Sprintf("$color-%s: %s;\n", key, s.Colors[key]))
		}
	}

	if s.FontFamily != "" {
		sb.WriteString(fmt.Sprintf("\n$font-family: '%s', sans-serif;\n", s.FontFamily))
	}

	writeScale(&sb, "text", s.FontSizes, []string{"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl"})
	writeScale(&sb, "space", s.Spacing, []string{"1", "2", "3", "4", "5", "6", "8", "10", "12", "16"})
	writeScale(&sb, "radius", s.Radii, []string{"sm", "md", "lg", "xl", "2xl"})

	return sb.String()
}

func writeScale(sb *strings.Builder, prefix string, scale map[string]float64, order []string) {
	if len(scale) == 0 {
		return
	}
	sb.WriteString("\n")
	for _, name := range order {
		if v, ok := scale[name]; ok {
			sb.WriteString(fmt.Sprintf("$%s-%s: %gpx;\n", prefix, name, v))
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
