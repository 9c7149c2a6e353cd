// Package naming derives stable, collision-free identifiers from
// human-entered Figma layer names. Component names are PascalCase and
// collision-resistant across the whole document; element classes are
// kebab-case slugs unique within one component's subtree.
package naming

import (
	"fmt"
	"strings"
	"unicode"
)

// ToIdentifier converts a free-text layer name into a kebab-case slug:
// lowercased, surrounding whitespace trimmed, inner whitespace runs collapsed
// to a single hyphen, and any character
// outside [a-z0-9-_] stripped. The function is idempotent: applying it to its
// own output returns the same slug.
func ToIdentifier(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))

	var b strings.Builder
	inSpace := false
	for _, r := range label {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('-')
			inSpace = false
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ToComponentName converts a layer name into a PascalCase component name.
// The name is split on runs of non-alphanumeric characters; each fragment is
// capitalized on its first letter with the rest lowercased, then the fragments
// are concatenated ("User Card!!" -> "UserCard").
func ToComponentName(label string) string {
	fields := strings.FieldsFunc(label, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, f := range fields {
		lower := strings.ToLower(f)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}

	return b.String()
}

// Scope tracks element class names used within one component's subtree.
// Names are resolved pre-order, depth-first, so sibling order determines
// which sibling keeps the unsuffixed slug.
type Scope struct {
	used map[string]bool
}

// NewScope returns an empty naming scope for one component.
func NewScope() *Scope {
	return &Scope{used: make(map[string]bool)}
}

// Resolve returns a unique element class for the given layer name within this
// scope. On collision a numeric suffix (-1, -2, ...) is appended until an
// unused name is found; the resolved name is recorded immediately so callers
// must resolve a node before descending into its children.
func (s *Scope) Resolve(label string) string {
	base := ToIdentifier(label)
	if base == "" {
		base = "element"
	}

	name := base
	for i := 1; s.used[name]; i++ {
		name = fmt.Sprintf("%s-%d", base, i)
	}
	s.used[name] = true

	return name
}
