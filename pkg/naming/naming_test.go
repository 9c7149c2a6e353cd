package naming

import "testing"

func TestToIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{
			name:  "simple label",
			label: "Avatar Image",
			want:  "avatar-image",
		},
		{
			name:  "whitespace run collapses to one hyphen",
			label: "User   Card",
			want:  "user-card",
		},
		{
			name:  "special characters stripped",
			label: "User Card!!",
			want:  "user-card",
		},
		{
			name:  "underscores and hyphens preserved",
			label: "icon_left-arrow",
			want:  "icon_left-arrow",
		},
		{
			name:  "uppercase lowered",
			label: "CTA Button",
			want:  "cta-button",
		},
		{
			name:  "digits preserved",
			label: "Frame 12",
			want:  "frame-12",
		},
		{
			name:  "empty label",
			label: "",
			want:  "",
		},
		{
			name:  "only special characters",
			label: "!!!",
			want:  "",
		},
		{
			name:  "tabs and newlines are whitespace",
			label: "a\t b\nc",
			want:  "a-b-c",
		},
		{
			name:  "leading whitespace produces no leading hyphen",
			label: "  Avatar",
			want:  "avatar",
		},
		{
			name:  "trailing whitespace produces no trailing hyphen",
			label: "Avatar  ",
			want:  "avatar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToIdentifier(tt.label)
			if got != tt.want {
				t.Errorf("ToIdentifier(%q) = %q, want %q", tt.label, got, tt.want)
			}

			// Applying the function to its own output must be a no-op.
			if again := ToIdentifier(got); again != got {
				t.Errorf("ToIdentifier not idempotent: ToIdentifier(%q) = %q", got, again)
			}
		})
	}
}

func TestToComponentName(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{
			name:  "punctuated label",
			label: "User Card!!",
			want:  "UserCard",
		},
		{
			name:  "single word",
			label: "button",
			want:  "Button",
		},
		{
			name:  "all caps fragments lowered then capitalized",
			label: "CTA BUTTON",
			want:  "CtaButton",
		},
		{
			name:  "slashes split fragments",
			label: "cards/profile-card",
			want:  "CardsProfileCard",
		},
		{
			name:  "digits kept in fragments",
			label: "grid 2x2",
			want:  "Grid2x2",
		},
		{
			name:  "empty label",
			label: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToComponentName(tt.label); got != tt.want {
				t.Errorf("ToComponentName(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestScopeResolve(t *testing.T) {
	t.Run("sibling collision gets numeric suffix in order", func(t *testing.T) {
		s := NewScope()
		if got := s.Resolve("Icon"); got != "icon" {
			t.Errorf("first Resolve = %q, want %q", got, "icon")
		}
		if got := s.Resolve("Icon"); got != "icon-1" {
			t.Errorf("second Resolve = %q, want %q", got, "icon-1")
		}
		if got := s.Resolve("Icon"); got != "icon-2" {
			t.Errorf("third Resolve = %q, want %q", got, "icon-2")
		}
	})

	t.Run("distinct labels do not collide", func(t *testing.T) {
		s := NewScope()
		a := s.Resolve("Title")
		b := s.Resolve("Subtitle")
		if a == b {
			t.Errorf("distinct labels resolved to the same class %q", a)
		}
	})

	t.Run("empty label falls back to element", func(t *testing.T) {
		s := NewScope()
		if got := s.Resolve("!!!"); got != "element" {
			t.Errorf("Resolve(%q) = %q, want %q", "!!!", got, "element")
		}
		if got := s.Resolve("???"); got != "element-1" {
			t.Errorf("second empty Resolve = %q, want %q", got, "element-1")
		}
	})

	t.Run("scopes are independent", func(t *testing.T) {
		a := NewScope()
		b := NewScope()
		if got := a.Resolve("Icon"); got != "icon" {
			t.Fatalf("scope a Resolve = %q", got)
		}
		if got := b.Resolve("Icon"); got != "icon" {
			t.Errorf("fresh scope should not see other scope's names, got %q", got)
		}
	})
}
