// Package forms implements the input-to-payload mappers behind the console's
// create and edit screens. Each form validates client-side before any
// network call and reports failures per field for inline rendering.
package forms

import (
	"net/url"
	"strings"
	"unicode"
)

// Errors maps field names to inline validation messages.
type Errors map[string]string

// Valid reports whether validation passed.
func (e Errors) Valid() bool { return len(e) == 0 }

// Slugify derives a URL slug from a title: lowercased, non-alphanumerics
// stripped, whitespace runs collapsed to single hyphens.
func Slugify(title string) string {
	lower := strings.ToLower(title)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validSlug(slug string) bool {
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}
