package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateTourName validates a tour name used as a store key, file basename,
// or Redis/Mongo document identifier. The rules are intentionally
// conservative so the same name is safe across every backend:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateTourName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "tour name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "tour name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "tour name contains control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\", "\x00"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "tour name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit hex color strings like "#f9f9f9".
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a CSS-style hex color string.
func ValidateHexColor(s string) error {
	if s == "" {
		return New(ErrCodeInvalidInput, "color cannot be empty")
	}
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidInput, "invalid hex color: %q", s)
	}
	return nil
}

// ValidateTransparency validates a transparency percentage.
// The value must be an integer in [0,100]; conversion to the [0,1] scale
// happens only at the point of color compositing.
func ValidateTransparency(pct int) error {
	if pct < 0 || pct > 100 {
		return New(ErrCodeInvalidInput, "transparency must be in [0,100], got %d", pct)
	}
	return nil
}
