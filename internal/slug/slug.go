// Package slug turns human-readable style names into directory-safe identifiers.
package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmpty is returned when a name normalizes to nothing.
var ErrEmpty = errors.New("style name produces an empty slug")

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Make lowercases name, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
func Make(name string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// Valid is Make plus the non-empty check callers must run before touching disk.
func Valid(name string) (string, error) {
	s := Make(name)
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrEmpty, name)
	}
	return s, nil
}
