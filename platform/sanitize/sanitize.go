// Package sanitize provides text normalization for untrusted input.
// This is part of the platform layer and contains no business logic.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// controlChars matches C0 control characters and DEL, excluding tab,
	// newline, and carriage return (those fold into whitespace collapsing).
	controlChars = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	// whitespaceRuns matches any run of whitespace.
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Clean normalizes a raw string: control characters are removed, runs of
// whitespace collapse to a single space, and leading/trailing whitespace
// is trimmed. Clean is pure and idempotent.
func Clean(s string) string {
	s = controlChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanPtr is a helper for optional string pointers. Nil passes through
// unchanged.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Clean(*s)
	return &result
}
