// Package validate implements the field validation pipeline for restaurant
// search input: sanitization, per-field structural rules, and injection
// signature detection. All raw client values pass through here before any
// query is built.
package validate

import (
	"regexp"
	"strings"

	"restaurant_inspections_backend/platform/sanitize"
)

// Reason tags a rejection with a machine-readable cause.
type Reason string

const (
	ReasonRequired          Reason = "required"
	ReasonFieldTooLong      Reason = "field_too_long"
	ReasonInvalidCharacters Reason = "invalid_characters"
	ReasonSuspiciousContent Reason = "suspicious_content"
	ReasonInvalidLimit      Reason = "invalid_limit"
)

// FieldError reports a single rejected field. The message is static and
// never contains the offending input.
type FieldError struct {
	Field   string
	Reason  Reason
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// nameCharset allows letters, digits, spaces, and common punctuation
	// found in business names. Sanitized input carries single spaces only.
	nameCharset    = regexp.MustCompile(`^[a-zA-Z0-9 \-',.&()]+$`)
	boroughCharset = regexp.MustCompile(`^[A-Z ]+$`)
	gradeCharset   = regexp.MustCompile(`^[A-Z]$`)
)

// FieldRule describes the structural constraints of one input field kind.
// Rules are process-wide constants, initialized once and read-only.
type FieldRule struct {
	// Field is the request field name used in rejection details.
	Field string
	// MaxLen bounds the sanitized value; 0 means no maximum.
	MaxLen int
	// ExactLen requires an exact length; 0 disables the check.
	ExactLen int
	// Pattern is the allowed charset, checked after normalization.
	Pattern *regexp.Regexp
	// Uppercase folds the value to upper case before the checks.
	Uppercase bool
	// FreeText marks fields that additionally run the injection scan.
	// Enum-like fields are fully constrained by their charset already.
	FreeText bool
	// TooLongMessage and CharsetMessage are the static rejection texts.
	TooLongMessage string
	CharsetMessage string
}

var (
	// RestaurantName validates the free-text restaurant name field.
	RestaurantName = FieldRule{
		Field:          "restaurantName",
		MaxLen:         200,
		Pattern:        nameCharset,
		FreeText:       true,
		TooLongMessage: "restaurant name is too long (max 200 characters)",
		CharsetMessage: "restaurant name contains invalid characters",
	}

	// Borough validates the borough filter; values are upper-cased first.
	Borough = FieldRule{
		Field:          "borough",
		MaxLen:         50,
		Pattern:        boroughCharset,
		Uppercase:      true,
		TooLongMessage: "borough name is too long",
		CharsetMessage: "borough name contains invalid characters",
	}

	// Cuisine validates the free-text cuisine filter.
	Cuisine = FieldRule{
		Field:          "cuisine",
		MaxLen:         100,
		Pattern:        nameCharset,
		FreeText:       true,
		TooLongMessage: "cuisine description is too long (max 100 characters)",
		CharsetMessage: "cuisine description contains invalid characters",
	}

	// Grade validates the minimum-grade ceiling: a single letter A-Z.
	Grade = FieldRule{
		Field:          "minGrade",
		ExactLen:       1,
		Pattern:        gradeCharset,
		Uppercase:      true,
		TooLongMessage: "grade must be a single character",
		CharsetMessage: "invalid grade format",
	}
)

// Apply runs sanitize, structural checks, and (for free-text fields) the
// injection scan on one optional field, in that fixed order, short-circuiting
// on the first failure. Nil or blank input is treated as absent and yields
// (nil, nil), never an error.
func (r FieldRule) Apply(raw *string) (*string, *FieldError) {
	if raw == nil {
		return nil, nil
	}

	value := sanitize.Clean(*raw)
	if value == "" {
		return nil, nil
	}
	if r.Uppercase {
		value = strings.ToUpper(value)
	}

	if r.ExactLen > 0 && len(value) != r.ExactLen {
		return nil, &FieldError{Field: r.Field, Reason: ReasonFieldTooLong, Message: r.TooLongMessage}
	}
	if r.MaxLen > 0 && len(value) > r.MaxLen {
		return nil, &FieldError{Field: r.Field, Reason: ReasonFieldTooLong, Message: r.TooLongMessage}
	}
	if !r.Pattern.MatchString(value) {
		return nil, &FieldError{Field: r.Field, Reason: ReasonInvalidCharacters, Message: r.CharsetMessage}
	}

	if r.FreeText && Suspicious(value) {
		return nil, &FieldError{
			Field:   r.Field,
			Reason:  ReasonSuspiciousContent,
			Message: "input contains potentially malicious content",
		}
	}

	return &value, nil
}

const (
	// DefaultLimit is used when the client does not request a page size.
	DefaultLimit = 100
	// MaxSearchLimit is the ceiling on any requested page size.
	MaxSearchLimit = 1000
)

// Limit clamps a requested result count. Nil falls back to DefaultLimit,
// a value above the ceiling is silently capped, and a value below 1 is a
// hard validation error. Too-small and too-large deliberately behave
// differently.
func Limit(requested *int, ceiling int) (int, *FieldError) {
	if requested == nil {
		return DefaultLimit, nil
	}
	if *requested < 1 {
		return 0, &FieldError{Field: "limit", Reason: ReasonInvalidLimit, Message: "limit must be at least 1"}
	}
	if *requested > ceiling {
		return ceiling, nil
	}
	return *requested, nil
}
