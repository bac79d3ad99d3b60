package validate

import (
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestFieldRuleAbsentInput(t *testing.T) {
	cases := []*string{nil, strPtr(""), strPtr("   "), strPtr(" \t\n ")}
	for _, raw := range cases {
		value, ferr := Borough.Apply(raw)
		if ferr != nil {
			t.Fatalf("blank input should be absent, got error %v", ferr)
		}
		if value != nil {
			t.Fatalf("blank input should normalize to absent, got %q", *value)
		}
	}
}

func TestBoroughUppercasedAndValidated(t *testing.T) {
	value, ferr := Borough.Apply(strPtr("  manhattan "))
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if value == nil || *value != "MANHATTAN" {
		t.Fatalf("Borough.Apply() = %v, want MANHATTAN", value)
	}

	_, ferr = Borough.Apply(strPtr("MANHATTAN OR 1=1"))
	if ferr == nil || ferr.Reason != ReasonInvalidCharacters {
		t.Fatalf("expected invalid_characters for SQL-ish borough, got %v", ferr)
	}

	_, ferr = Borough.Apply(strPtr(strings.Repeat("A", 51)))
	if ferr == nil || ferr.Reason != ReasonFieldTooLong {
		t.Fatalf("expected field_too_long, got %v", ferr)
	}
}

func TestRestaurantNameCharsetAndLength(t *testing.T) {
	value, ferr := RestaurantName.Apply(strPtr("Joe's Pizza & Pasta (Broadway), No. 1"))
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if value == nil || *value != "Joe's Pizza & Pasta (Broadway), No. 1" {
		t.Fatalf("unexpected normalized name: %v", value)
	}

	_, ferr = RestaurantName.Apply(strPtr("name; DROP TABLE users"))
	if ferr == nil || ferr.Reason != ReasonInvalidCharacters {
		t.Fatalf("expected invalid_characters for semicolon, got %v", ferr)
	}

	_, ferr = RestaurantName.Apply(strPtr(strings.Repeat("a", 201)))
	if ferr == nil || ferr.Reason != ReasonFieldTooLong {
		t.Fatalf("expected field_too_long, got %v", ferr)
	}
}

func TestGradeRule(t *testing.T) {
	value, ferr := Grade.Apply(strPtr(" a "))
	if ferr != nil {
		t.Fatalf("unexpected error: %v", ferr)
	}
	if value == nil || *value != "A" {
		t.Fatalf("Grade.Apply() = %v, want A", value)
	}

	_, ferr = Grade.Apply(strPtr("AB"))
	if ferr == nil || ferr.Reason != ReasonFieldTooLong {
		t.Fatalf("expected field_too_long for two-letter grade, got %v", ferr)
	}

	_, ferr = Grade.Apply(strPtr("1"))
	if ferr == nil || ferr.Reason != ReasonInvalidCharacters {
		t.Fatalf("expected invalid_characters for digit grade, got %v", ferr)
	}
}

func TestLimitDefaultsAndClamping(t *testing.T) {
	limit, ferr := Limit(nil, 1000)
	if ferr != nil || limit != 100 {
		t.Fatalf("Limit(nil) = %d, %v; want 100, nil", limit, ferr)
	}

	if _, ferr = Limit(intPtr(0), 1000); ferr == nil || ferr.Reason != ReasonInvalidLimit {
		t.Fatalf("Limit(0) should reject, got %v", ferr)
	}
	if _, ferr = Limit(intPtr(-5), 1000); ferr == nil || ferr.Reason != ReasonInvalidLimit {
		t.Fatalf("Limit(-5) should reject, got %v", ferr)
	}

	// Too-large is tolerated and capped, unlike too-small.
	limit, ferr = Limit(intPtr(5000), 1000)
	if ferr != nil || limit != 1000 {
		t.Fatalf("Limit(5000) = %d, %v; want 1000, nil", limit, ferr)
	}

	limit, ferr = Limit(intPtr(50), 1000)
	if ferr != nil || limit != 50 {
		t.Fatalf("Limit(50) = %d, %v; want 50, nil", limit, ferr)
	}
}
