package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"restaurant_inspections_backend/platform/apperr"
)

func intArg(t *testing.T, args []interface{}, idx int) int {
	t.Helper()
	n, ok := args[idx].(int)
	if !ok {
		t.Fatalf("arg %d is %T, want int", idx, args[idx])
	}
	return n
}

func TestBuildSearchQueryNoFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{Limit: 100})

	if strings.Contains(query, "WHERE") {
		t.Errorf("unfiltered query must have no WHERE clause:\n%s", query)
	}
	if !strings.Contains(query, "ORDER BY dba, inspection_date DESC LIMIT $1") {
		t.Errorf("missing ordering and limit:\n%s", query)
	}
	if len(args) != 1 || intArg(t, args, 0) != 100 {
		t.Fatalf("args = %v, want [100]", args)
	}
}

func TestBuildSearchQueryAllFilters(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{
		Borough:  strPtr("MANHATTAN"),
		Cuisine:  strPtr("Pizza"),
		MinGrade: strPtr("A"),
		Limit:    10,
	})

	for _, clause := range []string{
		"UPPER(boro) = UPPER($1)",
		"cuisine_description ILIKE $2",
		"(grade IS NULL OR grade <= $3)",
		"LIMIT $4",
	} {
		if !strings.Contains(query, clause) {
			t.Errorf("query missing %q:\n%s", clause, query)
		}
	}

	if len(args) != 4 {
		t.Fatalf("args = %v, want 4 values", args)
	}
	if args[0] != "MANHATTAN" {
		t.Errorf("borough arg = %v", args[0])
	}
	if args[1] != "%Pizza%" {
		t.Errorf("cuisine arg = %v, want wrapped in wildcards", args[1])
	}
	if args[2] != "A" {
		t.Errorf("grade arg = %v", args[2])
	}
	if intArg(t, args, 3) != 10 {
		t.Errorf("limit arg = %v", args[3])
	}
}

func TestBuildSearchQuerySingleFilterNumbering(t *testing.T) {
	query, args := buildSearchQuery(SearchParams{Cuisine: strPtr("Thai"), Limit: 50})

	if !strings.Contains(query, "cuisine_description ILIKE $1") {
		t.Errorf("cuisine must bind $1 when it is the only filter:\n%s", query)
	}
	if !strings.Contains(query, "LIMIT $2") {
		t.Errorf("limit must bind $2:\n%s", query)
	}
	if len(args) != 2 || args[0] != "%Thai%" || intArg(t, args, 1) != 50 {
		t.Fatalf("args = %v", args)
	}
}

func TestStoreErrorClassifiesDeadline(t *testing.T) {
	err := storeError("search restaurants", fmt.Errorf("query: %w", context.DeadlineExceeded))
	if !apperr.Is(err, apperr.KindTimeout) {
		t.Fatalf("kind = %v, want timeout", apperr.GetKind(err))
	}
	domainErr := err.(*apperr.Error)
	if domainErr.HTTPStatus() != 504 {
		t.Errorf("status = %d, want 504", domainErr.HTTPStatus())
	}
}

func TestStoreErrorClassifiesOutage(t *testing.T) {
	err := storeError("search restaurants", errors.New("connection refused"))
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("kind = %v, want unavailable", apperr.GetKind(err))
	}
	domainErr := err.(*apperr.Error)
	if domainErr.HTTPStatus() != 503 {
		t.Errorf("status = %d, want 503", domainErr.HTTPStatus())
	}
}

// A row the store answered with but we could not decode is our problem,
// not an outage.
func TestScanErrorIsInternal(t *testing.T) {
	err := scanError("search restaurants", errors.New("cannot scan NULL into string"))
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("kind = %v, want internal", apperr.GetKind(err))
	}
	if err.(*apperr.Error).HTTPStatus() != 500 {
		t.Errorf("status = %d, want 500", err.(*apperr.Error).HTTPStatus())
	}

	// A deadline hit mid-iteration is still a timeout.
	err = scanError("search restaurants", context.DeadlineExceeded)
	if !apperr.Is(err, apperr.KindTimeout) {
		t.Fatalf("kind = %v, want timeout", apperr.GetKind(err))
	}
}

// Values are always bound as parameters, never spliced into the statement.
func TestBuildSearchQueryNeverInlinesValues(t *testing.T) {
	query, _ := buildSearchQuery(SearchParams{
		Borough: strPtr("MANHATTAN"),
		Cuisine: strPtr("Deli"),
		Limit:   25,
	})
	for _, literal := range []string{"MANHATTAN", "Deli", "25"} {
		if strings.Contains(query, literal) {
			t.Errorf("query contains literal %q:\n%s", literal, query)
		}
	}
}
