package repository

import "context"

// SearchParams is the validated filter set for a restaurant search. Nil
// fields are absent and add no constraint. All values have already passed
// the validation pipeline; the store still binds them as query parameters,
// never by string concatenation.
type SearchParams struct {
	// Borough filters by exact, case-insensitive borough match.
	Borough *string
	// Cuisine filters by case-insensitive substring match.
	Cuisine *string
	// MinGrade keeps records whose grade is at most this letter under
	// lexical ordering, or that carry no grade at all.
	MinGrade *string
	// Limit caps the number of returned records.
	Limit int
}

// Repository is the read-only record store for restaurant inspections.
// Results are ordered by restaurant name ascending, then inspection date
// descending; detail views depend on that ordering to surface the latest
// inspection first.
type Repository interface {
	// Search returns inspections matching the composed filters.
	Search(ctx context.Context, params SearchParams) ([]Inspection, error)
	// FindByName returns the inspection history of one restaurant
	// (exact case-insensitive name, optional borough), newest first.
	FindByName(ctx context.Context, name string, borough *string) ([]Inspection, error)
	// DistinctBoroughs lists all non-null boroughs, sorted.
	DistinctBoroughs(ctx context.Context) ([]string, error)
	// DistinctCuisines lists all non-null cuisine descriptions, sorted.
	DistinctCuisines(ctx context.Context) ([]string, error)
}
