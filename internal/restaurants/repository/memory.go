package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// InMemory is a Repository backed by a slice, honoring the same filter and
// ordering contract as the postgres implementation. It backs service and
// handler tests without a database.
type InMemory struct {
	mu      sync.RWMutex
	records []Inspection
}

// NewInMemory creates an empty in-memory repository.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Compile-time check that InMemory implements Repository.
var _ Repository = (*InMemory)(nil)

// Add stores inspection records.
func (m *InMemory) Add(records ...Inspection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, records...)
}

// Search returns inspections matching the composed filters, ordered by
// restaurant name ascending then inspection date descending.
func (m *InMemory) Search(ctx context.Context, params SearchParams) ([]Inspection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []Inspection
	for _, ins := range m.records {
		if params.Borough != nil && !strings.EqualFold(ins.Borough, *params.Borough) {
			continue
		}
		if params.Cuisine != nil &&
			!strings.Contains(strings.ToUpper(ins.CuisineDescription), strings.ToUpper(*params.Cuisine)) {
			continue
		}
		if params.MinGrade != nil && ins.Grade != nil && *ins.Grade > *params.MinGrade {
			continue
		}
		matched = append(matched, ins)
	}

	sortByNameThenDate(matched)

	if params.Limit > 0 && len(matched) > params.Limit {
		matched = matched[:params.Limit]
	}
	return matched, nil
}

// FindByName returns one restaurant's inspections, newest first.
func (m *InMemory) FindByName(ctx context.Context, name string, borough *string) ([]Inspection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []Inspection
	for _, ins := range m.records {
		if !strings.EqualFold(ins.DBA, name) {
			continue
		}
		if borough != nil && !strings.EqualFold(ins.Borough, *borough) {
			continue
		}
		matched = append(matched, ins)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].InspectionDate.After(matched[j].InspectionDate)
	})
	return matched, nil
}

// DistinctBoroughs lists all non-empty boroughs, sorted.
func (m *InMemory) DistinctBoroughs(ctx context.Context) ([]string, error) {
	return m.distinct(func(ins Inspection) string { return ins.Borough }), nil
}

// DistinctCuisines lists all non-empty cuisine descriptions, sorted.
func (m *InMemory) DistinctCuisines(ctx context.Context) ([]string, error) {
	return m.distinct(func(ins Inspection) string { return ins.CuisineDescription }), nil
}

func (m *InMemory) distinct(field func(Inspection) string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	var values []string
	for _, ins := range m.records {
		v := field(ins)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func sortByNameThenDate(inspections []Inspection) {
	sort.SliceStable(inspections, func(i, j int) bool {
		if inspections[i].DBA != inspections[j].DBA {
			return inspections[i].DBA < inspections[j].DBA
		}
		return inspections[i].InspectionDate.After(inspections[j].InspectionDate)
	})
}
