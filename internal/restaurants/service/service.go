// Package service orchestrates restaurant searches: input validation, filter
// composition, the store query, and result shaping.
package service

import (
	"context"
	"fmt"
	"time"

	"restaurant_inspections_backend/internal/restaurants/cache"
	"restaurant_inspections_backend/internal/restaurants/repository"
	"restaurant_inspections_backend/internal/restaurants/transport"
	"restaurant_inspections_backend/internal/restaurants/validate"
	"restaurant_inspections_backend/platform/apperr"
	"restaurant_inspections_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	cacheKeyBoroughs = "metadata:boroughs"
	cacheKeyCuisines = "metadata:cuisines"
)

// Service provides business logic for restaurant inspection search.
type Service struct {
	repo  repository.Repository
	cache *cache.Metadata // nil when caching is not configured
	log   *logger.Logger
}

// New creates a new restaurant search service.
func New(repo repository.Repository, metaCache *cache.Metadata, log *logger.Logger) *Service {
	return &Service{repo: repo, cache: metaCache, log: log}
}

// Search validates the raw criteria, runs the filtered query, and shapes the
// capped result. Validation is all-or-nothing: no query is issued on invalid
// input. The store is never mutated.
func (s *Service) Search(ctx context.Context, req transport.SearchRequest) (transport.SearchResponse, error) {
	criteria, ferr := validate.Search(validate.SearchInput{
		Borough:  req.Borough,
		Cuisine:  req.Cuisine,
		MinGrade: req.MinGrade,
		Limit:    req.Limit,
	})
	if ferr != nil {
		s.logRejection(ferr, map[string]*string{
			"borough":  req.Borough,
			"cuisine":  req.Cuisine,
			"minGrade": req.MinGrade,
		})
		return transport.SearchResponse{}, rejectionError(ferr)
	}

	inspections, err := s.repo.Search(ctx, repository.SearchParams{
		Borough:  criteria.Borough,
		Cuisine:  criteria.Cuisine,
		MinGrade: criteria.MinGrade,
		Limit:    criteria.Limit,
	})
	if err != nil {
		s.log.DatabaseError("search restaurants", err)
		return transport.SearchResponse{}, err
	}

	records := toRecords(inspections)
	return transport.SearchResponse{
		Restaurants: records,
		Count:       len(records),
		Message:     fmt.Sprintf("Found %d restaurants", len(records)),
	}, nil
}

// Details returns one restaurant's inspection history, newest first.
func (s *Service) Details(ctx context.Context, req transport.DetailsRequest) (transport.DetailsResponse, error) {
	criteria, ferr := validate.Details(validate.DetailsInput{
		RestaurantName: req.RestaurantName,
		Borough:        req.Borough,
	})
	if ferr != nil {
		s.logRejection(ferr, map[string]*string{
			"restaurantName": req.RestaurantName,
			"borough":        req.Borough,
		})
		return transport.DetailsResponse{}, rejectionError(ferr)
	}

	inspections, err := s.repo.FindByName(ctx, criteria.RestaurantName, criteria.Borough)
	if err != nil {
		s.log.DatabaseError("restaurant details", err)
		return transport.DetailsResponse{}, err
	}

	records := toRecords(inspections)
	message := fmt.Sprintf("Found %d inspections", len(records))
	if len(records) == 0 {
		message = "No inspections found for this restaurant"
	}

	return transport.DetailsResponse{
		RestaurantName:  criteria.RestaurantName,
		Inspections:     records,
		InspectionCount: len(records),
		Message:         message,
	}, nil
}

// Boroughs lists the distinct boroughs, via the metadata cache when present.
func (s *Service) Boroughs(ctx context.Context) ([]string, error) {
	return s.metadataList(ctx, cacheKeyBoroughs, s.repo.DistinctBoroughs)
}

// Cuisines lists the distinct cuisine descriptions.
func (s *Service) Cuisines(ctx context.Context) ([]string, error) {
	return s.metadataList(ctx, cacheKeyCuisines, s.repo.DistinctCuisines)
}

// Metadata fetches both filter lists concurrently.
func (s *Service) Metadata(ctx context.Context) (transport.MetadataResponse, error) {
	var boroughs, cuisines []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		boroughs, err = s.Boroughs(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cuisines, err = s.Cuisines(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.MetadataResponse{}, err
	}

	return transport.MetadataResponse{Boroughs: boroughs, Cuisines: cuisines}, nil
}

func (s *Service) metadataList(ctx context.Context, key string, fetch func(context.Context) ([]string, error)) ([]string, error) {
	if s.cache != nil {
		if values, ok := s.cache.Get(ctx, key); ok {
			return values, nil
		}
	}

	values, err := fetch(ctx)
	if err != nil {
		s.log.DatabaseError(key, err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, values)
	}
	return values, nil
}

// logRejection records the rejected field. The offending raw value goes to
// the server log only when an injection signature matched; rejection
// responses never carry it.
func (s *Service) logRejection(ferr *validate.FieldError, raw map[string]*string) {
	if ferr.Reason == validate.ReasonSuspiciousContent {
		value := ""
		if v := raw[ferr.Field]; v != nil {
			value = *v
		}
		s.log.SuspiciousInput(ferr.Field, string(ferr.Reason), value)
		return
	}
	s.log.Debug("search input rejected", "field", ferr.Field, "reason", string(ferr.Reason))
}

// rejectionError wraps a field rejection into the shared error taxonomy so
// the boundary maps it to a 4xx, with the field and reason as safe details.
func rejectionError(ferr *validate.FieldError) error {
	return apperr.Wrap(apperr.KindValidation, ferr.Message, ferr).WithDetails(map[string]string{
		"field":  ferr.Field,
		"reason": string(ferr.Reason),
	})
}

func toRecords(inspections []repository.Inspection) []transport.InspectionRecord {
	records := make([]transport.InspectionRecord, 0, len(inspections))
	for _, ins := range inspections {
		records = append(records, toRecord(ins))
	}
	return records
}

func toRecord(ins repository.Inspection) transport.InspectionRecord {
	return transport.InspectionRecord{
		CAMIS:                ins.CAMIS,
		DBA:                  ins.DBA,
		Boro:                 ins.Borough,
		Building:             ins.Building,
		Street:               ins.Street,
		Zipcode:              ins.Zipcode,
		Phone:                ins.Phone,
		CuisineDescription:   ins.CuisineDescription,
		InspectionDate:       ins.InspectionDate.Format(time.RFC3339),
		Action:               ins.Action,
		ViolationCode:        ins.ViolationCode,
		ViolationDescription: ins.ViolationDescription,
		CriticalFlag:         ins.CriticalFlag,
		Score:                ins.Score,
		Grade:                ins.Grade,
		GradeDate:            formatTimePtr(ins.GradeDate),
		RecordDate:           formatTimePtr(ins.RecordDate),
		InspectionType:       ins.InspectionType,
		Latitude:             ins.Latitude,
		Longitude:            ins.Longitude,
		CommunityBoard:       ins.CommunityBoard,
		CouncilDistrict:      ins.CouncilDistrict,
		CensusTract:          ins.CensusTract,
		BIN:                  ins.BIN,
		BBL:                  ins.BBL,
		NTA:                  ins.NTA,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
