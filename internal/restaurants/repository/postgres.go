package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant_inspections_backend/platform/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inspectionColumns = `camis, COALESCE(dba, ''), COALESCE(boro, ''), COALESCE(building, ''),
	COALESCE(street, ''), COALESCE(zipcode, ''), COALESCE(phone, ''),
	COALESCE(cuisine_description, ''), inspection_date, COALESCE(action, ''),
	COALESCE(violation_code, ''), COALESCE(violation_description, ''),
	COALESCE(critical_flag, ''), score, grade, grade_date, record_date,
	COALESCE(inspection_type, ''), latitude, longitude,
	COALESCE(community_board, ''), COALESCE(council_district, ''),
	COALESCE(census_tract, ''), COALESCE(bin, ''), COALESCE(bbl, ''), COALESCE(nta, '')`

// Repo implements Repository against PostgreSQL.
type Repo struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// New creates a postgres-backed inspection repository. Every query runs
// under the configured timeout; this is the only blocking step of a search
// request.
func New(pool *pgxpool.Pool, queryTimeout time.Duration) *Repo {
	return &Repo{pool: pool, queryTimeout: queryTimeout}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// buildSearchQuery composes the parameterized search statement. Absent
// filters add no clause; every present value is bound as a parameter.
func buildSearchQuery(params SearchParams) (string, []interface{}) {
	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if params.Borough != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("UPPER(boro) = UPPER($%d)", argIdx))
		args = append(args, *params.Borough)
		argIdx++
	}
	if params.Cuisine != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("cuisine_description ILIKE $%d", argIdx))
		args = append(args, "%"+*params.Cuisine+"%")
		argIdx++
	}
	if params.MinGrade != nil {
		// Ungraded records always pass: no grade is not a failing grade.
		whereClauses = append(whereClauses, fmt.Sprintf("(grade IS NULL OR grade <= $%d)", argIdx))
		args = append(args, *params.MinGrade)
		argIdx++
	}

	query := "SELECT " + inspectionColumns + " FROM nyc_restaurant_inspections"
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY dba, inspection_date DESC LIMIT $%d", argIdx)
	args = append(args, params.Limit)

	return query, args
}

// Search returns inspections matching the composed filters.
func (r *Repo) Search(ctx context.Context, params SearchParams) ([]Inspection, error) {
	query, args := buildSearchQuery(params)
	return r.queryInspections(ctx, "search restaurants", query, args...)
}

// FindByName returns the inspection history of one restaurant, newest first.
func (r *Repo) FindByName(ctx context.Context, name string, borough *string) ([]Inspection, error) {
	query := "SELECT " + inspectionColumns + ` FROM nyc_restaurant_inspections
		WHERE UPPER(dba) = UPPER($1) AND ($2::text IS NULL OR UPPER(boro) = UPPER($2))
		ORDER BY inspection_date DESC`
	return r.queryInspections(ctx, "find restaurant by name", query, name, borough)
}

// DistinctBoroughs lists all non-null boroughs, sorted.
func (r *Repo) DistinctBoroughs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT boro FROM nyc_restaurant_inspections WHERE boro IS NOT NULL ORDER BY boro`
	return r.queryStrings(ctx, "distinct boroughs", query)
}

// DistinctCuisines lists all non-null cuisine descriptions, sorted.
func (r *Repo) DistinctCuisines(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT cuisine_description FROM nyc_restaurant_inspections
		WHERE cuisine_description IS NOT NULL ORDER BY cuisine_description`
	return r.queryStrings(ctx, "distinct cuisines", query)
}

func (r *Repo) queryInspections(ctx context.Context, op, query string, args ...interface{}) ([]Inspection, error) {
	qctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(qctx, query, args...)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	var inspections []Inspection
	for rows.Next() {
		var ins Inspection
		if err := rows.Scan(
			&ins.CAMIS, &ins.DBA, &ins.Borough, &ins.Building,
			&ins.Street, &ins.Zipcode, &ins.Phone,
			&ins.CuisineDescription, &ins.InspectionDate, &ins.Action,
			&ins.ViolationCode, &ins.ViolationDescription,
			&ins.CriticalFlag, &ins.Score, &ins.Grade, &ins.GradeDate, &ins.RecordDate,
			&ins.InspectionType, &ins.Latitude, &ins.Longitude,
			&ins.CommunityBoard, &ins.CouncilDistrict,
			&ins.CensusTract, &ins.BIN, &ins.BBL, &ins.NTA,
		); err != nil {
			return nil, scanError(op, err)
		}
		inspections = append(inspections, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError(op, err)
	}

	return inspections, nil
}

func (r *Repo) queryStrings(ctx context.Context, op, query string) ([]string, error) {
	qctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(qctx, query)
	if err != nil {
		return nil, storeError(op, err)
	}
	defer rows.Close()

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, storeError(op, err)
	}
	return values, nil
}

// storeError classifies a failure to reach the store so the HTTP boundary
// can pick a status code. Timeouts and connectivity failures are
// distinguishable from each other and from validation errors; neither is
// retried here.
func storeError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.KindTimeout, "record store query timed out", err).WithOp(op)
	}
	return apperr.Wrap(apperr.KindUnavailable, "record store unavailable", err).WithOp(op)
}

// scanError classifies a row that could not be decoded. The store answered,
// so this is a data problem on our side, not an outage.
func scanError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.KindTimeout, "record store query timed out", err).WithOp(op)
	}
	return apperr.Wrap(apperr.KindInternal, "malformed inspection record", err).WithOp(op)
}
