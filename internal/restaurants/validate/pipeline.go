package validate

// SearchInput carries the raw, untrusted search fields from the HTTP
// boundary. Nil means the client omitted the field.
type SearchInput struct {
	Borough  *string
	Cuisine  *string
	MinGrade *string
	Limit    *int
}

// SearchCriteria is the normalized, injection-clean result of validating a
// SearchInput. A nil field is absent and adds no filter. Criteria live for
// one request only.
type SearchCriteria struct {
	Borough  *string
	Cuisine  *string
	MinGrade *string
	Limit    int
}

// Search validates every search field in turn and aggregates the result.
// Validation is all-or-nothing: the first rejected field fails the whole
// request and no criteria are produced.
func Search(in SearchInput) (SearchCriteria, *FieldError) {
	borough, ferr := Borough.Apply(in.Borough)
	if ferr != nil {
		return SearchCriteria{}, ferr
	}
	cuisine, ferr := Cuisine.Apply(in.Cuisine)
	if ferr != nil {
		return SearchCriteria{}, ferr
	}
	grade, ferr := Grade.Apply(in.MinGrade)
	if ferr != nil {
		return SearchCriteria{}, ferr
	}
	limit, ferr := Limit(in.Limit, MaxSearchLimit)
	if ferr != nil {
		return SearchCriteria{}, ferr
	}

	return SearchCriteria{
		Borough:  borough,
		Cuisine:  cuisine,
		MinGrade: grade,
		Limit:    limit,
	}, nil
}

// DetailsInput carries the raw fields of a restaurant details request.
type DetailsInput struct {
	RestaurantName *string
	Borough        *string
}

// DetailsCriteria is the validated details request: the restaurant name is
// mandatory, the borough filter optional.
type DetailsCriteria struct {
	RestaurantName string
	Borough        *string
}

// Details validates a details request. The restaurant name must survive
// validation as a present value.
func Details(in DetailsInput) (DetailsCriteria, *FieldError) {
	name, ferr := RestaurantName.Apply(in.RestaurantName)
	if ferr != nil {
		return DetailsCriteria{}, ferr
	}
	if name == nil {
		return DetailsCriteria{}, &FieldError{
			Field:   RestaurantName.Field,
			Reason:  ReasonRequired,
			Message: "restaurant name is required",
		}
	}

	borough, ferr := Borough.Apply(in.Borough)
	if ferr != nil {
		return DetailsCriteria{}, ferr
	}

	return DetailsCriteria{
		RestaurantName: *name,
		Borough:        borough,
	}, nil
}
