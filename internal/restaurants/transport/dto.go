package transport

// SearchRequest carries raw search filters from the client. Every field is
// optional; pointers distinguish an omitted field from an empty one. The
// authoritative checks run in the validate package, after sanitization.
type SearchRequest struct {
	Borough  *string `json:"borough,omitempty"`
	Cuisine  *string `json:"cuisine,omitempty"`
	MinGrade *string `json:"minGrade,omitempty"`
	Limit    *int    `json:"limit,omitempty"`
}

// DetailsRequest asks for one restaurant's inspection history.
type DetailsRequest struct {
	RestaurantName *string `json:"restaurantName" validate:"required"`
	Borough        *string `json:"borough,omitempty"`
}

// InspectionRecord is the outward projection of a stored inspection.
// Timestamps are RFC 3339 strings; nullable facts stay pointers so a
// missing grade is visibly null, not an empty string.
type InspectionRecord struct {
	CAMIS                string   `json:"camis"`
	DBA                  string   `json:"dba"`
	Boro                 string   `json:"boro"`
	Building             string   `json:"building,omitempty"`
	Street               string   `json:"street,omitempty"`
	Zipcode              string   `json:"zipcode,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	CuisineDescription   string   `json:"cuisineDescription"`
	InspectionDate       string   `json:"inspectionDate"`
	Action               string   `json:"action,omitempty"`
	ViolationCode        string   `json:"violationCode,omitempty"`
	ViolationDescription string   `json:"violationDescription,omitempty"`
	CriticalFlag         string   `json:"criticalFlag,omitempty"`
	Score                *float64 `json:"score,omitempty"`
	Grade                *string  `json:"grade,omitempty"`
	GradeDate            *string  `json:"gradeDate,omitempty"`
	RecordDate           *string  `json:"recordDate,omitempty"`
	InspectionType       string   `json:"inspectionType,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	CommunityBoard       string   `json:"communityBoard,omitempty"`
	CouncilDistrict      string   `json:"councilDistrict,omitempty"`
	CensusTract          string   `json:"censusTract,omitempty"`
	BIN                  string   `json:"bin,omitempty"`
	BBL                  string   `json:"bbl,omitempty"`
	NTA                  string   `json:"nta,omitempty"`
}

// SearchResponse is the result of a restaurant search.
type SearchResponse struct {
	Restaurants []InspectionRecord `json:"restaurants"`
	Count       int                `json:"count"`
	Message     string             `json:"message"`
}

// DetailsResponse is one restaurant's inspection history.
type DetailsResponse struct {
	RestaurantName  string             `json:"restaurantName"`
	Inspections     []InspectionRecord `json:"inspections"`
	InspectionCount int                `json:"inspectionCount"`
	Message         string             `json:"message"`
}

// MetadataResponse lists the distinct filter values for UI dropdowns.
type MetadataResponse struct {
	Boroughs []string `json:"boroughs"`
	Cuisines []string `json:"cuisines"`
}
