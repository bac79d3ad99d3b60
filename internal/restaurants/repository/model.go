package repository

import "time"

// Inspection is one row of the flat inspection record store: a single
// inspection-violation record keyed by establishment, inspection date, and
// violation code. Read-only from the search core's perspective.
type Inspection struct {
	CAMIS                string
	DBA                  string
	Borough              string
	Building             string
	Street               string
	Zipcode              string
	Phone                string
	CuisineDescription   string
	InspectionDate       time.Time
	Action               string
	ViolationCode        string
	ViolationDescription string
	CriticalFlag         string
	Score                *float64
	Grade                *string
	GradeDate            *time.Time
	RecordDate           *time.Time
	InspectionType       string
	Latitude             *float64
	Longitude            *float64
	CommunityBoard       string
	CouncilDistrict      string
	CensusTract          string
	BIN                  string
	BBL                  string
	NTA                  string
}
