package models

// Customer is a billing subject. Area is a denormalized copy of an Area's
// name, not a foreign key; renaming an area rewrites these strings in place.
type Customer struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	NameHindi       string  `json:"nameHindi,omitempty"`
	Area            string  `json:"area"`
	Address         string  `json:"address"`
	Landmark        string  `json:"landmark"`
	LandmarkHindi   string  `json:"landmarkHindi,omitempty"`
	Mobile          string  `json:"mobile"`
	RateJar         float64 `json:"rateJar"`
	RateThermos     float64 `json:"rateThermos"`
	SecurityDeposit float64 `json:"securityDeposit"`
	OldDues         float64 `json:"oldDues"`
	StartDate       string  `json:"startDate"`
}

// Default per-unit rates pre-filled for a newly created customer.
const (
	DefaultRateJar     = 20.0
	DefaultRateThermos = 10.0
)
