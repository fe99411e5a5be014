package domain

type Operator string

const (
	OpNone    Operator = ""
	OpGreater Operator = "greater"
	OpLower   Operator = "lower"
	OpEqual   Operator = "equal"
)

// ParseOperator returns OpNone for anything outside the four known values.
func ParseOperator(s string) Operator {
	switch Operator(s) {
	case OpGreater, OpLower, OpEqual:
		return Operator(s)
	}
	return OpNone
}

// Intent is what the language model pulled out of a free-text query.
// Missing values stay at their zero value (nil pointers, empty strings).
type Intent struct {
	City           string   `json:"city"`
	Price          *int     `json:"price,omitempty"`
	PriceOperator  Operator `json:"priceOperator"`
	Rating         *float64 `json:"rating,omitempty"`
	RatingOperator Operator `json:"ratingOperator"`
	Amenities      []string `json:"amenities"`
}

// IntentAmenities is the vocabulary the extraction prompt restricts the model to.
var IntentAmenities = []string{"WiFi", "Gym", "Spa", "Parking", "Restaurant", "Bar"}
