package domain

type Hotel struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Location           Place    `json:"location"`
	Images             []string `json:"images"`
	Stars              int      `json:"stars"` // 1..5
	Rating             Rating   `json:"rating"`
	Price              Price    `json:"price"`
	Amenities          []string `json:"amenities"`
	PropertyType       string   `json:"propertyType"`
	DistanceFromCenter float64  `json:"distanceFromCenter"` // km, >= 0
	Deals              *Deals   `json:"deals,omitempty"`
}

type Place struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	Coordinates Coords `json:"coordinates"`
}

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Rating struct {
	Score    float64 `json:"score"`
	Count    int     `json:"count"`
	Category string  `json:"category"`
}

// Price amounts are whole currency units. Current <= Base is a generation
// convention only and is not validated anywhere.
type Price struct {
	Base         int  `json:"base"`
	Current      int  `json:"current"`
	Discount     *int `json:"discount,omitempty"` // percent
	TaxesAndFees int  `json:"taxesAndFees"`
}

type Deals struct {
	FreeCancellation bool   `json:"freeCancellation"`
	PayAtStay        bool   `json:"payAtStay"`
	SpecialOffer     string `json:"specialOffer,omitempty"`
}

// HasAmenity reports whether the hotel lists the amenity label verbatim.
func (h Hotel) HasAmenity(a string) bool {
	for _, x := range h.Amenities {
		if x == a {
			return true
		}
	}
	return false
}

// Location is a destination suggestion, not a hotel address.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

type PriceOption struct {
	Provider         string `json:"provider"`
	Logo             string `json:"logo"`
	Price            int    `json:"price"`
	OriginalPrice    *int   `json:"originalPrice,omitempty"`
	IncludesTaxes    bool   `json:"includesTaxes"`
	FreeCancellation bool   `json:"freeCancellation"`
	PayAtStay        bool   `json:"payAtStay"`
	URL              string `json:"url"`
}
