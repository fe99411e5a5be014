package httpserver

import (
	"time"

	"hotel_compare/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type naturalRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	Query     string `json:"query" validate:"required,max=500"`
}

type guestsDTO struct {
	Adults   int `json:"adults" validate:"min=1,max=30"`
	Children int `json:"children" validate:"min=0,max=30"`
	Rooms    int `json:"rooms" validate:"min=1,max=30"`
}

type filtersPatchDTO struct {
	MinPrice      *int     `json:"minPrice" validate:"omitempty,min=0"`
	MaxPrice      *int     `json:"maxPrice" validate:"omitempty,min=0"`
	ClearPrice    bool     `json:"clearPrice"`
	Stars         []int    `json:"stars" validate:"omitempty,dive,min=1,max=5"`
	PropertyTypes []string `json:"propertyTypes" validate:"omitempty,dive,required"`
	Amenities     []string `json:"amenities" validate:"omitempty,dive,required"`
	Distance      *float64 `json:"distance" validate:"omitempty,min=0"`
	ClearDistance bool     `json:"clearDistance"`
}

// patchRequest is the PATCH body for a session. Absent fields are kept; for
// lists, [] clears and a missing key keeps.
type patchRequest struct {
	Location *string          `json:"location" validate:"omitempty,max=100"`
	CheckIn  *time.Time       `json:"checkIn"`
	CheckOut *time.Time       `json:"checkOut"`
	Guests   *guestsDTO       `json:"guests"`
	Filters  *filtersPatchDTO `json:"filters"`
	SortBy   *string          `json:"sortBy"`
}

func (p patchRequest) toDomain() domain.ParamsPatch {
	out := domain.ParamsPatch{
		Location: p.Location,
		CheckIn:  p.CheckIn,
		CheckOut: p.CheckOut,
	}
	if p.Guests != nil {
		out.Guests = &domain.Guests{Adults: p.Guests.Adults, Children: p.Guests.Children, Rooms: p.Guests.Rooms}
	}
	if f := p.Filters; f != nil {
		out.Filters = &domain.FiltersPatch{
			MinPrice:      f.MinPrice,
			MaxPrice:      f.MaxPrice,
			ClearPrice:    f.ClearPrice,
			Stars:         f.Stars,
			PropertyTypes: f.PropertyTypes,
			Amenities:     f.Amenities,
			Distance:      f.Distance,
			ClearDistance: f.ClearDistance,
		}
	}
	if p.SortBy != nil {
		k := domain.ParseSortKey(*p.SortBy)
		out.SortBy = &k
	}
	return out
}

type sessionResponse struct {
	SessionID string              `json:"sessionId"`
	Params    domain.SearchParams `json:"params"`
}

type resultsResponse struct {
	Params *domain.SearchParams `json:"params,omitempty"`
	Count  int                  `json:"count"`
	Hotels []domain.Hotel       `json:"hotels"`
}
