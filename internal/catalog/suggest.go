package catalog

import (
	"strings"

	"hotel_compare/internal/domain"
)

// Suggest returns the destinations whose name or country contains query,
// case-insensitively, in declaration order. A blank query matches nothing.
func Suggest(query string) []domain.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []domain.Location{}
	if q == "" {
		return out
	}
	for _, l := range destinations {
		if strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.Country), q) {
			out = append(out, l)
		}
	}
	return out
}

// Destinations is the fixed list of popular destinations.
func Destinations() []domain.Location {
	return append([]domain.Location(nil), destinations...)
}
