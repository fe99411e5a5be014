package catalog

import "hotel_compare/internal/domain"

const pexels = "https://images.pexels.com/photos/"

func img(id string) string {
	return pexels + id + "/pexels-photo-" + id + ".jpeg?auto=compress&cs=tinysrgb&w=800"
}

func pint(i int) *int { return &i }

var destinations = []domain.Location{
	{ID: "new-york", Name: "New York", Country: "United States", Image: img("2224861"), Description: "Experience the energy of the Big Apple"},
	{ID: "paris", Name: "Paris", Country: "France", Image: img("532826"), Description: "The City of Light awaits"},
	{ID: "tokyo", Name: "Tokyo", Country: "Japan", Image: img("2506923"), Description: "Discover the blend of tradition and innovation"},
	{ID: "london", Name: "London", Country: "United Kingdom", Image: img("672532"), Description: "History meets modern culture"},
	{ID: "rome", Name: "Rome", Country: "Italy", Image: img("532263"), Description: "Ancient wonders and Italian charm"},
	{ID: "barcelona", Name: "Barcelona", Country: "Spain", Image: img("1388030"), Description: "Beaches, architecture, and vibrant culture"},
}

// Seed returns a fresh copy of the hand-written hotels the catalog grows from.
func Seed() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:          "hotel-1",
			Name:        "Grand Plaza Hotel",
			Description: "Luxury hotel in the heart of the city with panoramic views and world-class amenities. Featuring spacious rooms, fine dining restaurants, a spa, and fitness center.",
			Location: domain.Place{
				City:        "New York",
				Country:     "United States",
				Address:     "123 Broadway Ave, New York, NY 10001",
				Coordinates: domain.Coords{Latitude: 40.7128, Longitude: -74.006},
			},
			Images:             []string{img("258154"), img("271624"), img("1457842")},
			Stars:              5,
			Rating:             domain.Rating{Score: 9.2, Count: 2453, Category: "Excellent"},
			Price:              domain.Price{Base: 350, Current: 305, Discount: pint(15), TaxesAndFees: 45},
			Amenities:          []string{"Free WiFi", "Pool", "Spa", "Fitness Center", "Restaurant", "Room Service", "Parking", "Bar"},
			PropertyType:       "Hotel",
			DistanceFromCenter: 0.8,
			Deals:              &domain.Deals{FreeCancellation: true, PayAtStay: true, SpecialOffer: "15% off for early booking"},
		},
		{
			ID:          "hotel-2",
			Name:        "Urban Loft Suites",
			Description: "Modern suites in a trendy neighborhood with fully equipped kitchens and stylish decor. Perfect for extended stays with home-like comforts.",
			Location: domain.Place{
				City:        "New York",
				Country:     "United States",
				Address:     "456 SoHo Street, New York, NY 10012",
				Coordinates: domain.Coords{Latitude: 40.7234, Longitude: -73.9982},
			},
			Images:             []string{img("1579253"), img("1643383"), img("276724")},
			Stars:              4,
			Rating:             domain.Rating{Score: 8.9, Count: 1876, Category: "Very Good"},
			Price:              domain.Price{Base: 250, Current: 225, Discount: pint(10), TaxesAndFees: 35},
			Amenities:          []string{"Free WiFi", "Kitchen", "Laundry", "Air Conditioning", "Workspace", "TV"},
			PropertyType:       "Apartment",
			DistanceFromCenter: 1.5,
			Deals:              &domain.Deals{FreeCancellation: true},
		},
		{
			ID:          "hotel-3",
			Name:        "Seaside Resort & Spa",
			Description: "Beachfront resort with stunning ocean views, multiple pools, and a full-service spa. Offering water sports, beachside dining, and spacious balconies.",
			Location: domain.Place{
				City:        "Miami",
				Country:     "United States",
				Address:     "789 Ocean Drive, Miami Beach, FL 33139",
				Coordinates: domain.Coords{Latitude: 25.7617, Longitude: -80.1918},
			},
			Images:             []string{img("261102"), img("189296"), img("260922")},
			Stars:              5,
			Rating:             domain.Rating{Score: 9.5, Count: 3217, Category: "Exceptional"},
			Price:              domain.Price{Base: 425, Current: 340, Discount: pint(20), TaxesAndFees: 55},
			Amenities:          []string{"Beach Access", "Free WiFi", "Multiple Pools", "Spa", "Restaurant", "Bar", "Water Sports", "Gym"},
			PropertyType:       "Resort",
			DistanceFromCenter: 3.2,
			Deals:              &domain.Deals{FreeCancellation: true, PayAtStay: true, SpecialOffer: "Includes breakfast and spa credit"},
		},
		{
			ID:          "hotel-4",
			Name:        "Downtown Business Hotel",
			Description: "Professional hotel catering to business travelers with meeting facilities, high-speed internet, and convenient location near corporate centers.",
			Location: domain.Place{
				City:        "Chicago",
				Country:     "United States",
				Address:     "321 Michigan Ave, Chicago, IL 60601",
				Coordinates: domain.Coords{Latitude: 41.8781, Longitude: -87.6298},
			},
			Images:             []string{img("172872"), img("260928"), img("164595")},
			Stars:              4,
			Rating:             domain.Rating{Score: 8.7, Count: 2108, Category: "Very Good"},
			Price:              domain.Price{Base: 280, Current: 280, TaxesAndFees: 40},
			Amenities:          []string{"Free WiFi", "Business Center", "Meeting Rooms", "Restaurant", "Gym", "Parking", "Room Service"},
			PropertyType:       "Hotel",
			DistanceFromCenter: 0.5,
		},
		{
			ID:          "hotel-5",
			Name:        "Historic Boutique Inn",
			Description: "Charming inn in a restored historic building with unique rooms and personalized service. Located in a picturesque neighborhood with character and history.",
			Location: domain.Place{
				City:        "Boston",
				Country:     "United States",
				Address:     "45 Beacon Hill, Boston, MA 02108",
				Coordinates: domain.Coords{Latitude: 42.3601, Longitude: -71.0589},
			},
			Images:             []string{img("941861"), img("271643"), img("210604")},
			Stars:              4,
			Rating:             domain.Rating{Score: 9.3, Count: 1538, Category: "Excellent"},
			Price:              domain.Price{Base: 320, Current: 288, Discount: pint(10), TaxesAndFees: 42},
			Amenities:          []string{"Free WiFi", "Breakfast Included", "Garden", "Lounge", "Concierge", "Library"},
			PropertyType:       "Inn",
			DistanceFromCenter: 1.2,
			Deals:              &domain.Deals{FreeCancellation: true, PayAtStay: true},
		},
	}
}
