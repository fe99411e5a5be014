package gemini_test

import (
	"errors"
	"testing"

	"hotel_compare/internal/adapters/gemini"
	"hotel_compare/internal/domain"
)

func TestParseIntent(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		city   string
		price  int // 0 = nil
		rating float64
		op     domain.Operator
		amen   int
	}{
		{"plain", `{"city":"Rome","price":150,"priceOperator":"greater","rating":4,"ratingOperator":"greater","amenities":["Gym","Bar"]}`, "Rome", 150, 4, domain.OpGreater, 2},
		{"empty strings", `{"city":"","price":"","priceOperator":"","rating":"","ratingOperator":"","amenities":[]}`, "", 0, 0, domain.OpNone, 0},
		{"string numbers", "```json\n{\"price\":\"$199.6\",\"priceOperator\":\"LOWER\",\"rating\":\"4,5\"}\n```", "", 200, 4.5, domain.OpLower, 0},
		{"unknown operator", `{"price":100,"priceOperator":"about","amenities":"WiFi"}`, "", 100, 0, domain.OpNone, 0},
		{"zero price", `{"price":0,"amenities":["", "Spa", 3]}`, "", 0, 0, domain.OpNone, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in, err := gemini.ParseIntent(c.raw)
			if err != nil {
				t.Fatalf("err: %v", err)
			}
			if in.City != c.city {
				t.Fatalf("city %q", in.City)
			}
			if (c.price == 0) != (in.Price == nil) || (in.Price != nil && *in.Price != c.price) {
				t.Fatalf("price %v", in.Price)
			}
			if (c.rating == 0) != (in.Rating == nil) || (in.Rating != nil && *in.Rating != c.rating) {
				t.Fatalf("rating %v", in.Rating)
			}
			if in.PriceOperator != c.op {
				t.Fatalf("operator %q", in.PriceOperator)
			}
			if len(in.Amenities) != c.amen {
				t.Fatalf("amenities %v", in.Amenities)
			}
		})
	}
}

func TestParseIntent_Invalid(t *testing.T) {
	for _, raw := range []string{"", "not json", "[1,2]", "null", "```\nnope\n```"} {
		if _, err := gemini.ParseIntent(raw); !errors.Is(err, domain.ErrIntentUnparsed) {
			t.Fatalf("%q: expected ErrIntentUnparsed, got %v", raw, err)
		}
	}
}
