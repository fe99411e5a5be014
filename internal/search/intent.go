package search

import (
	"math"

	"hotel_compare/internal/domain"
)

// IntentPatch turns an extracted intent into a params patch. The location is
// always replaced, so an intent without a city clears the previous one.
// A price without an operator is read as a budget ceiling.
func IntentPatch(in domain.Intent, amenities *AmenityMatcher) domain.ParamsPatch {
	city := in.City
	patch := domain.ParamsPatch{Location: &city}
	fp := domain.FiltersPatch{}
	touched := false

	if in.Price != nil {
		p := *in.Price
		fp.ClearPrice = true
		switch in.PriceOperator {
		case domain.OpGreater:
			fp.MinPrice = intp(p)
		case domain.OpEqual:
			fp.MinPrice, fp.MaxPrice = intp(p), intp(p)
		default:
			fp.MaxPrice = intp(p)
		}
		touched = true
	}

	if in.Rating != nil {
		fp.Stars = starsFor(*in.Rating, in.RatingOperator)
		touched = true
	}

	if len(in.Amenities) > 0 && amenities != nil {
		fp.Amenities = amenities.MatchAll(in.Amenities)
		touched = true
	}

	if touched {
		patch.Filters = &fp
	}
	return patch
}

// starsFor maps a rating bound onto the inclusive star set it describes.
func starsFor(r float64, op domain.Operator) []int {
	r = math.Max(1, math.Min(5, r))
	var out []int
	for s := 1; s <= 5; s++ {
		v := float64(s)
		switch op {
		case domain.OpGreater:
			if v >= r {
				out = append(out, s)
			}
		case domain.OpLower:
			if v <= r {
				out = append(out, s)
			}
		default:
			if v == math.Round(r) {
				out = append(out, s)
			}
		}
	}
	return out
}
