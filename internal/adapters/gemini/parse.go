package gemini

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hotel_compare/internal/domain"
)

func buildPrompt(text string) string {
	vocab := "'" + strings.Join(domain.IntentAmenities, "','") + "'"
	return "Extract the city, price, rating, and amenities from the following text: " + text + ". " +
		`Output should be a JSON (either you pass or fail) in the format - {"priceOperator": "greater", "price": 100, ` +
		`"ratingOperator": "greater", "rating": 5, "amenities": ["WiFi", "Restaurant"], "city": "indore"}, ` +
		"if you did not find any key then just show an empty string but should be a JSON and no other text " +
		"and in case of amenities an empty array, items in amenities can only contain these items : " + vocab + ". " +
		"In priceOperator and ratingOperator only 1 out of these 4 values can be returned : 'greater', 'lower', 'equal', ''."
}

// stripFences removes a surrounding ```json ... ``` block if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// ParseIntent reads the model's reply. The model is told to use "" for
// missing keys, so numbers may arrive as strings, empty strings or zero;
// zero and empty both mean "not given".
func ParseIntent(raw string) (domain.Intent, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(stripFences(raw)), &m); err != nil {
		return domain.Intent{}, fmt.Errorf("%w: %v", domain.ErrIntentUnparsed, err)
	}
	if m == nil {
		return domain.Intent{}, fmt.Errorf("%w: null reply", domain.ErrIntentUnparsed)
	}

	in := domain.Intent{
		City:           strings.TrimSpace(lookupStr(m, "city")),
		PriceOperator:  domain.ParseOperator(strings.ToLower(strings.TrimSpace(lookupStr(m, "priceOperator")))),
		RatingOperator: domain.ParseOperator(strings.ToLower(strings.TrimSpace(lookupStr(m, "ratingOperator")))),
		Amenities:      lookupStrings(m, "amenities"),
	}
	if p := getFloatFlexible(m, "price"); p != nil && *p > 0 {
		v := int(math.Round(*p))
		in.Price = &v
	}
	if r := getFloatFlexible(m, "rating"); r != nil && *r > 0 {
		v := *r
		in.Rating = &v
	}
	return in, nil
}

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return s
	}
	return ""
}

// lookupStrings keeps the non-empty strings of an array; anything else is
// an empty list.
func lookupStrings(m map[string]any, path string) []string {
	out := []string{}
	arr, ok := lookupAny(m, path).([]any)
	if !ok {
		return out
	}
	for _, v := range arr {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// getFloatFlexible: number from several paths (float64/int/string like "8,0").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			s = strings.TrimLeft(s, "$€£")
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}
