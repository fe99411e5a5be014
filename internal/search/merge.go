package search

import "hotel_compare/internal/domain"

// ApplyParams returns p with the fields carried by patch replaced. Neither
// argument is modified.
func ApplyParams(p domain.SearchParams, patch domain.ParamsPatch) domain.SearchParams {
	out := p
	out.Filters = copyFilters(p.Filters)
	if p.Guests != nil {
		g := *p.Guests
		out.Guests = &g
	}

	if patch.Location != nil {
		out.Location = *patch.Location
	}
	if patch.CheckIn != nil {
		t := *patch.CheckIn
		out.CheckIn = &t
	}
	if patch.CheckOut != nil {
		t := *patch.CheckOut
		out.CheckOut = &t
	}
	if patch.Guests != nil {
		g := *patch.Guests
		out.Guests = &g
	}
	if patch.Filters != nil {
		out.Filters = ApplyFilters(out.Filters, *patch.Filters)
	}
	if patch.SortBy != nil {
		out.SortBy = domain.ParseSortKey(string(*patch.SortBy))
	}
	return out
}

// ApplyFilters merges a filters patch. ClearPrice and ClearDistance drop the
// existing bounds before any new bound is applied.
func ApplyFilters(f domain.SearchFilters, patch domain.FiltersPatch) domain.SearchFilters {
	out := copyFilters(f)

	if patch.ClearPrice {
		out.MinPrice, out.MaxPrice = nil, nil
	}
	if patch.MinPrice != nil {
		out.MinPrice = intp(*patch.MinPrice)
	}
	if patch.MaxPrice != nil {
		out.MaxPrice = intp(*patch.MaxPrice)
	}
	if patch.Stars != nil {
		out.Stars = append([]int{}, patch.Stars...)
	}
	if patch.PropertyTypes != nil {
		out.PropertyTypes = append([]string{}, patch.PropertyTypes...)
	}
	if patch.Amenities != nil {
		out.Amenities = append([]string{}, patch.Amenities...)
	}
	if patch.ClearDistance {
		out.Distance = nil
	}
	if patch.Distance != nil {
		d := *patch.Distance
		out.Distance = &d
	}
	return out
}

func copyFilters(f domain.SearchFilters) domain.SearchFilters {
	out := domain.SearchFilters{
		Stars:         append([]int{}, f.Stars...),
		PropertyTypes: append([]string{}, f.PropertyTypes...),
		Amenities:     append([]string{}, f.Amenities...),
	}
	if f.MinPrice != nil {
		out.MinPrice = intp(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		out.MaxPrice = intp(*f.MaxPrice)
	}
	if f.Distance != nil {
		d := *f.Distance
		out.Distance = &d
	}
	return out
}

func intp(i int) *int { return &i }
