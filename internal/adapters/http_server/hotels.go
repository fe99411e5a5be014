package httpserver

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/domain"
)

// parseFilters reads structured search filters from the query string.
// Absent parameters impose no constraint.
func parseFilters(q url.Values) (domain.SearchFilters, map[string]string) {
	f := domain.SearchFilters{Stars: []int{}, PropertyTypes: []string{}, Amenities: []string{}}
	bad := map[string]string{}

	intParam := func(key string) *int {
		v := strings.TrimSpace(q.Get(key))
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			bad[key] = "must be a non-negative integer"
			return nil
		}
		return &n
	}
	f.MinPrice = intParam("minPrice")
	f.MaxPrice = intParam("maxPrice")

	for _, s := range splitList(q.Get("stars")) {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 5 {
			bad["stars"] = "must be integers between 1 and 5"
			break
		}
		f.Stars = append(f.Stars, n)
	}
	f.PropertyTypes = append(f.PropertyTypes, splitList(q.Get("types"))...)
	f.Amenities = append(f.Amenities, splitList(q.Get("amenities"))...)

	if v := strings.TrimSpace(q.Get("distance")); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 {
			bad["distance"] = "must be a non-negative number"
		} else {
			f.Distance = &d
		}
	}

	if len(bad) == 0 {
		bad = nil
	}
	return f, bad
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, bad := parseFilters(q)
	if bad != nil {
		writeProblemBody(w, problem{Type: "about:blank", Title: "Invalid Query", Status: http.StatusBadRequest, Errors: bad})
		return
	}

	hs, err := h.Q.Search(r.Context(), q.Get("location"), f, domain.ParseSortKey(q.Get("sort")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveSearch("structured", len(hs))
	writeJSON(w, http.StatusOK, resultsResponse{Count: len(hs), Hotels: hs})
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		writeError(w, r, err)
		return
	}
	writeCached(w, r, resp)
}

// getPrices answers an empty list for unknown hotels.
func (h *Handlers) getPrices(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Q.PriceOptions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, opts)
}

func (h *Handlers) suggest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Suggest(r.URL.Query().Get("q")))
}

func (h *Handlers) popular(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Destinations())
}
