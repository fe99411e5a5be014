// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel_compare/internal/adapters/observability"
	"hotel_compare/internal/app"
	"hotel_compare/internal/domain"
)

// Handlers groups the application services behind the HTTP API. N and A may
// be nil when their upstream is not configured; those routes answer 503.
type Handlers struct {
	Q *app.QueryService
	S *app.SessionService
	N *app.NaturalSearch
	A *app.AuthService
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// unparsedMessage is shown when the language model reply could not be read.
const unparsedMessage = "Could not understand your query. Try a different phrase."

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Get("/v1/hotels", h.searchHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/hotels/{id}/prices", h.getPrices)

	s.mux.Get("/v1/locations/suggest", h.suggest)
	s.mux.Get("/v1/locations/popular", h.popular)

	s.mux.Post("/v1/sessions", h.createSession)
	s.mux.Get("/v1/sessions/{sid}", h.getSession)
	s.mux.Patch("/v1/sessions/{sid}", h.patchSession)
	s.mux.Delete("/v1/sessions/{sid}/filters", h.resetSession)
	s.mux.Get("/v1/sessions/{sid}/results", h.sessionResults)

	s.mux.Post("/v1/search/natural", h.naturalSearch)

	s.mux.Post("/v1/auth/login", h.login)
	s.mux.Post("/v1/auth/signup", h.signup)
	s.mux.Post("/v1/auth/logout", h.logout)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses. Upstream messages
// are passed through unchanged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var up *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "resource not found")
	case errors.Is(err, domain.ErrIntentUnparsed):
		writeProblem(w, http.StatusUnprocessableEntity, "Unprocessable Query", unparsedMessage)
	case errors.As(err, &up):
		log.Error().Str("service", up.Service).Int("upstream_status", up.Status).Str("path", r.URL.Path).Msg(up.Message)
		writeProblem(w, http.StatusBadGateway, "Upstream Error", up.Message)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeProblem(w, http.StatusServiceUnavailable, "Request Cancelled", err.Error())
	default:
		log.Error().Err(err).Str("error_type", observability.LabelErr(err)).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "unexpected error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeCached answers with a weak ETag and honors If-None-Match.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// decodeBody reads a JSON body into dst and validates it. It writes the
// problem response itself and reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return false
	}
	if fields := validateStruct(dst); fields != nil {
		writeProblemBody(w, problem{
			Type:   "about:blank",
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Errors: fields,
		})
		return false
	}
	return true
}
