package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotel_compare/internal/adapters/observability"
)

func (h *Handlers) createSession(w http.ResponseWriter, r *http.Request) {
	sid, p, err := h.S.Create(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/sessions/"+sid)
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: sid, Params: p})
}

func (h *Handlers) getSession(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	p, err := h.S.Get(r.Context(), sid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: sid, Params: p})
}

func (h *Handlers) patchSession(w http.ResponseWriter, r *http.Request) {
	var req patchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CheckIn != nil && req.CheckOut != nil && req.CheckOut.Before(*req.CheckIn) {
		writeProblem(w, http.StatusBadRequest, "Invalid Dates", "checkOut must not be before checkIn")
		return
	}

	sid := chi.URLParam(r, "sid")
	p, err := h.S.Update(r.Context(), sid, req.toDomain())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: sid, Params: p})
}

func (h *Handlers) resetSession(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	p, err := h.S.Reset(r.Context(), sid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: sid, Params: p})
}

func (h *Handlers) sessionResults(w http.ResponseWriter, r *http.Request) {
	p, err := h.S.Get(r.Context(), chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	hs, err := h.Q.SearchParams(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveSearch("structured", len(hs))
	writeJSON(w, http.StatusOK, resultsResponse{Params: &p, Count: len(hs), Hotels: hs})
}

func (h *Handlers) naturalSearch(w http.ResponseWriter, r *http.Request) {
	if h.N == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "natural language search is not configured")
		return
	}
	var req naturalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.N.Run(r.Context(), req.SessionID, req.Query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	observability.ObserveSearch("natural", len(res.Hotels))
	writeJSON(w, http.StatusOK, res)
}
