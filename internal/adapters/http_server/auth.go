package httpserver

import "net/http"

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	if h.A == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "authentication is not configured")
		return
	}
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.A.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handlers) signup(w http.ResponseWriter, r *http.Request) {
	if h.A == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Unavailable", "authentication is not configured")
		return
	}
	var req signupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u, err := h.A.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if h.A == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.A.Logout(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
