package handler

import (
	"net/http"
	"strconv"

	"itinero-server/internal/domain"
)

// listActivities handles GET /activities.
// Optional query parameters: destinationId scopes the catalog, q is a
// case-insensitive substring over name-or-description, and category is an
// exact match ("all" or empty means any). q and category combine as a
// conjunction.
func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.ActivityFilter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
	}
	if raw := q.Get("destinationId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "invalid destination id")
			return
		}
		f.DestinationID = &id
	}

	acts, err := s.activities.List(r.Context(), f)
	if err != nil {
		writeDomainError(w, err, "activities not found")
		return
	}
	if acts == nil {
		acts = []domain.Activity{}
	}
	writeJSON(w, http.StatusOK, acts)
}

// getActivity handles GET /activities/{id}.
func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid activity id")
		return
	}
	a, err := s.activities.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}
