package handler

import (
	"net/http"

	"itinero-server/internal/domain"
)

// listDestinations handles GET /destinations.
// An optional ?sort= key (price_asc, price_desc, rating_desc) orders the
// result; without it the list is store order.
func (s *Server) listDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := s.destinations.List(r.Context(), r.URL.Query().Get("sort"))
	if err != nil {
		writeDomainError(w, err, "destinations not found")
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// searchDestinations handles GET /destinations/search?q=.
func (s *Server) searchDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := s.destinations.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeDomainError(w, err, "destinations not found")
		return
	}
	if ds == nil {
		ds = []domain.Destination{} // empty JSON array, not null
	}
	writeJSON(w, http.StatusOK, ds)
}

// getDestination handles GET /destinations/{id}.
func (s *Server) getDestination(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid destination id")
		return
	}
	d, err := s.destinations.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "destination not found")
		return
	}
	writeJSON(w, http.StatusOK, d)
}
