package handler

import (
	"net/http"

	"itinero-server/internal/domain"
)

// tripPayload is the request body for POST /trips: a trip minus the
// store-assigned id and createdAt.
type tripPayload struct {
	UserID      *int             `json:"userId"`
	Name        string           `json:"name"`
	StartDate   string           `json:"startDate"`
	EndDate     string           `json:"endDate"`
	Destination string           `json:"destination"`
	Travelers   int              `json:"travelers"`
	Itinerary   []domain.DayPlan `json:"itinerary"`
}

// createTrip handles POST /trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var body tripPayload
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid trip data: malformed JSON body")
		return
	}

	created, err := s.trips.Create(r.Context(), domain.Trip{
		UserID:      body.UserID,
		Name:        body.Name,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Destination: body.Destination,
		Travelers:   body.Travelers,
		Itinerary:   body.Itinerary,
	})
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listTrips handles GET /trips.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "trips not found")
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	writeJSON(w, http.StatusOK, trips)
}

// getTrip handles GET /trips/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// updateTrip handles PUT /trips/{id}. The body is a partial payload: absent
// fields are left untouched, and the itinerary — when present — replaces the
// stored one wholesale.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	var u domain.TripUpdate
	if err := decodeJSON(r, &u); err != nil {
		writeBadRequest(w, "invalid trip data: malformed JSON body")
		return
	}

	updated, err := s.trips.Update(r.Context(), id, u)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// deleteTrip handles DELETE /trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
