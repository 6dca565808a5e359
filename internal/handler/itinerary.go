// Package handler — itinerary.go implements the server-side itinerary
// operations mounted under /trips/{id}. Each endpoint applies one atomic
// transform and returns the updated trip; a rejected operation (duplicate
// activity, last remaining day, out-of-range position) leaves the trip
// unchanged.
package handler

import "net/http"

// insertActivityRequest is the body for POST /trips/{id}/days/{day}/activities.
// Position is optional; omitted (or negative) appends to the day.
type insertActivityRequest struct {
	ActivityID int  `json:"activityId"`
	Position   *int `json:"position"`
}

// moveActivityRequest is the body for POST /trips/{id}/itinerary/move.
// Day numbers are 1-based; indexes are 0-based positions within the day.
type moveActivityRequest struct {
	FromDay   int `json:"fromDay"`
	FromIndex int `json:"fromIndex"`
	ToDay     int `json:"toDay"`
	ToIndex   int `json:"toIndex"`
}

// addDay handles POST /trips/{id}/days: appends an empty day and extends the
// trip's nominal end date by one calendar day.
func (s *Server) addDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	trip, err := s.trips.AddDay(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// removeDay handles DELETE /trips/{id}/days/{day}: removes the 1-based day
// and renumbers the rest. Removing the only day yields 409 minimum_days.
func (s *Server) removeDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	day, err := pathInt(r, "day")
	if err != nil {
		writeBadRequest(w, "invalid day number")
		return
	}
	trip, err := s.trips.RemoveDay(r.Context(), id, day)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// insertActivity handles POST /trips/{id}/days/{day}/activities: places a
// catalog activity into the day. A duplicate activity on that day yields
// 409 duplicate_in_day and no mutation.
func (s *Server) insertActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	day, err := pathInt(r, "day")
	if err != nil {
		writeBadRequest(w, "invalid day number")
		return
	}
	var body insertActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}
	if body.ActivityID < 1 {
		writeBadRequest(w, "activityId is required")
		return
	}
	pos := -1 // append
	if body.Position != nil {
		pos = *body.Position
	}

	trip, err := s.trips.InsertActivity(r.Context(), id, day, body.ActivityID, pos)
	if err != nil {
		writeDomainError(w, err, "trip or activity not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// moveActivity handles POST /trips/{id}/itinerary/move: relocates an entry
// within a day or between days. Cross-day moves apply the same
// duplicate-in-day rule as inserts.
func (s *Server) moveActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	var body moveActivityRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "malformed JSON body")
		return
	}

	trip, err := s.trips.MoveActivity(r.Context(), id, body.FromDay, body.FromIndex, body.ToDay, body.ToIndex)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// removeActivityEntry handles DELETE /trips/{id}/days/{day}/activities/{index}:
// removes the entry at the 0-based position within the day.
func (s *Server) removeActivityEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}
	day, err := pathInt(r, "day")
	if err != nil {
		writeBadRequest(w, "invalid day number")
		return
	}
	index, err := pathInt(r, "index")
	if err != nil {
		writeBadRequest(w, "invalid activity index")
		return
	}

	trip, err := s.trips.RemoveActivity(r.Context(), id, day, index)
	if err != nil {
		writeDomainError(w, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}
