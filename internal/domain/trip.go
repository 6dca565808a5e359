package domain

import "time"

// Trip is the top-level aggregate: a named date range with a day-by-day
// itinerary. The itinerary length should track the inclusive span between
// StartDate and EndDate, but the system does not enforce that after creation —
// the two can drift, and only the itinerary operations maintain the end-date
// convention.
type Trip struct {
	ID int `json:"id"`

	// UserID is an optional weak reference to a User; nil for anonymous trips.
	UserID *int `json:"userId,omitempty"`

	Name string `json:"name"`

	// StartDate and EndDate are ISO calendar dates (DateLayout), no time part.
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	// Destination is a free-text label, not a structured reference.
	Destination string `json:"destination"`

	Travelers int `json:"travelers"`

	Itinerary []DayPlan `json:"itinerary"`

	// CreatedAt is assigned by the store once at creation and never updated.
	CreatedAt time.Time `json:"createdAt"`
}

// TripUpdate is a partial payload for updating a trip. Nil fields are left
// untouched; set fields overwrite. Itinerary is replaced wholesale, never
// deep-merged.
type TripUpdate struct {
	UserID      *int       `json:"userId"`
	Name        *string    `json:"name"`
	StartDate   *string    `json:"startDate"`
	EndDate     *string    `json:"endDate"`
	Destination *string    `json:"destination"`
	Travelers   *int       `json:"travelers"`
	Itinerary   *[]DayPlan `json:"itinerary"`
}

// Apply merges the set fields of u over t and returns the result.
func (u TripUpdate) Apply(t Trip) Trip {
	if u.UserID != nil {
		t.UserID = u.UserID
	}
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.StartDate != nil {
		t.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		t.EndDate = *u.EndDate
	}
	if u.Destination != nil {
		t.Destination = *u.Destination
	}
	if u.Travelers != nil {
		t.Travelers = *u.Travelers
	}
	if u.Itinerary != nil {
		t.Itinerary = *u.Itinerary
	}
	return t
}
