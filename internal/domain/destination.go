// Package domain contains the core data types for the Itinero travel planner.
// This package has zero external dependencies and is imported by every other
// internal package (itinerary, repo, service, handler).
package domain

// DateLayout is the calendar-date format used everywhere in the API.
// Dates carry no time component and no timezone.
const DateLayout = "2006-01-02"

// Destination is a browsable place in the catalog.
// Destinations are created at seed time (or via the store's create operation),
// never mutated, and never deleted.
type Destination struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`

	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	// Rating is a fixed-point 0.0–5.0 score scaled by 10, so 48 means 4.8.
	Rating int `json:"rating"`

	// Tags are display-ordered labels; order is significant for rendering only.
	Tags []string `json:"tags"`

	PricePerPerson int `json:"pricePerPerson"`

	// Type is an open categorical label ("Popular", "Trending", "Romantic", ...),
	// not a closed enum.
	Type string `json:"type"`
}
