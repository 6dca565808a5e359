package domain

// Activity is a catalog entry that can be placed into a trip's itinerary.
// DestinationID is a weak reference: relation only, no ownership, and no
// cascade because destinations are never deleted.
// Activities are create-only and immutable thereafter.
type Activity struct {
	ID            int    `json:"id"`
	DestinationID int    `json:"destinationId"`
	Name          string `json:"name"`
	Description   string `json:"description"`

	// Duration is free text like "2-3 hours"; it is never parsed.
	Duration string `json:"duration"`

	// Category is an open string label ("Sightseeing", "Food & Dining", ...).
	Category string `json:"category"`

	ImageURL string `json:"imageUrl,omitempty"`

	// Presentation hints for the catalog UI.
	Icon      string `json:"icon"`
	IconBg    string `json:"iconBg"`
	IconColor string `json:"iconColor"`
}

// ActivityFilter carries catalog filter values from the HTTP layer to the
// service. Zero values mean "no filter"; Query and Category combine as a
// conjunction.
type ActivityFilter struct {
	// DestinationID scopes the catalog to one destination when non-nil.
	DestinationID *int

	// Query matches case-insensitively as a substring of name or description.
	Query string

	// Category must match exactly; empty or "all" is a wildcard.
	Category string
}
