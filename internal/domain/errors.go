package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the store.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrDuplicateInDay is returned when a catalog activity is placed into a day
// that already contains an entry with the same activity id. The operation is
// rejected before any mutation; the UI treats this as a warning, not a fault.
// Handlers should map this to HTTP 409.
var ErrDuplicateInDay = errors.New("activity already in day")

// ErrMinimumDays is returned when removing a day would leave the itinerary
// empty. A trip must retain at least one day at all times.
// Handlers should map this to HTTP 409.
var ErrMinimumDays = errors.New("itinerary must keep at least one day")

// FieldErrors reports validation failures keyed by field name, so the API can
// return structured field-level errors alongside the 400 status.
// Nested itinerary fields use dotted paths, e.g. "itinerary[0].activities[1].startTime".
type FieldErrors map[string]string

// Error joins the field messages in a stable order.
func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(fe))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(fe, ErrValidation) hold for any FieldErrors value.
func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}
