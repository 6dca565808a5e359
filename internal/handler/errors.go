package handler

import (
	"errors"
	"net/http"
	"strings"

	"itinero-server/internal/domain"
)

// errorDetail is the body of every non-2xx response:
// a stable machine-readable code, a human-readable message, and — for
// validation failures — a map of field paths to messages.
type errorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  domain.FieldErrors `json:"fields,omitempty"`
}

// errorResponse wraps errorDetail in the {"error": ...} envelope.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeError writes a bare error envelope with no field map.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeDomainError maps a service error onto the HTTP taxonomy:
//
//	ErrNotFound        → 404 not_found
//	FieldErrors        → 400 validation_error with the field map
//	ErrValidation      → 400 validation_error
//	ErrDuplicateInDay  → 409 duplicate_in_day (soft business rejection)
//	ErrMinimumDays     → 409 minimum_days
//	anything else      → 500 internal_error
//
// notFoundMsg names what was being looked up, because the handler is the
// layer that knows.
func writeDomainError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", notFoundMsg)
	case errors.Is(err, domain.ErrDuplicateInDay):
		writeError(w, http.StatusConflict, "duplicate_in_day", "this activity is already in the itinerary for that day")
	case errors.Is(err, domain.ErrMinimumDays):
		writeError(w, http.StatusConflict, "minimum_days", "the itinerary must have at least one day")
	case errors.Is(err, domain.ErrValidation):
		var fe domain.FieldErrors
		if errors.As(err, &fe) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorDetail{
				Code:    "validation_error",
				Message: "invalid input",
				Fields:  fe,
			}})
			return
		}
		writeError(w, http.StatusBadRequest, "validation_error", validationMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// validationMessage extracts the human-readable part from a wrapped
// validation error, e.g.
// "service.TripService.MoveActivity: validation error: source position 5 out
// of range" → "source position 5 out of range".
func validationMessage(err error) string {
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// writeBadRequest reports a request rejected before reaching the service
// layer (malformed body, non-numeric id, bad query parameter).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "validation_error", message)
}
