// Package handler implements the HTTP handlers for the Itinero API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (destination.go, trip.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"itinero-server/internal/domain"
)

// DestinationServicer defines the catalog operations the handlers depend on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the store or service layer.
type DestinationServicer interface {
	List(ctx context.Context, sortKey string) ([]domain.Destination, error)
	GetByID(ctx context.Context, id int) (domain.Destination, error)
	Search(ctx context.Context, query string) ([]domain.Destination, error)
}

// ActivityServicer defines the activity-catalog operations the handlers depend on.
type ActivityServicer interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
	GetByID(ctx context.Context, id int) (domain.Activity, error)
}

// TripServicer defines the trip and itinerary operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, id int, u domain.TripUpdate) (domain.Trip, error)
	Delete(ctx context.Context, id int) error

	AddDay(ctx context.Context, id int) (domain.Trip, error)
	RemoveDay(ctx context.Context, id, day int) (domain.Trip, error)
	InsertActivity(ctx context.Context, id, day, activityID, pos int) (domain.Trip, error)
	MoveActivity(ctx context.Context, id, fromDay, fromIndex, toDay, toIndex int) (domain.Trip, error)
	RemoveActivity(ctx context.Context, id, day, index int) (domain.Trip, error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the service dependencies for all API endpoints.
// Wire it in main.go via Routes().
type Server struct {
	destinations DestinationServicer
	activities   ActivityServicer
	trips        TripServicer
	export       ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(destinations DestinationServicer, activities ActivityServicer, trips TripServicer, export ExportServicer) *Server {
	return &Server{
		destinations: destinations,
		activities:   activities,
		trips:        trips,
		export:       export,
	}
}

// Routes builds the chi router for the full REST surface.
// Literal routes like /destinations/search take precedence over /{id} in chi,
// so registration order is not load-bearing.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.listDestinations)
		r.Get("/search", s.searchDestinations)
		r.Get("/{id}", s.getDestination)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", s.listActivities)
		r.Get("/{id}", s.getActivity)
	})

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.listTrips)
		r.Post("/", s.createTrip)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Put("/", s.updateTrip)
			r.Delete("/", s.deleteTrip)

			r.Post("/days", s.addDay)
			r.Delete("/days/{day}", s.removeDay)
			r.Post("/days/{day}/activities", s.insertActivity)
			r.Delete("/days/{day}/activities/{index}", s.removeActivityEntry)
			r.Post("/itinerary/move", s.moveActivity)
		})
	})

	r.Get("/export", s.handleExport)

	return r
}

// writeJSON encodes v with the given status. Encoding failures after the
// header is written can only be logged by the middleware layer.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pathInt parses the named chi URL parameter as an integer.
// Non-numeric values are the caller's cue to respond 400.
func pathInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}
