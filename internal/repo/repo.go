// Package repo defines the persistence contracts for the Itinero API.
// Each entity kind has its own interface; implementations live in the
// memory and sqlite subpackages. The service layer depends on these
// interfaces, never on a concrete store, which keeps services unit-testable
// with hand-written mocks.
//
// The store enforces no relationships: DestinationID on activities and
// UserID on trips are advisory integer references only.
package repo

import (
	"context"

	"itinero-server/internal/domain"
)

// DestinationRepo defines the persistence operations for Destinations.
// Destinations are create-only: no update or delete exists in this system.
type DestinationRepo interface {
	// Create assigns the next id for the kind (starting at 1, strictly
	// increasing, never reused) and returns the stored record.
	Create(ctx context.Context, d domain.Destination) (domain.Destination, error)

	// GetByID returns domain.ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id int) (domain.Destination, error)

	// List returns all destinations. Order is insertion order for the
	// implementations in this repo, but callers must not rely on it.
	List(ctx context.Context) ([]domain.Destination, error)

	// Search returns destinations whose name, country, or any tag contains
	// query case-insensitively. Result order follows List.
	Search(ctx context.Context, query string) ([]domain.Destination, error)
}

// ActivityRepo defines the persistence operations for catalog Activities.
type ActivityRepo interface {
	Create(ctx context.Context, a domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, id int) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)

	// ListByDestination returns the activities whose DestinationID matches.
	ListByDestination(ctx context.Context, destinationID int) ([]domain.Activity, error)
}

// TripRepo defines the persistence operations for Trips — the one mutable
// entity kind in the system.
type TripRepo interface {
	// Create stores the trip, assigning its id and CreatedAt.
	Create(ctx context.Context, t domain.Trip) (domain.Trip, error)

	GetByID(ctx context.Context, id int) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)

	// Update shallow-merges the set fields of u over the stored trip and
	// returns the result. The itinerary is replaced wholesale when set.
	// Returns domain.ErrNotFound when the id is absent.
	Update(ctx context.Context, id int, u domain.TripUpdate) (domain.Trip, error)

	// Delete removes the trip. Returns domain.ErrNotFound when the id is
	// absent; the id is never reassigned afterwards.
	Delete(ctx context.Context, id int) error
}

// UserRepo defines the persistence operations for Users. Users exist only as
// weak-reference targets for trips; there is no HTTP surface over them.
type UserRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
}

// Store bundles the four entity repos so wiring code can pass one value.
type Store struct {
	Destinations DestinationRepo
	Activities   ActivityRepo
	Trips        TripRepo
	Users        UserRepo
}
