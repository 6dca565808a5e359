// Package memory implements the repo interfaces with process-lifetime maps.
// This is the canonical store for the application: four keyed collections,
// one monotonic id counter per kind, and a single RWMutex guarding them all.
//
// Every repo call is one critical section, so there are no partial writes.
// There is deliberately no cross-call concurrency control: two concurrent
// updates to the same trip overwrite each other last-write-wins. That is
// acceptable for the single-user scope and is documented in DESIGN.md as a
// known limitation, not a guarantee.
package memory

import (
	"sort"
	"sync"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// Store holds all four entity collections behind one mutex.
// Construct it with New and inject it explicitly — there is no package-level
// singleton.
type Store struct {
	mu sync.RWMutex

	destinations map[int]domain.Destination
	activities   map[int]domain.Activity
	trips        map[int]domain.Trip
	users        map[int]domain.User

	// Counters start at 1 and only ever increase; ids are never reused,
	// even after a delete.
	destinationSeq int
	activitySeq    int
	tripSeq        int
	userSeq        int
}

// New returns an empty Store. Seeding is a separate, explicit step.
func New() *Store {
	return &Store{
		destinations:   make(map[int]domain.Destination),
		activities:     make(map[int]domain.Activity),
		trips:          make(map[int]domain.Trip),
		users:          make(map[int]domain.User),
		destinationSeq: 1,
		activitySeq:    1,
		tripSeq:        1,
		userSeq:        1,
	}
}

// Repos returns the store wrapped in the repo.Store bundle used for wiring.
func (s *Store) Repos() repo.Store {
	return repo.Store{
		Destinations: &destinationRepo{s},
		Activities:   &activityRepo{s},
		Trips:        &tripRepo{s},
		Users:        &userRepo{s},
	}
}

// sortedIDs returns the keys of m in ascending order. Ids are assigned
// monotonically, so ascending id order reproduces insertion order — map
// iteration alone would shuffle results between calls.
func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
