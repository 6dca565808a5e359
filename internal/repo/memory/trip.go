package memory

import (
	"context"
	"time"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// tripRepo is the in-memory implementation of repo.TripRepo.
type tripRepo struct {
	s *Store
}

var _ repo.TripRepo = (*tripRepo)(nil)

func (r *tripRepo) Create(_ context.Context, t domain.Trip) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.tripSeq
	r.s.tripSeq++
	t.CreatedAt = time.Now().UTC()
	r.s.trips[t.ID] = cloneTrip(t)
	return t, nil
}

func (r *tripRepo) GetByID(_ context.Context, id int) (domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return cloneTrip(t), nil
}

func (r *tripRepo) List(_ context.Context) ([]domain.Trip, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Trip, 0, len(r.s.trips))
	for _, id := range sortedIDs(r.s.trips) {
		out = append(out, cloneTrip(r.s.trips[id]))
	}
	return out, nil
}

// Update shallow-merges u over the stored trip in one critical section —
// a single map write, never a partial one. CreatedAt is preserved.
func (r *tripRepo) Update(_ context.Context, id int, u domain.TripUpdate) (domain.Trip, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	t = u.Apply(t)
	r.s.trips[id] = cloneTrip(t)
	return cloneTrip(t), nil
}

func (r *tripRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.trips[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.trips, id)
	return nil
}

// cloneTrip deep-copies the itinerary so callers and the store never alias
// the same day or activity slices.
func cloneTrip(t domain.Trip) domain.Trip {
	if t.UserID != nil {
		uid := *t.UserID
		t.UserID = &uid
	}
	if t.Itinerary == nil {
		return t
	}
	days := make([]domain.DayPlan, len(t.Itinerary))
	for i, d := range t.Itinerary {
		if d.Activities != nil {
			d.Activities = append([]domain.ActivityEntry(nil), d.Activities...)
		}
		days[i] = d
	}
	t.Itinerary = days
	return t
}
