package memory

import (
	"context"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// activityRepo is the in-memory implementation of repo.ActivityRepo.
// Activities are flat value types, so no defensive copying is needed.
type activityRepo struct {
	s *Store
}

var _ repo.ActivityRepo = (*activityRepo)(nil)

func (r *activityRepo) Create(_ context.Context, a domain.Activity) (domain.Activity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.activitySeq
	r.s.activitySeq++
	r.s.activities[a.ID] = a
	return a, nil
}

func (r *activityRepo) GetByID(_ context.Context, id int) (domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.activities[id]
	if !ok {
		return domain.Activity{}, domain.ErrNotFound
	}
	return a, nil
}

func (r *activityRepo) List(_ context.Context) ([]domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Activity, 0, len(r.s.activities))
	for _, id := range sortedIDs(r.s.activities) {
		out = append(out, r.s.activities[id])
	}
	return out, nil
}

func (r *activityRepo) ListByDestination(_ context.Context, destinationID int) ([]domain.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []domain.Activity
	for _, id := range sortedIDs(r.s.activities) {
		if a := r.s.activities[id]; a.DestinationID == destinationID {
			out = append(out, a)
		}
	}
	return out, nil
}
