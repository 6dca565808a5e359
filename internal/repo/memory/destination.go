package memory

import (
	"context"
	"strings"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// destinationRepo is the in-memory implementation of repo.DestinationRepo.
type destinationRepo struct {
	s *Store
}

var _ repo.DestinationRepo = (*destinationRepo)(nil)

func (r *destinationRepo) Create(_ context.Context, d domain.Destination) (domain.Destination, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = r.s.destinationSeq
	r.s.destinationSeq++
	r.s.destinations[d.ID] = cloneDestination(d)
	return d, nil
}

func (r *destinationRepo) GetByID(_ context.Context, id int) (domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.destinations[id]
	if !ok {
		return domain.Destination{}, domain.ErrNotFound
	}
	return cloneDestination(d), nil
}

func (r *destinationRepo) List(_ context.Context) ([]domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Destination, 0, len(r.s.destinations))
	for _, id := range sortedIDs(r.s.destinations) {
		out = append(out, cloneDestination(r.s.destinations[id]))
	}
	return out, nil
}

// Search is a linear scan: case-insensitive substring match against name,
// country, or any tag. Results keep store order; nothing is score-ranked.
func (r *destinationRepo) Search(_ context.Context, query string) ([]domain.Destination, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []domain.Destination
	for _, id := range sortedIDs(r.s.destinations) {
		d := r.s.destinations[id]
		if matchesDestination(d, q) {
			out = append(out, cloneDestination(d))
		}
	}
	return out, nil
}

func matchesDestination(d domain.Destination, q string) bool {
	if strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Country), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// cloneDestination copies the tags slice so callers cannot mutate stored state.
func cloneDestination(d domain.Destination) domain.Destination {
	if d.Tags != nil {
		d.Tags = append([]string(nil), d.Tags...)
	}
	return d
}
