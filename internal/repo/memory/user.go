package memory

import (
	"context"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// userRepo is the in-memory implementation of repo.UserRepo.
type userRepo struct {
	s *Store
}

var _ repo.UserRepo = (*userRepo)(nil)

func (r *userRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u.ID = r.s.userSeq
	r.s.userSeq++
	r.s.users[u.ID] = u
	return u, nil
}

func (r *userRepo) GetByID(_ context.Context, id int) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.users) {
		if r.s.users[id].Username == username {
			return r.s.users[id], nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}
