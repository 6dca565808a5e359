package service

import (
	"context"
	"fmt"
	"strings"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// ActivityService implements read operations over the activity catalog.
type ActivityService struct {
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repo.
func NewActivityService(activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{activities: activities}
}

// List returns catalog activities, optionally scoped and filtered.
// The query and category conditions are a conjunction.
func (s *ActivityService) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	var (
		acts []domain.Activity
		err  error
	)
	if f.DestinationID != nil {
		acts, err = s.activities.ListByDestination(ctx, *f.DestinationID)
	} else {
		acts, err = s.activities.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.List: %w", err)
	}

	if f.Query == "" && isWildcardCategory(f.Category) {
		return acts, nil
	}

	q := strings.ToLower(f.Query)
	out := make([]domain.Activity, 0, len(acts))
	for _, a := range acts {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Description), q)
		matchesCategory := isWildcardCategory(f.Category) || a.Category == f.Category
		if matchesQuery && matchesCategory {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetByID returns a single catalog activity.
func (s *ActivityService) GetByID(ctx context.Context, id int) (domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return a, nil
}

func isWildcardCategory(c string) bool {
	return c == "" || c == "all"
}
