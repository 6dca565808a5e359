package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"itinero-server/internal/domain"
	"itinero-server/internal/itinerary"
	"itinero-server/internal/repo"
)

// TripService implements trip CRUD plus the server-side itinerary operations.
// Every itinerary operation loads the trip, applies a pure transform from the
// itinerary package, and persists with a single Update call, so there is no
// partial-application state to roll back.
type TripService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewTripService constructs a TripService backed by the provided repos.
// The activity repo is needed for catalog inserts, which snapshot the
// activity's name and duration into the placed entry.
func NewTripService(trips repo.TripRepo, activities repo.ActivityRepo) *TripService {
	return &TripService{trips: trips, activities: activities}
}

// Create validates and persists a new trip.
func (s *TripService) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	if fe := validateTrip(t); len(fe) > 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", fe)
	}
	if t.Itinerary == nil {
		t.Itinerary = []domain.DayPlan{}
	}
	created, err := s.trips.Create(ctx, t)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip.
func (s *TripService) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return t, nil
}

// List returns all trips.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	ts, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return ts, nil
}

// Update validates the set fields of u and shallow-merges them over the
// stored trip. The itinerary, when present, is replaced wholesale.
func (s *TripService) Update(ctx context.Context, id int, u domain.TripUpdate) (domain.Trip, error) {
	if fe := validateTripUpdate(u); len(fe) > 0 {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", fe)
	}
	updated, err := s.trips.Update(ctx, id, u)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by id.
func (s *TripService) Delete(ctx context.Context, id int) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// --- itinerary operations ---------------------------------------------------

// AddDay appends a new empty day to the trip and extends the nominal end date
// by one calendar day. The end date is a display convenience; it is not
// re-validated against itinerary length anywhere else.
func (s *TripService) AddDay(ctx context.Context, id int) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddDay: %w", err)
	}

	days, err := itinerary.AddDay(t.Itinerary)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddDay: %w", err)
	}
	endDate, err := itinerary.NextDate(t.EndDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddDay: %w", err)
	}

	return s.saveItinerary(ctx, id, "AddDay", days, &endDate)
}

// RemoveDay deletes the 1-based day number from the trip, renumbering the
// survivors. Removing the only day fails with domain.ErrMinimumDays. When the
// chronologically last day is removed, the nominal end date moves back a day.
func (s *TripService) RemoveDay(ctx context.Context, id, day int) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveDay: %w", err)
	}

	days, wasLast, err := itinerary.RemoveDay(t.Itinerary, day-1)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveDay: %w", err)
	}

	var endDate *string
	if wasLast {
		prev, err := itinerary.PrevDate(t.EndDate)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.RemoveDay: %w", err)
		}
		endDate = &prev
	}

	return s.saveItinerary(ctx, id, "RemoveDay", days, endDate)
}

// InsertActivity places the catalog activity onto the 1-based day number at
// position pos (-1 appends). The entry snapshots the activity's name and
// duration; a duplicate activity id on that day rejects the whole operation
// with domain.ErrDuplicateInDay before anything is mutated.
func (s *TripService) InsertActivity(ctx context.Context, id, day, activityID, pos int) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.InsertActivity: %w", err)
	}
	act, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.InsertActivity: activity: %w", err)
	}

	if err := itinerary.Insert(t.Itinerary, day-1, pos, act); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.InsertActivity: %w", err)
	}
	return s.saveItinerary(ctx, id, "InsertActivity", t.Itinerary, nil)
}

// MoveActivity relocates an entry between (or within) 1-based day numbers.
// Cross-day moves apply the same duplicate-in-day rule as catalog inserts.
func (s *TripService) MoveActivity(ctx context.Context, id, fromDay, fromIndex, toDay, toIndex int) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.MoveActivity: %w", err)
	}

	if err := itinerary.Move(t.Itinerary, fromDay-1, fromIndex, toDay-1, toIndex); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.MoveActivity: %w", err)
	}
	return s.saveItinerary(ctx, id, "MoveActivity", t.Itinerary, nil)
}

// RemoveActivity deletes the entry at position index on the 1-based day number.
func (s *TripService) RemoveActivity(ctx context.Context, id, day, index int) (domain.Trip, error) {
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveActivity: %w", err)
	}

	if err := itinerary.RemoveActivity(t.Itinerary, day-1, index); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveActivity: %w", err)
	}
	return s.saveItinerary(ctx, id, "RemoveActivity", t.Itinerary, nil)
}

// saveItinerary persists a transformed itinerary (and optional end date) as
// one Update call, a single atomic store write.
func (s *TripService) saveItinerary(ctx context.Context, id int, op string, days []domain.DayPlan, endDate *string) (domain.Trip, error) {
	u := domain.TripUpdate{Itinerary: &days, EndDate: endDate}
	updated, err := s.trips.Update(ctx, id, u)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.%s: save: %w", op, err)
	}
	return updated, nil
}

// --- validation -------------------------------------------------------------

// validateTrip checks a full create payload and collects field-level errors.
func validateTrip(t domain.Trip) domain.FieldErrors {
	fe := domain.FieldErrors{}
	if strings.TrimSpace(t.Name) == "" {
		fe["name"] = "is required"
	}
	if strings.TrimSpace(t.Destination) == "" {
		fe["destination"] = "is required"
	}
	if t.Travelers < 1 {
		fe["travelers"] = "must be a positive integer"
	}
	start := checkDate(fe, "startDate", t.StartDate)
	end := checkDate(fe, "endDate", t.EndDate)
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		fe["endDate"] = "must not be before startDate"
	}
	validateItineraryShape(fe, t.Itinerary)
	return fe
}

// validateTripUpdate checks only the fields present in a partial payload.
func validateTripUpdate(u domain.TripUpdate) domain.FieldErrors {
	fe := domain.FieldErrors{}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		fe["name"] = "must not be empty"
	}
	if u.Destination != nil && strings.TrimSpace(*u.Destination) == "" {
		fe["destination"] = "must not be empty"
	}
	if u.Travelers != nil && *u.Travelers < 1 {
		fe["travelers"] = "must be a positive integer"
	}
	if u.StartDate != nil {
		checkDate(fe, "startDate", *u.StartDate)
	}
	if u.EndDate != nil {
		checkDate(fe, "endDate", *u.EndDate)
	}
	if u.Itinerary != nil {
		validateItineraryShape(fe, *u.Itinerary)
	}
	return fe
}

// validateItineraryShape checks each day plan and nested entry for the
// required fields, using dotted paths as field keys. It validates shape only:
// day contiguity and date arithmetic are maintained by the itinerary
// operations, not re-checked on saved payloads.
func validateItineraryShape(fe domain.FieldErrors, days []domain.DayPlan) {
	for i, d := range days {
		prefix := fmt.Sprintf("itinerary[%d]", i)
		if d.Day < 1 {
			fe[prefix+".day"] = "must be a positive integer"
		}
		checkDate(fe, prefix+".date", d.Date)
		for j, e := range d.Activities {
			ep := fmt.Sprintf("%s.activities[%d]", prefix, j)
			if e.ActivityID < 1 {
				fe[ep+".activityId"] = "is required"
			}
			if e.Name == "" {
				fe[ep+".name"] = "is required"
			}
			if e.StartTime == "" {
				fe[ep+".startTime"] = "is required"
			}
			if e.EndTime == "" {
				fe[ep+".endTime"] = "is required"
			}
			if e.Duration == "" {
				fe[ep+".duration"] = "is required"
			}
		}
	}
}

// checkDate records a field error when value is empty or not an ISO date,
// and returns the parsed time (zero on failure) for range checks.
func checkDate(fe domain.FieldErrors, field, value string) time.Time {
	if value == "" {
		fe[field] = "is required"
		return time.Time{}
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		fe[field] = "must be a date in YYYY-MM-DD format"
		return time.Time{}
	}
	return t
}
