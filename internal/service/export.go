package service

import (
	"context"
	"fmt"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// ExportService assembles a full flat export of all trips and their placed
// activities.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per placed activity entry across all trips.
// Trips with an empty itinerary contribute one row with zero day/entry
// fields, so every trip is visible in the export.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	var rows []domain.ExportRow
	for _, t := range trips {
		base := domain.ExportRow{
			TripID:          t.ID,
			TripName:        t.Name,
			TripDestination: t.Destination,
			TripStartDate:   t.StartDate,
			TripEndDate:     t.EndDate,
			Travelers:       t.Travelers,
		}

		empty := true
		for _, day := range t.Itinerary {
			for _, e := range day.Activities {
				row := base
				row.Day = day.Day
				row.Date = day.Date
				row.ActivityID = e.ActivityID
				row.ActivityName = e.Name
				row.StartTime = e.StartTime
				row.EndTime = e.EndTime
				row.Duration = e.Duration
				rows = append(rows, row)
				empty = false
			}
		}
		if empty {
			rows = append(rows, base)
		}
	}
	return rows, nil
}
