package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per placed activity entry, with
// trip and day fields repeated for every entry on that day. Trips with an
// empty itinerary yield one row with zero values for all day/entry fields.
type ExportRow struct {
	// Trip fields — repeated for every entry on the trip.
	TripID          int    `json:"tripId"`
	TripName        string `json:"tripName"`
	TripDestination string `json:"tripDestination"`
	TripStartDate   string `json:"tripStartDate"`
	TripEndDate     string `json:"tripEndDate"`
	Travelers       int    `json:"travelers"`

	// Day fields — zero values when the trip has no days.
	Day  int    `json:"day,omitempty"`
	Date string `json:"date,omitempty"`

	// Entry fields — zero values when the day has no activities.
	ActivityID   int    `json:"activityId,omitempty"`
	ActivityName string `json:"activityName,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	EndTime      string `json:"endTime,omitempty"`
	Duration     string `json:"duration,omitempty"`
}
