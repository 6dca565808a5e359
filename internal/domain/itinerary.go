package domain

// DayPlan is one calendar day's slice of a trip's itinerary.
// Day is a 1-based sequential index, contiguous and gap-free within a trip
// (renumbered whenever a day is removed). Date is expected, but not enforced,
// to equal the trip's start date plus Day-1 days.
// A DayPlan is exclusively owned by its parent Trip and has no identity or
// lifecycle of its own.
type DayPlan struct {
	Day        int             `json:"day"`
	Date       string          `json:"date"`
	Activities []ActivityEntry `json:"activities"`
}

// ActivityEntry is a placement of a catalog Activity into a specific day.
// Name and Duration are denormalized snapshots copied from the Activity at
// insertion time; later catalog edits do not propagate to placed entries.
// StartTime/EndTime are "HH:MM" strings, not validated for ordering or
// overlap with sibling entries.
type ActivityEntry struct {
	ActivityID int    `json:"activityId"`
	Name       string `json:"name"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Duration   string `json:"duration"`
}

// Default placement times for an entry freshly inserted from the catalog.
const (
	DefaultStartTime = "09:00"
	DefaultEndTime   = "12:00"
)

// HasActivity reports whether the day already holds an entry for activityID.
func (d DayPlan) HasActivity(activityID int) bool {
	for _, e := range d.Activities {
		if e.ActivityID == activityID {
			return true
		}
	}
	return false
}

// NewActivityEntry snapshots a catalog activity into a placement with the
// default 09:00–12:00 time slot.
func NewActivityEntry(a Activity) ActivityEntry {
	return ActivityEntry{
		ActivityID: a.ID,
		Name:       a.Name,
		StartTime:  DefaultStartTime,
		EndTime:    DefaultEndTime,
		Duration:   a.Duration,
	}
}
