// Package itinerary implements the mutation rules for a trip's day-by-day
// schedule: reordering placements within a day, inserting catalog activities,
// moving placements between days, and adding or removing whole days.
//
// Every operation is a synchronous transform of the in-memory day sequence
// and follows a reject-before-mutate discipline: all validation (bounds,
// duplicate checks, the minimum-day rule) completes before the first splice,
// so a rejected operation leaves the itinerary untouched.
package itinerary

import (
	"fmt"
	"time"

	"itinero-server/internal/domain"
)

// Reorder moves the entry at position from to position to within the day at
// dayIdx (0-based). to may equal the activity count, which appends. A from
// equal to to is a no-op.
func Reorder(days []domain.DayPlan, dayIdx, from, to int) error {
	if err := checkDay(days, dayIdx); err != nil {
		return err
	}
	acts := days[dayIdx].Activities
	if from < 0 || from >= len(acts) {
		return fmt.Errorf("%w: source position %d out of range", domain.ErrValidation, from)
	}
	if to < 0 || to > len(acts) {
		return fmt.Errorf("%w: destination position %d out of range", domain.ErrValidation, to)
	}
	if from == to {
		return nil
	}

	entry := acts[from]
	acts = append(acts[:from], acts[from+1:]...)
	// After removal the valid insert range shrinks by one.
	if to > len(acts) {
		to = len(acts)
	}
	acts = append(acts[:to], append([]domain.ActivityEntry{entry}, acts[to:]...)...)
	days[dayIdx].Activities = acts
	return nil
}

// Insert places a catalog activity into the day at dayIdx at position pos.
// A pos of -1 (or any pos >= the current count) appends. If the day already
// holds an entry with the same activity id the operation is rejected with
// domain.ErrDuplicateInDay and nothing is mutated; cross-day duplicates are
// allowed. The entry snapshots the activity's name and duration and defaults
// to the 09:00–12:00 slot.
func Insert(days []domain.DayPlan, dayIdx, pos int, act domain.Activity) error {
	if err := checkDay(days, dayIdx); err != nil {
		return err
	}
	if days[dayIdx].HasActivity(act.ID) {
		return fmt.Errorf("%w: activity %d already on day %d", domain.ErrDuplicateInDay, act.ID, days[dayIdx].Day)
	}

	acts := days[dayIdx].Activities
	if pos < 0 || pos > len(acts) {
		pos = len(acts)
	}
	entry := domain.NewActivityEntry(act)
	days[dayIdx].Activities = append(acts[:pos], append([]domain.ActivityEntry{entry}, acts[pos:]...)...)
	return nil
}

// Move relocates the entry at fromPos on the day at fromDay to toPos on the
// day at toDay. A same-day move degenerates to Reorder. Cross-day moves apply
// the same duplicate-in-day check as Insert: if the destination day already
// holds the moved entry's activity id, the move is rejected with
// domain.ErrDuplicateInDay and neither day is modified.
func Move(days []domain.DayPlan, fromDay, fromPos, toDay, toPos int) error {
	if fromDay == toDay {
		return Reorder(days, fromDay, fromPos, toPos)
	}
	if err := checkDay(days, fromDay); err != nil {
		return err
	}
	if err := checkDay(days, toDay); err != nil {
		return err
	}

	src := days[fromDay].Activities
	if fromPos < 0 || fromPos >= len(src) {
		return fmt.Errorf("%w: source position %d out of range", domain.ErrValidation, fromPos)
	}
	dst := days[toDay].Activities
	if toPos < 0 || toPos > len(dst) {
		return fmt.Errorf("%w: destination position %d out of range", domain.ErrValidation, toPos)
	}

	entry := src[fromPos]
	if days[toDay].HasActivity(entry.ActivityID) {
		return fmt.Errorf("%w: activity %d already on day %d", domain.ErrDuplicateInDay, entry.ActivityID, days[toDay].Day)
	}

	days[fromDay].Activities = append(src[:fromPos], src[fromPos+1:]...)
	days[toDay].Activities = append(dst[:toPos], append([]domain.ActivityEntry{entry}, dst[toPos:]...)...)
	return nil
}

// AddDay appends a new empty day numbered one past the current maximum and
// dated one calendar day after the last day. It returns the extended slice;
// the caller owns the matching end-date extension on the trip.
func AddDay(days []domain.DayPlan) ([]domain.DayPlan, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: itinerary has no days", domain.ErrValidation)
	}
	last := days[len(days)-1]
	date, err := NextDate(last.Date)
	if err != nil {
		return nil, err
	}
	return append(days, domain.DayPlan{
		Day:        last.Day + 1,
		Date:       date,
		Activities: []domain.ActivityEntry{},
	}), nil
}

// RemoveDay deletes the day at dayIdx and renumbers the survivors so Day runs
// contiguously from 1 while their relative order is preserved. Removing the
// only remaining day is rejected with domain.ErrMinimumDays. The second
// return value reports whether the removed day was the chronologically last
// one, which is the caller's cue to pull the trip's end date back a day.
func RemoveDay(days []domain.DayPlan, dayIdx int) ([]domain.DayPlan, bool, error) {
	if err := checkDay(days, dayIdx); err != nil {
		return nil, false, err
	}
	if len(days) <= 1 {
		return nil, false, domain.ErrMinimumDays
	}

	wasLast := dayIdx == len(days)-1
	days = append(days[:dayIdx], days[dayIdx+1:]...)
	for i := dayIdx; i < len(days); i++ {
		days[i].Day = i + 1
	}
	return days, wasLast, nil
}

// RemoveActivity deletes the entry at position pos on the day at dayIdx.
func RemoveActivity(days []domain.DayPlan, dayIdx, pos int) error {
	if err := checkDay(days, dayIdx); err != nil {
		return err
	}
	acts := days[dayIdx].Activities
	if pos < 0 || pos >= len(acts) {
		return fmt.Errorf("%w: position %d out of range", domain.ErrValidation, pos)
	}
	days[dayIdx].Activities = append(acts[:pos], acts[pos+1:]...)
	return nil
}

// NextDate returns the ISO date one calendar day after date.
func NextDate(date string) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: malformed date %q", domain.ErrValidation, date)
	}
	return t.AddDate(0, 0, 1).Format(domain.DateLayout), nil
}

// PrevDate returns the ISO date one calendar day before date.
func PrevDate(date string) (string, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: malformed date %q", domain.ErrValidation, date)
	}
	return t.AddDate(0, 0, -1).Format(domain.DateLayout), nil
}

func checkDay(days []domain.DayPlan, dayIdx int) error {
	if dayIdx < 0 || dayIdx >= len(days) {
		return fmt.Errorf("%w: day index %d out of range", domain.ErrValidation, dayIdx)
	}
	return nil
}
