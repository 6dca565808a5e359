package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero-server/internal/domain"
)

func entry(id int, name string) domain.ActivityEntry {
	return domain.ActivityEntry{
		ActivityID: id,
		Name:       name,
		StartTime:  domain.DefaultStartTime,
		EndTime:    domain.DefaultEndTime,
		Duration:   "2 hours",
	}
}

func twoDays() []domain.DayPlan {
	return []domain.DayPlan{
		{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{
			entry(1, "Eiffel Tower"),
			entry(2, "Louvre Museum"),
			entry(3, "Seine Cruise"),
		}},
		{Day: 2, Date: "2023-06-16", Activities: []domain.ActivityEntry{
			entry(4, "Montmartre Walk"),
		}},
	}
}

func ids(day domain.DayPlan) []int {
	out := make([]int, len(day.Activities))
	for i, e := range day.Activities {
		out[i] = e.ActivityID
	}
	return out
}

func TestReorder(t *testing.T) {
	t.Run("moves entry forward within day", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 0, 0, 2)

		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 1}, ids(days[0]))
	})

	t.Run("moves entry backward within day", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 0, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 2}, ids(days[0]))
	})

	t.Run("destination equal to count appends", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 0, 0, 3)

		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 1}, ids(days[0]))
	})

	t.Run("same source and destination is a no-op", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 0, 1, 1)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, ids(days[0]))
	})

	t.Run("preserves the multiset of entries", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 0, 1, 0)

		require.NoError(t, err)
		assert.ElementsMatch(t, []int{1, 2, 3}, ids(days[0]))
		assert.Len(t, days[0].Activities, 3)
	})

	t.Run("rejects out-of-range source", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 0, 5, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, []int{1, 2, 3}, ids(days[0]))
	})

	t.Run("rejects out-of-range day", func(t *testing.T) {
		days := twoDays()

		err := Reorder(days, 2, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestInsert(t *testing.T) {
	cooking := domain.Activity{ID: 9, Name: "Cooking Class", Duration: "3 hours"}

	t.Run("inserts at given position", func(t *testing.T) {
		days := twoDays()

		err := Insert(days, 0, 1, cooking)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 9, 2, 3}, ids(days[0]))
	})

	t.Run("negative position appends", func(t *testing.T) {
		days := twoDays()

		err := Insert(days, 0, -1, cooking)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 9}, ids(days[0]))
	})

	t.Run("position past end appends", func(t *testing.T) {
		days := twoDays()

		err := Insert(days, 1, 10, cooking)

		require.NoError(t, err)
		assert.Equal(t, []int{4, 9}, ids(days[1]))
	})

	t.Run("snapshots name, duration and default times", func(t *testing.T) {
		days := twoDays()

		err := Insert(days, 1, 0, cooking)

		require.NoError(t, err)
		got := days[1].Activities[0]
		assert.Equal(t, 9, got.ActivityID)
		assert.Equal(t, "Cooking Class", got.Name)
		assert.Equal(t, "3 hours", got.Duration)
		assert.Equal(t, domain.DefaultStartTime, got.StartTime)
		assert.Equal(t, domain.DefaultEndTime, got.EndTime)
	})

	t.Run("rejects duplicate activity on same day", func(t *testing.T) {
		days := twoDays()

		err := Insert(days, 0, 0, domain.Activity{ID: 2, Name: "Louvre Museum"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateInDay)
		assert.Equal(t, []int{1, 2, 3}, ids(days[0]))
	})

	t.Run("allows same activity on a different day", func(t *testing.T) {
		days := twoDays()

		err := Insert(days, 1, 0, domain.Activity{ID: 1, Name: "Eiffel Tower"})

		require.NoError(t, err)
		assert.Equal(t, []int{1, 4}, ids(days[1]))
	})
}

func TestMove(t *testing.T) {
	t.Run("moves entry across days", func(t *testing.T) {
		days := twoDays()

		err := Move(days, 0, 1, 1, 0)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, ids(days[0]))
		assert.Equal(t, []int{2, 4}, ids(days[1]))
	})

	t.Run("conserves entries across days", func(t *testing.T) {
		days := twoDays()

		err := Move(days, 0, 0, 1, 1)

		require.NoError(t, err)
		total := append(ids(days[0]), ids(days[1])...)
		assert.ElementsMatch(t, []int{1, 2, 3, 4}, total)
	})

	t.Run("same-day move delegates to reorder", func(t *testing.T) {
		days := twoDays()

		err := Move(days, 0, 0, 0, 2)

		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 1}, ids(days[0]))
	})

	t.Run("rejects duplicate on destination day", func(t *testing.T) {
		days := twoDays()
		require.NoError(t, Insert(days, 1, 0, domain.Activity{ID: 1, Name: "Eiffel Tower"}))

		err := Move(days, 0, 0, 1, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDuplicateInDay)
		assert.Equal(t, []int{1, 2, 3}, ids(days[0]))
		assert.Equal(t, []int{1, 4}, ids(days[1]))
	})

	t.Run("rejects out-of-range source position", func(t *testing.T) {
		days := twoDays()

		err := Move(days, 1, 3, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects out-of-range destination day", func(t *testing.T) {
		days := twoDays()

		err := Move(days, 0, 0, 5, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, []int{1, 2, 3}, ids(days[0]))
	})
}

func TestAddDay(t *testing.T) {
	t.Run("appends next sequential day with incremented date", func(t *testing.T) {
		days := twoDays()

		got, err := AddDay(days)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, 3, got[2].Day)
		assert.Equal(t, "2023-06-17", got[2].Date)
		assert.Empty(t, got[2].Activities)
		assert.NotNil(t, got[2].Activities)
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		days := []domain.DayPlan{
			{Day: 1, Date: "2023-06-30", Activities: []domain.ActivityEntry{}},
		}

		got, err := AddDay(days)

		require.NoError(t, err)
		assert.Equal(t, "2023-07-01", got[1].Date)
	})

	t.Run("rejects empty itinerary", func(t *testing.T) {
		_, err := AddDay(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects malformed last date", func(t *testing.T) {
		days := []domain.DayPlan{{Day: 1, Date: "June 15"}}

		_, err := AddDay(days)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRemoveDay(t *testing.T) {
	threeDays := func() []domain.DayPlan {
		return []domain.DayPlan{
			{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{entry(1, "Eiffel Tower")}},
			{Day: 2, Date: "2023-06-16", Activities: []domain.ActivityEntry{entry(2, "Louvre Museum")}},
			{Day: 3, Date: "2023-06-17", Activities: []domain.ActivityEntry{entry(3, "Seine Cruise")}},
		}
	}

	t.Run("removes middle day and renumbers survivors", func(t *testing.T) {
		got, wasLast, err := RemoveDay(threeDays(), 1)

		require.NoError(t, err)
		assert.False(t, wasLast)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Day)
		assert.Equal(t, 2, got[1].Day)
		assert.Equal(t, []int{1}, ids(got[0]))
		assert.Equal(t, []int{3}, ids(got[1]))
		// Dates stay with their days; only the numbering shifts.
		assert.Equal(t, "2023-06-17", got[1].Date)
	})

	t.Run("removing the last day reports wasLast", func(t *testing.T) {
		got, wasLast, err := RemoveDay(threeDays(), 2)

		require.NoError(t, err)
		assert.True(t, wasLast)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[1].Day)
	})

	t.Run("rejects removing the only day", func(t *testing.T) {
		days := []domain.DayPlan{{Day: 1, Date: "2023-06-15"}}

		_, _, err := RemoveDay(days, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMinimumDays)
	})

	t.Run("rejects out-of-range day", func(t *testing.T) {
		_, _, err := RemoveDay(threeDays(), 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestRemoveActivity(t *testing.T) {
	t.Run("removes entry at position", func(t *testing.T) {
		days := twoDays()

		err := RemoveActivity(days, 0, 1)

		require.NoError(t, err)
		assert.Equal(t, []int{1, 3}, ids(days[0]))
	})

	t.Run("rejects out-of-range position", func(t *testing.T) {
		days := twoDays()

		err := RemoveActivity(days, 1, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, []int{4}, ids(days[1]))
	})
}

func TestDateArithmetic(t *testing.T) {
	t.Run("next date", func(t *testing.T) {
		got, err := NextDate("2023-12-31")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", got)
	})

	t.Run("previous date", func(t *testing.T) {
		got, err := PrevDate("2023-03-01")

		require.NoError(t, err)
		assert.Equal(t, "2023-02-28", got)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := NextDate("15/06/2023")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
