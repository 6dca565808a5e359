package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo/memory"
)

func TestDestinationRepo_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	first, err := store.Destinations.Create(ctx, domain.Destination{Name: "Paris", Country: "France"})
	require.NoError(t, err)
	second, err := store.Destinations.Create(ctx, domain.Destination{Name: "Bali", Country: "Indonesia"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestDestinationRepo_GetByID_NotFound(t *testing.T) {
	store := memory.New().Repos()

	_, err := store.Destinations.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationRepo_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	for _, name := range []string{"Paris", "Bali", "Tokyo", "Barcelona"} {
		_, err := store.Destinations.Create(ctx, domain.Destination{Name: name})
		require.NoError(t, err)
	}

	got, err := store.Destinations.List(ctx)

	require.NoError(t, err)
	names := make([]string, len(got))
	for i, d := range got {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"Paris", "Bali", "Tokyo", "Barcelona"}, names)
}

func TestDestinationRepo_Search(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	seedDest := []domain.Destination{
		{Name: "Paris", Country: "France", Tags: []string{"City", "Culture"}},
		{Name: "Bali", Country: "Indonesia", Tags: []string{"Beach", "Relax"}},
		{Name: "Santorini", Country: "Greece", Tags: []string{"Island", "Beach"}},
	}
	for _, d := range seedDest {
		_, err := store.Destinations.Create(ctx, d)
		require.NoError(t, err)
	}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got, err := store.Destinations.Search(ctx, "PAR")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Paris", got[0].Name)
	})

	t.Run("matches country", func(t *testing.T) {
		got, err := store.Destinations.Search(ctx, "indo")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bali", got[0].Name)
	})

	t.Run("matches tags across destinations", func(t *testing.T) {
		got, err := store.Destinations.Search(ctx, "beach")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Bali", got[0].Name)
		assert.Equal(t, "Santorini", got[1].Name)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		got, err := store.Destinations.Search(ctx, "")

		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("no match yields empty result", func(t *testing.T) {
		got, err := store.Destinations.Search(ctx, "atlantis")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDestinationRepo_CloneIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	_, err := store.Destinations.Create(ctx, domain.Destination{Name: "Paris", Tags: []string{"City"}})
	require.NoError(t, err)

	got, err := store.Destinations.GetByID(ctx, 1)
	require.NoError(t, err)
	got.Tags[0] = "MUTATED"

	again, err := store.Destinations.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "City", again.Tags[0])
}

func TestActivityRepo_ListByDestination(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	acts := []domain.Activity{
		{DestinationID: 1, Name: "Eiffel Tower Visit"},
		{DestinationID: 2, Name: "Beach Day"},
		{DestinationID: 1, Name: "Louvre Museum"},
	}
	for _, a := range acts {
		_, err := store.Activities.Create(ctx, a)
		require.NoError(t, err)
	}

	got, err := store.Activities.ListByDestination(ctx, 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Eiffel Tower Visit", got[0].Name)
	assert.Equal(t, "Louvre Museum", got[1].Name)
}

func TestTripRepo_CreateAssignsIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	got, err := store.Trips.Create(ctx, domain.Trip{Name: "Paris Explorer"})

	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTripRepo_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	first, err := store.Trips.Create(ctx, domain.Trip{Name: "one"})
	require.NoError(t, err)
	require.NoError(t, store.Trips.Delete(ctx, first.ID))

	second, err := store.Trips.Create(ctx, domain.Trip{Name: "two"})
	require.NoError(t, err)

	// The counter keeps climbing after a delete.
	assert.Equal(t, 2, second.ID)
	_, err = store.Trips.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Update_ShallowMerge(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	created, err := store.Trips.Create(ctx, domain.Trip{
		Name:        "Paris Explorer",
		Destination: "Paris, France",
		StartDate:   "2023-06-15",
		EndDate:     "2023-06-16",
		Travelers:   2,
	})
	require.NoError(t, err)

	name := "Paris in Spring"
	updated, err := store.Trips.Update(ctx, created.ID, domain.TripUpdate{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Paris in Spring", updated.Name)
	assert.Equal(t, "Paris, France", updated.Destination)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestTripRepo_Update_ReplacesItineraryWholesale(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	created, err := store.Trips.Create(ctx, domain.Trip{
		Name: "Paris Explorer",
		Itinerary: []domain.DayPlan{
			{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{
				{ActivityID: 1, Name: "Eiffel Tower", StartTime: "09:00", EndTime: "12:00", Duration: "2-3 hours"},
			}},
			{Day: 2, Date: "2023-06-16", Activities: []domain.ActivityEntry{}},
		},
	})
	require.NoError(t, err)

	replacement := []domain.DayPlan{
		{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{}},
	}
	updated, err := store.Trips.Update(ctx, created.ID, domain.TripUpdate{Itinerary: &replacement})

	require.NoError(t, err)
	require.Len(t, updated.Itinerary, 1)
	assert.Empty(t, updated.Itinerary[0].Activities)
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	store := memory.New().Repos()

	name := "x"
	_, err := store.Trips.Update(context.Background(), 42, domain.TripUpdate{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_CloneIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	created, err := store.Trips.Create(ctx, domain.Trip{
		Name: "Paris Explorer",
		Itinerary: []domain.DayPlan{
			{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{
				{ActivityID: 1, Name: "Eiffel Tower", StartTime: "09:00", EndTime: "12:00", Duration: "2-3 hours"},
			}},
		},
	})
	require.NoError(t, err)

	got, err := store.Trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.Itinerary[0].Activities[0].Name = "MUTATED"
	got.Itinerary[0].Day = 99

	again, err := store.Trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eiffel Tower", again.Itinerary[0].Activities[0].Name)
	assert.Equal(t, 1, again.Itinerary[0].Day)
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	store := memory.New().Repos()

	err := store.Trips.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	ctx := context.Background()
	store := memory.New().Repos()

	_, err := store.Users.Create(ctx, domain.User{Username: "demo", Password: "demo123"})
	require.NoError(t, err)

	got, err := store.Users.GetByUsername(ctx, "demo")

	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "demo", got.Username)

	_, err = store.Users.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
