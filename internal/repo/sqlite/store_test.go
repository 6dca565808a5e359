package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero-server/internal/domain"
	"itinero-server/testutil"
)

func TestDestinationRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	created, err := store.Destinations.Create(ctx, domain.Destination{
		Name:           "Paris",
		Country:        "France",
		Description:    "The city of light",
		ImageURL:       "https://example.com/paris.jpg",
		Rating:         48,
		Tags:           []string{"City", "Culture"},
		PricePerPerson: 1200,
		Type:           "Popular",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := store.Destinations.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDestinationRepo_Search_MatchesTagsInJSON(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	_, err := store.Destinations.Create(ctx, domain.Destination{
		Name: "Bali", Country: "Indonesia", Tags: []string{"Beach", "Relax"},
	})
	require.NoError(t, err)
	_, err = store.Destinations.Create(ctx, domain.Destination{
		Name: "Tokyo", Country: "Japan", Tags: []string{"City", "Food"},
	})
	require.NoError(t, err)

	got, err := store.Destinations.Search(ctx, "beach")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bali", got[0].Name)
}

func TestActivityRepo_ListByDestination(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	_, err := store.Activities.Create(ctx, domain.Activity{DestinationID: 1, Name: "Eiffel Tower Visit", Category: "Sightseeing"})
	require.NoError(t, err)
	_, err = store.Activities.Create(ctx, domain.Activity{DestinationID: 2, Name: "Beach Day", Category: "Outdoors"})
	require.NoError(t, err)

	got, err := store.Activities.ListByDestination(ctx, 1)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Eiffel Tower Visit", got[0].Name)
}

func TestTripRepo_RoundTripWithItinerary(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	created, err := store.Trips.Create(ctx, domain.Trip{
		Name:        "Paris Explorer",
		Destination: "Paris, France",
		StartDate:   "2023-06-15",
		EndDate:     "2023-06-16",
		Travelers:   2,
		Itinerary: []domain.DayPlan{
			{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{
				{ActivityID: 1, Name: "Eiffel Tower", StartTime: "09:00", EndTime: "12:00", Duration: "2-3 hours"},
			}},
			{Day: 2, Date: "2023-06-16", Activities: []domain.ActivityEntry{}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.Trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris Explorer", got.Name)
	require.Len(t, got.Itinerary, 2)
	assert.Equal(t, "Eiffel Tower", got.Itinerary[0].Activities[0].Name)
	assert.Nil(t, got.UserID)
}

func TestTripRepo_Update_PersistsItineraryReplacement(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	created, err := store.Trips.Create(ctx, domain.Trip{
		Name:      "Paris Explorer",
		StartDate: "2023-06-15",
		EndDate:   "2023-06-15",
		Travelers: 1,
		Itinerary: []domain.DayPlan{
			{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{}},
		},
	})
	require.NoError(t, err)

	newDays := []domain.DayPlan{
		{Day: 1, Date: "2023-06-15", Activities: []domain.ActivityEntry{}},
		{Day: 2, Date: "2023-06-16", Activities: []domain.ActivityEntry{}},
	}
	endDate := "2023-06-16"
	_, err = store.Trips.Update(ctx, created.ID, domain.TripUpdate{
		Itinerary: &newDays,
		EndDate:   &endDate,
	})
	require.NoError(t, err)

	got, err := store.Trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Itinerary, 2)
	assert.Equal(t, "2023-06-16", got.EndDate)
	assert.Equal(t, "Paris Explorer", got.Name)
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	store := testutil.NewSQLiteStore(t)

	name := "x"
	_, err := store.Trips.Update(context.Background(), 42, domain.TripUpdate{Name: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	created, err := store.Trips.Create(ctx, domain.Trip{
		Name: "one", StartDate: "2023-06-15", EndDate: "2023-06-15", Travelers: 1,
	})
	require.NoError(t, err)

	require.NoError(t, store.Trips.Delete(ctx, created.ID))

	_, err = store.Trips.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Trips.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestTripRepo_IDsNeverReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	first, err := store.Trips.Create(ctx, domain.Trip{Name: "one", StartDate: "2023-06-15", EndDate: "2023-06-15", Travelers: 1})
	require.NoError(t, err)
	require.NoError(t, store.Trips.Delete(ctx, first.ID))

	second, err := store.Trips.Create(ctx, domain.Trip{Name: "two", StartDate: "2023-07-01", EndDate: "2023-07-02", Travelers: 1})
	require.NoError(t, err)

	// AUTOINCREMENT keeps ids strictly increasing across deletes.
	assert.Greater(t, second.ID, first.ID)
}

func TestUserRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	created, err := store.Users.Create(ctx, domain.User{Username: "demo", Password: "demo123"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	byName, err := store.Users.GetByUsername(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = store.Users.GetByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
