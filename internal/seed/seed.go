// Package seed loads the demo catalog and sample trip into a store.
// The fixtures are applied through the repo interfaces, so they work
// identically against the memory and sqlite stores.
package seed

import (
	"context"
	"fmt"

	"itinero-server/internal/domain"
	"itinero-server/internal/repo"
)

// Apply inserts the demo fixtures: six destinations, a catalog of activities
// for Paris and Bali, one demo user, and one sample trip referencing them.
// It is not idempotent — call it once, on an empty store.
func Apply(ctx context.Context, store repo.Store) error {
	for _, d := range Destinations() {
		if _, err := store.Destinations.Create(ctx, d); err != nil {
			return fmt.Errorf("seed: destination %q: %w", d.Name, err)
		}
	}
	for _, a := range Activities() {
		if _, err := store.Activities.Create(ctx, a); err != nil {
			return fmt.Errorf("seed: activity %q: %w", a.Name, err)
		}
	}
	if _, err := store.Users.Create(ctx, domain.User{Username: "demo", Password: "demo"}); err != nil {
		return fmt.Errorf("seed: user: %w", err)
	}
	if _, err := store.Trips.Create(ctx, SampleTrip()); err != nil {
		return fmt.Errorf("seed: trip: %w", err)
	}
	return nil
}

// Destinations returns the demo destination catalog. Ratings are the usual
// fixed-point 0–50 representation (48 = 4.8).
func Destinations() []domain.Destination {
	return []domain.Destination{
		{
			Name:           "Paris",
			Country:        "France",
			Description:    "The City of Light, known for its iconic Eiffel Tower, world-class museums, and romantic ambiance.",
			ImageURL:       "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Rating:         48,
			Tags:           []string{"Cultural", "Historic", "Romantic"},
			PricePerPerson: 1200,
			Type:           "Popular",
		},
		{
			Name:           "Bali",
			Country:        "Indonesia",
			Description:    "A paradise island known for its beautiful beaches, lush rice terraces, and spiritual atmosphere.",
			ImageURL:       "https://images.unsplash.com/photo-1560813962-ff3d8fcf59ba?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Rating:         47,
			Tags:           []string{"Beach", "Adventure", "Relaxation"},
			PricePerPerson: 950,
			Type:           "Trending",
		},
		{
			Name:           "Santorini",
			Country:        "Greece",
			Description:    "A stunning volcanic island known for its white-washed buildings, blue domes, and breathtaking sunsets.",
			ImageURL:       "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Rating:         49,
			Tags:           []string{"Beach", "Luxury", "Romantic"},
			PricePerPerson: 1450,
			Type:           "Romantic",
		},
		{
			Name:           "Tokyo",
			Country:        "Japan",
			Description:    "A vibrant metropolis blending traditional culture with futuristic innovation and technology.",
			ImageURL:       "https://images.unsplash.com/photo-1503899036084-c55cdd92da26?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Rating:         48,
			Tags:           []string{"Urban", "Cultural", "Food"},
			PricePerPerson: 1500,
			Type:           "Popular",
		},
		{
			Name:           "Barcelona",
			Country:        "Spain",
			Description:    "A vibrant city known for its unique architecture, beautiful beaches, and vibrant culture.",
			ImageURL:       "https://images.unsplash.com/photo-1539037116277-4db20889f2d4?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Rating:         46,
			Tags:           []string{"City", "Beach", "Cultural"},
			PricePerPerson: 1000,
			Type:           "Popular",
		},
		{
			Name:           "Maldives",
			Country:        "Maldives",
			Description:    "A tropical paradise with pristine white sand beaches, crystal clear waters, and luxurious overwater bungalows.",
			ImageURL:       "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Rating:         50,
			Tags:           []string{"Beach", "Luxury", "Honeymoon"},
			PricePerPerson: 2500,
			Type:           "Romantic",
		},
	}
}

// Activities returns the demo activity catalog: five Paris activities
// (destination id 1) and two Bali activities (destination id 2). The ids
// assume Destinations() was seeded first into an empty store.
func Activities() []domain.Activity {
	return []domain.Activity{
		{
			DestinationID: 1,
			Name:          "Eiffel Tower Visit",
			Description:   "Visit the iconic Eiffel Tower and enjoy panoramic views of Paris from the observation decks.",
			Duration:      "2-3 hours",
			Category:      "Sightseeing",
			ImageURL:      "https://images.unsplash.com/photo-1511739001486-6bfe10ce785f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "building-2-line",
			IconBg:        "bg-blue-100",
			IconColor:     "text-blue-500",
		},
		{
			DestinationID: 1,
			Name:          "Local Food Tour",
			Description:   "Explore the culinary delights of Paris with a guided food tour through local neighborhoods.",
			Duration:      "3-4 hours",
			Category:      "Food & Dining",
			ImageURL:      "https://images.unsplash.com/photo-1551218808-94e220e084d2?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "restaurant-line",
			IconBg:        "bg-green-100",
			IconColor:     "text-green-500",
		},
		{
			DestinationID: 1,
			Name:          "Louvre Museum",
			Description:   "Explore one of the world's largest and most famous art museums, home to the Mona Lisa.",
			Duration:      "3-5 hours",
			Category:      "Culture",
			ImageURL:      "https://images.unsplash.com/photo-1565636688174-5a58e0f51d28?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "gallery-line",
			IconBg:        "bg-purple-100",
			IconColor:     "text-purple-500",
		},
		{
			DestinationID: 1,
			Name:          "Champs-Élysées Shopping",
			Description:   "Shop along one of the world's most famous avenues, lined with luxury boutiques and shops.",
			Duration:      "2-4 hours",
			Category:      "Shopping",
			ImageURL:      "https://images.unsplash.com/photo-1520048480352-1e6c7dc9a316?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "shopping-bag-line",
			IconBg:        "bg-yellow-100",
			IconColor:     "text-yellow-500",
		},
		{
			DestinationID: 1,
			Name:          "Seine River Cruise",
			Description:   "Enjoy a relaxing cruise along the Seine River and see Paris from a different perspective.",
			Duration:      "1-2 hours",
			Category:      "Sightseeing",
			ImageURL:      "https://images.unsplash.com/photo-1581460436468-39d53783ce41?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "ship-line",
			IconBg:        "bg-red-100",
			IconColor:     "text-red-500",
		},
		{
			DestinationID: 2,
			Name:          "Ubud Monkey Forest",
			Description:   "Explore the natural sanctuary of hundreds of Balinese long-tailed macaques.",
			Duration:      "2-3 hours",
			Category:      "Nature",
			ImageURL:      "https://images.unsplash.com/photo-1578469550956-0e16b69c6a3d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "plant-line",
			IconBg:        "bg-green-100",
			IconColor:     "text-green-500",
		},
		{
			DestinationID: 2,
			Name:          "Tegalalang Rice Terraces",
			Description:   "Visit the stunning rice terraces and learn about the traditional Balinese irrigation system.",
			Duration:      "2-3 hours",
			Category:      "Sightseeing",
			ImageURL:      "https://images.unsplash.com/photo-1531973486229-75742a88c381?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			Icon:          "landscape-line",
			IconBg:        "bg-green-100",
			IconColor:     "text-green-500",
		},
	}
}

// SampleTrip returns the demo "Paris Explorer" trip. The weak userId and
// activityId references match the seeding order above.
func SampleTrip() domain.Trip {
	userID := 1
	return domain.Trip{
		UserID:      &userID,
		Name:        "Paris Explorer",
		StartDate:   "2023-06-15",
		EndDate:     "2023-06-22",
		Destination: "Paris, France",
		Travelers:   2,
		Itinerary: []domain.DayPlan{
			{
				Day:  1,
				Date: "2023-06-15",
				Activities: []domain.ActivityEntry{
					{ActivityID: 3, Name: "Louvre Museum", StartTime: "15:00", EndTime: "18:00", Duration: "3h"},
				},
			},
			{
				Day:  2,
				Date: "2023-06-16",
				Activities: []domain.ActivityEntry{
					{ActivityID: 1, Name: "Eiffel Tower Visit", StartTime: "10:00", EndTime: "13:00", Duration: "3h"},
					{ActivityID: 2, Name: "Local Food Tour", StartTime: "14:00", EndTime: "17:00", Duration: "3h"},
				},
			},
		},
	}
}
