package services

import (
	"time"

	"spark_server/models"
)

// SeedProfiles returns the demo profiles the store is bootstrapped with on
// first run, when no users exist yet.
func SeedProfiles() []models.UserProfile {
	now := time.Now().UTC()
	return []models.UserProfile{
		{
			ID:        "1",
			FirstName: "Emma",
			LastName:  "Johnson",
			Email:     "emma@example.com",
			Password:  "password123",
			Age:       25,
			Bio:       "Love traveling, yoga, and trying new cuisines. Looking for genuine connections and meaningful conversations.",
			Photos: []string{
				"https://images.unsplash.com/photo-1494790108755-2616b612b302?w=400&h=600&fit=crop",
				"https://images.unsplash.com/photo-1508214751196-bcfd4ca60f91?w=400&h=600&fit=crop",
			},
			Interests:  []string{"Travel", "Yoga", "Cooking", "Reading"},
			IsOnline:   true,
			LastSeen:   now,
			Location:   "New York, NY",
			Occupation: "Graphic Designer",
			CreatedAt:  now,
		},
		{
			ID:        "2",
			FirstName: "Michael",
			LastName:  "Chen",
			Email:     "michael@example.com",
			Password:  "password123",
			Age:       28,
			Bio:       "Software engineer by day, rock climber by weekend. Always up for an adventure or a good coffee chat.",
			Photos: []string{
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=600&fit=crop",
				"https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400&h=600&fit=crop",
			},
			Interests:  []string{"Rock Climbing", "Coffee", "Technology", "Hiking"},
			IsOnline:   false,
			LastSeen:   now.Add(-time.Hour),
			Location:   "San Francisco, CA",
			Occupation: "Software Engineer",
			CreatedAt:  now,
		},
		{
			ID:        "3",
			FirstName: "Sofia",
			LastName:  "Rodriguez",
			Email:     "sofia@example.com",
			Password:  "password123",
			Age:       23,
			Bio:       "Artist and dreamer. I paint emotions and capture moments. Looking for someone who appreciates art and life.",
			Photos: []string{
				"https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=600&fit=crop",
				"https://images.unsplash.com/photo-1506863530036-1efeddceb993?w=400&h=600&fit=crop",
			},
			Interests:  []string{"Art", "Photography", "Music", "Dancing"},
			IsOnline:   true,
			LastSeen:   now,
			Location:   "Los Angeles, CA",
			Occupation: "Artist",
			CreatedAt:  now,
		},
		{
			ID:        "4",
			FirstName: "James",
			LastName:  "Wilson",
			Email:     "james@example.com",
			Password:  "password123",
			Age:       30,
			Bio:       "Fitness enthusiast and dog lover. Believe in living life to the fullest. Let's explore the city together!",
			Photos: []string{
				"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=600&fit=crop",
				"https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=600&fit=crop",
			},
			Interests:  []string{"Fitness", "Dogs", "Running", "Outdoor Activities"},
			IsOnline:   false,
			LastSeen:   now.Add(-2 * time.Hour),
			Location:   "Chicago, IL",
			Occupation: "Personal Trainer",
			CreatedAt:  now,
		},
		{
			ID:        "5",
			FirstName: "Lily",
			LastName:  "Zhang",
			Email:     "lily@example.com",
			Password:  "password123",
			Age:       26,
			Bio:       "Book lover and tea enthusiast. Always searching for the next great story, both in books and in life.",
			Photos: []string{
				"https://images.unsplash.com/photo-1517841905240-472988babdf9?w=400&h=600&fit=crop",
				"https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=600&fit=crop",
			},
			Interests:  []string{"Reading", "Tea", "Writing", "Museums"},
			IsOnline:   true,
			LastSeen:   now,
			Location:   "Seattle, WA",
			Occupation: "Librarian",
			CreatedAt:  now,
		},
		{
			ID:        "6",
			FirstName: "Alex",
			LastName:  "Thompson",
			Email:     "alex@example.com",
			Password:  "password123",
			Age:       27,
			Bio:       "Musician and foodie. Life is too short for bad music and bland food. Let's discover new places together!",
			Photos: []string{
				"https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=400&h=600&fit=crop",
				"https://images.unsplash.com/photo-1492562080023-ab3db95bfbce?w=400&h=600&fit=crop",
			},
			Interests:  []string{"Music", "Food", "Concerts", "Guitar"},
			IsOnline:   false,
			LastSeen:   now.Add(-30 * time.Minute),
			Location:   "Austin, TX",
			Occupation: "Musician",
			CreatedAt:  now,
		},
	}
}
