package models

import "time"

// UserProfile defines the structure for user profiles
type UserProfile struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"password"` // stored in clear text, fixture compatibility only
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Age        int       `json:"age"`
	Bio        string    `json:"bio,omitempty"`
	Occupation string    `json:"occupation,omitempty"`
	Location   string    `json:"location,omitempty"`
	Interests  []string  `json:"interests,omitempty"`
	Photos     []string  `json:"photos,omitempty"`
	IsOnline   bool      `json:"isOnline"`
	LastSeen   time.Time `json:"lastSeen"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (p UserProfile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// PrimaryPhoto returns the first photo URI, the profile's display picture.
func (p UserProfile) PrimaryPhoto() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0]
}

// Store keys for profile and session documents
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
)
