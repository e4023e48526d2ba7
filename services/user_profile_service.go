package services

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"

	"spark_server/apperror"
	"spark_server/models"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// UserProfileService owns the profile repository and the single active
// session: registration, login/logout, profile edits, fixture bootstrap.
type UserProfileService struct {
	Storage *StorageService
}

func NewUserProfileService(storage *StorageService) *UserProfileService {
	return &UserProfileService{Storage: storage}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	Age             int      `json:"age"`
	Bio             string   `json:"bio"`
	Occupation      string   `json:"occupation"`
	Location        string   `json:"location"`
	Interests       []string `json:"interests"`
	Photos          []string `json:"photos"`
}

func validateRegistration(input RegisterInput) error {
	if strings.TrimSpace(input.FirstName) == "" {
		return apperror.Validation("firstName", "First name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		return apperror.Validation("lastName", "Last name is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return apperror.Validation("email", "Email is required")
	}
	if !emailPattern.MatchString(input.Email) {
		return apperror.Validation("email", "Please enter a valid email address")
	}
	if len(input.Password) < 6 {
		return apperror.Validation("password", "Password must be at least 6 characters")
	}
	if input.Password != input.ConfirmPassword {
		return apperror.Validation("confirmPassword", "Passwords do not match")
	}
	if input.Age < 18 {
		return apperror.Validation("age", "You must be at least 18 years old")
	}
	return nil
}

// Register validates the input, rejects duplicate emails, stores the new
// profile and activates it as the session.
func (s *UserProfileService) Register(ctx context.Context, input RegisterInput) (*models.UserProfile, error) {
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	users, err := s.Storage.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == input.Email {
			return nil, apperror.Validation("email", "Email already registered")
		}
	}

	now := time.Now().UTC()
	profile := models.UserProfile{
		ID:         uuid.NewString(),
		Email:      input.Email,
		Password:   input.Password,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Age:        input.Age,
		Bio:        input.Bio,
		Occupation: input.Occupation,
		Location:   input.Location,
		Interests:  input.Interests,
		Photos:     input.Photos,
		IsOnline:   true,
		LastSeen:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Storage.SaveUser(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.Storage.SetCurrentUser(ctx, profile); err != nil {
		return nil, err
	}

	log.Printf("Registered new user %s (%s)", profile.ID, profile.Email)
	return &profile, nil
}

// Login matches email and password exactly against the stored profiles.
// A miss returns apperror.ErrInvalidCredentials without revealing which
// field was wrong; a hit marks the profile online and activates the session.
func (s *UserProfileService) Login(ctx context.Context, email, password string) (*models.UserProfile, error) {
	users, err := s.Storage.AllUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			u.IsOnline = true
			u.LastSeen = time.Now().UTC()
			if err := s.Storage.SaveUser(ctx, u); err != nil {
				return nil, err
			}
			if err := s.Storage.SetCurrentUser(ctx, u); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, apperror.ErrInvalidCredentials
}

// Logout marks the active profile offline, persists it and clears the
// session. Idempotent when already logged out.
func (s *UserProfileService) Logout(ctx context.Context) error {
	current, err := s.Storage.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}

	current.IsOnline = false
	current.LastSeen = time.Now().UTC()
	if err := s.Storage.SaveUser(ctx, *current); err != nil {
		return err
	}
	return s.Storage.ClearCurrentUser(ctx)
}

// ProfileUpdate carries optional profile edits; nil fields are left as-is.
type ProfileUpdate struct {
	FirstName  *string   `json:"firstName,omitempty"`
	LastName   *string   `json:"lastName,omitempty"`
	Age        *int      `json:"age,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Occupation *string   `json:"occupation,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Interests  *[]string `json:"interests,omitempty"`
	Photos     *[]string `json:"photos,omitempty"`
}

// UpdateProfile merges the edits onto the active profile, stamps updatedAt
// and persists both the repository entry and the session copy.
func (s *UserProfileService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.UserProfile, error) {
	current, err := s.Storage.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperror.ErrNoSession
	}

	if update.FirstName != nil {
		if strings.TrimSpace(*update.FirstName) == "" {
			return nil, apperror.Validation("firstName", "First name is required")
		}
		current.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		current.LastName = *update.LastName
	}
	if update.Age != nil {
		if *update.Age < 18 {
			return nil, apperror.Validation("age", "You must be at least 18 years old")
		}
		current.Age = *update.Age
	}
	if update.Bio != nil {
		current.Bio = *update.Bio
	}
	if update.Occupation != nil {
		current.Occupation = *update.Occupation
	}
	if update.Location != nil {
		current.Location = *update.Location
	}
	if update.Interests != nil {
		current.Interests = *update.Interests
	}
	if update.Photos != nil {
		current.Photos = *update.Photos
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.Storage.SaveUser(ctx, *current); err != nil {
		return nil, err
	}
	if err := s.Storage.SetCurrentUser(ctx, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// CurrentUser returns the active session's profile, nil when logged out.
func (s *UserProfileService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	return s.Storage.CurrentUser(ctx)
}

// GetUser resolves a profile by id, nil when absent.
func (s *UserProfileService) GetUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	return s.Storage.FindUser(ctx, userID)
}

// SeedUsers bootstraps the repository with the demo profiles when empty.
func (s *UserProfileService) SeedUsers(ctx context.Context) error {
	users, err := s.Storage.AllUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	for _, profile := range SeedProfiles() {
		if err := s.Storage.SaveUser(ctx, profile); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d demo profiles", len(SeedProfiles()))
	return nil
}
