package controllers

import (
	"encoding/json"
	"net/http"

	"spark_server/services"
)

// UserProfileController handles HTTP requests for registration, login,
// logout and profile edits
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new UserProfileController instance
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// HandleRegister creates a new profile and activates it as the session
func (uc *UserProfileController) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := uc.UserProfileService.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, profile)
}

// HandleLogin authenticates by email and password
func (uc *UserProfileController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Email == "" || request.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	profile, err := uc.UserProfileService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleLogout ends the active session; idempotent when logged out
func (uc *UserProfileController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := uc.UserProfileService.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// HandleMe returns the active session's profile
func (uc *UserProfileController) HandleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := uc.UserProfileService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// HandleUpdateProfile merges edits onto the active profile
func (uc *UserProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := uc.UserProfileService.UpdateProfile(r.Context(), update)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
