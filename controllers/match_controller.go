package controllers

import (
	"net/http"

	"spark_server/services"
)

// MatchController handles HTTP requests for match lists
type MatchController struct {
	MatchService       *services.MatchService
	UserProfileService *services.UserProfileService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService, userProfileService *services.UserProfileService) *MatchController {
	return &MatchController{MatchService: matchService, UserProfileService: userProfileService}
}

func (mc *MatchController) currentUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	profile, err := mc.UserProfileService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return "", false
	}
	if profile == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return "", false
	}
	return profile.ID, true
}

// HandleGetMatches returns the current user's matches with resolved profiles
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := mc.currentUserID(w, r)
	if !ok {
		return
	}

	matches, err := mc.MatchService.GetMatchesFor(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

// HandleGetAdmirers returns profiles that liked the current user and are
// still unswiped
func (mc *MatchController) HandleGetAdmirers(w http.ResponseWriter, r *http.Request) {
	userID, ok := mc.currentUserID(w, r)
	if !ok {
		return
	}

	admirers, err := mc.MatchService.GetAdmirers(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, admirers)
}
