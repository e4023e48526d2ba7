package controllers

import (
	"encoding/json"
	"net/http"

	"spark_server/models"
	"spark_server/services"
)

// ActionController handles HTTP requests for discovery and swipes
type ActionController struct {
	ActionService *services.ActionService
}

// NewActionController creates a new ActionController instance
func NewActionController(actionService *services.ActionService) *ActionController {
	return &ActionController{ActionService: actionService}
}

// HandleDiscover returns the swipe deck for the current user
func (ac *ActionController) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	profiles, err := ac.ActionService.GetDiscoverableProfiles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}

// HandleSwipe records a swipe and reports the match outcome
func (ac *ActionController) HandleSwipe(w http.ResponseWriter, r *http.Request) {
	var request struct {
		TargetUserID string `json:"targetUserId"`
		Action       string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.TargetUserID == "" {
		http.Error(w, "targetUserId is required", http.StatusBadRequest)
		return
	}
	if request.Action != models.SwipeActionLike && request.Action != models.SwipeActionPass {
		http.Error(w, "action must be \"like\" or \"pass\"", http.StatusBadRequest)
		return
	}

	outcome, err := ac.ActionService.Swipe(r.Context(), request.TargetUserID, request.Action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}
