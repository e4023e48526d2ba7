package controllers

import (
	"encoding/json"
	"net/http"

	"spark_server/models"
	"spark_server/services"
)

// SettingsController handles HTTP requests for the preferences document
type SettingsController struct {
	SettingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController instance
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsService: settingsService}
}

// HandleGetSettings returns the stored settings, defaults when unset
func (sc *SettingsController) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := sc.SettingsService.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// HandleSaveSettings replaces the settings document
func (sc *SettingsController) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := sc.SettingsService.Save(r.Context(), settings); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// HandleSetAgeRange applies one age slider edit with min/max correction
func (sc *SettingsController) HandleSetAgeRange(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Field string `json:"field"`
		Value int    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	settings, err := sc.SettingsService.SetAgeRange(r.Context(), request.Field, request.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// HandleClearAllData wipes the whole store
func (sc *SettingsController) HandleClearAllData(w http.ResponseWriter, r *http.Request) {
	if err := sc.SettingsService.ClearAllData(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "All data cleared"})
}
