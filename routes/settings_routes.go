package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterSettingsRoutes sets up routes for the preferences document under
// /api/settings
func RegisterSettingsRoutes(r *mux.Router, settingsService *services.SettingsService) {
	// Initialize the controller with the SettingsService
	controller := controllers.NewSettingsController(settingsService)

	// Create a subrouter for /api/settings
	settingsRouter := r.PathPrefix("/api/settings").Subrouter()

	// Define routes and their corresponding handlers
	settingsRouter.HandleFunc("", controller.HandleGetSettings).Methods("GET")
	settingsRouter.HandleFunc("", controller.HandleSaveSettings).Methods("PUT")
	settingsRouter.HandleFunc("/age-range", controller.HandleSetAgeRange).Methods("PATCH")
	settingsRouter.HandleFunc("/clear-data", controller.HandleClearAllData).Methods("POST")
}
