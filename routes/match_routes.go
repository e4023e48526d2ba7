package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match-list operations under /api/match
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, userProfileService *services.UserProfileService) {
	// Initialize the controller with the MatchService
	controller := controllers.NewMatchController(matchService, userProfileService)

	// Create a subrouter for /api/match
	matchRouter := r.PathPrefix("/api/match").Subrouter()

	// Define routes and their corresponding handlers
	matchRouter.HandleFunc("/matches", controller.HandleGetMatches).Methods("GET")
	matchRouter.HandleFunc("/admirers", controller.HandleGetAdmirers).Methods("GET")
}
