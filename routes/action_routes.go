package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for discovery and swipe operations
// under /api/action
func RegisterActionRoutes(r *mux.Router, actionService *services.ActionService) {
	// Initialize the controller with the ActionService
	controller := controllers.NewActionController(actionService)

	// Create a subrouter for /api/action
	actionRouter := r.PathPrefix("/api/action").Subrouter()

	// Define routes and their corresponding handlers
	actionRouter.HandleFunc("/discover", controller.HandleDiscover).Methods("GET")
	actionRouter.HandleFunc("/swipe", controller.HandleSwipe).Methods("POST")
}
