package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile and session
// operations under /api/profile
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService) {
	// Initialize the controller with the UserProfileService
	controller := controllers.NewUserProfileController(userProfileService)

	// Create a subrouter for /api/profile
	profileRouter := r.PathPrefix("/api/profile").Subrouter()

	// Define routes and their corresponding handlers
	profileRouter.HandleFunc("/register", controller.HandleRegister).Methods("POST")
	profileRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	profileRouter.HandleFunc("/logout", controller.HandleLogout).Methods("POST")
	profileRouter.HandleFunc("/me", controller.HandleMe).Methods("GET")
	profileRouter.HandleFunc("/me", controller.HandleUpdateProfile).Methods("PUT")
}
