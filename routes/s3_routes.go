package routes

import (
	"spark_server/controllers"
	"spark_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for presigned photo URLs under /api/s3
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	s3Router := r.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/uploadURL", controller.HandleUploadURL).Methods("GET")
	s3Router.HandleFunc("/readURL", controller.HandleReadURL).Methods("GET")
}
