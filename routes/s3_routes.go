package routes

import (
	"unigo_server/controllers"
	"unigo_server/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for profile photo URLs under /api/photos
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	photoRouter := r.PathPrefix("/api/photos").Subrouter()

	photoRouter.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	photoRouter.HandleFunc("/read-url", controller.GenerateReadURL).Methods("GET")
}
