package controllers

import (
	"net/http"

	"spark_server/services"
)

// S3Controller handles HTTP requests for presigned photo URLs
type S3Controller struct {
	S3Service *services.S3Service
}

// NewS3Controller creates a new S3Controller instance
func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

func (s3c *S3Controller) configured(w http.ResponseWriter) bool {
	if s3c.S3Service == nil || s3c.S3Service.Bucket == "" {
		http.Error(w, "photo storage is not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

// HandleUploadURL returns a presigned PUT URL for a new photo
func (s3c *S3Controller) HandleUploadURL(w http.ResponseWriter, r *http.Request) {
	if !s3c.configured(w) {
		return
	}

	fileName := r.URL.Query().Get("fileName")
	fileType := r.URL.Query().Get("fileType")
	if fileName == "" || fileType == "" {
		http.Error(w, "fileName and fileType are required", http.StatusBadRequest)
		return
	}

	url, key, err := s3c.S3Service.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"uploadUrl": url, "key": key})
}

// HandleReadURL returns a presigned GET URL for a stored photo
func (s3c *S3Controller) HandleReadURL(w http.ResponseWriter, r *http.Request) {
	if !s3c.configured(w) {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	url, err := s3c.S3Service.GenerateReadURL(r.Context(), key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"readUrl": url})
}
