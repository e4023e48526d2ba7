package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"spark_server/apperror"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses: validation 400,
// bad credentials 401, missing session 401, storage failures 500. Storage
// detail stays in the log, not the response.
func writeError(w http.ResponseWriter, err error) {
	var ve *apperror.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Message, http.StatusBadRequest)
	case errors.Is(err, apperror.ErrInvalidCredentials):
		http.Error(w, apperror.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperror.ErrNoSession):
		http.Error(w, "no active session", http.StatusUnauthorized)
	case apperror.IsStorage(err):
		log.Printf("storage failure: %v", err)
		http.Error(w, "storage failure", http.StatusInternalServerError)
	default:
		log.Printf("unexpected error: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
