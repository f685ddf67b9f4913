package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dcamargo/restaurant-finder/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// respondError maps the domain error taxonomy to HTTP statuses. Anything
// outside the taxonomy is a 500 and gets logged with its cause; the client
// only sees a generic message.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrMissingLocation),
		errors.Is(err, domain.ErrInvalidCoordinates),
		errors.Is(err, domain.ErrBadRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCityNotFound),
		errors.Is(err, domain.ErrNoRestaurants),
		errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "User already exists", http.StatusConflict)
	default:
		log.Printf("ERROR [handlers] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
