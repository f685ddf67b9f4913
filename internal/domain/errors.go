package domain

import "errors"

// Error taxonomy surfaced to the HTTP layer. Services wrap these so handlers
// can map them to status codes with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrBadRequest         = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrWeakPassword = errors.New("password too weak: it must contain at least 1 uppercase letter, 1 lowercase letter, 1 digit, 1 special character, and be at least 8 characters long")
)

// Restaurant search errors
var (
	ErrCityNotFound       = errors.New("city not found")
	ErrNoRestaurants      = errors.New("no restaurants found in the specified area")
	ErrMissingLocation    = errors.New("missing required query parameters: city or coordinates (latitude and longitude)")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
)
