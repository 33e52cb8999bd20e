// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrCardNotFound is returned when no card exists for the requested ID.
	// Handlers map this to 404; any other repository error is a store failure (500).
	ErrCardNotFound = errors.New("card not found")
)
