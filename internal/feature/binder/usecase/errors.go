// Package usecase implements the business logic for the binder feature.
package usecase

import "errors"

var (
	// ErrInvalidBinderName is returned when a binder name is empty or too long after trimming.
	ErrInvalidBinderName = errors.New("invalid binder name")

	// ErrBinderNotFound is returned when a binder does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrBinderNotFound = errors.New("binder not found")

	// ErrCardNotFound is returned when adding a card ID that is not in the catalog.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardAlreadyInBinder is returned when adding a card that is already in the binder.
	ErrCardAlreadyInBinder = errors.New("card already in binder")

	// ErrCardNotInBinder is returned when removing a card that is not in the binder.
	ErrCardNotInBinder = errors.New("card not in binder")
)
