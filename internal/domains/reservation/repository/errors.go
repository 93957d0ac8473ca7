// Package repository persists reservations and owns the availability
// accounting that goes with them. Every lifecycle mutation runs inside one
// transaction so the reservation row, the location counter and the spot flag
// move together or not at all.
package repository

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrLocationNotFound is returned when the referenced parking location
	// does not exist or is inactive.
	ErrLocationNotFound = errors.New("parking location not found")

	// ErrCapacityExceeded is returned when a location has no free capacity
	// left at creation time.
	ErrCapacityExceeded = errors.New("no available spots at this location")

	// ErrSpotUnavailable is returned when the explicitly requested spot does
	// not exist at the location or is already taken.
	ErrSpotUnavailable = errors.New("requested parking spot is not available")

	// ErrDuplicateCode is returned when the generated confirmation code
	// collides with an existing one. Callers regenerate and retry.
	ErrDuplicateCode = errors.New("confirmation code already exists")

	// ErrAlreadyCancelled and ErrAlreadyCompleted guard terminal states.
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrAlreadyCompleted = errors.New("reservation is already completed")
)
