// Package repository provides data access for parking locations and their
// spots. Sentinel errors let the service layer distinguish failure modes
// without inspecting SQL errors.
package repository

import "errors"

// ErrLocationNotFound is returned when a parking location does not exist or
// is inactive where an active one was required.
var ErrLocationNotFound = errors.New("parking location not found")

// ErrSpotNotFound is returned when a parking spot row does not exist.
var ErrSpotNotFound = errors.New("parking spot not found")

// ErrAvailabilityOutOfRange is returned when an administrative override
// would violate 0 <= available_spots <= total_spots.
var ErrAvailabilityOutOfRange = errors.New("available spots out of range")
