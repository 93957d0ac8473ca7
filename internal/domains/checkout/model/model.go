package model

import "time"

// Session is the open drive-in row a vehicle leaves behind until it exits:
// a reservation whose reservation_end is still NULL.
type Session struct {
	ID                string    `db:"id"`
	Matricule         string    `db:"matricule"`
	ParkingLocationID string    `db:"parking_location_id"`
	ReservationStart  time.Time `db:"reservation_start"`
	LocationName      string    `db:"location_name"`
}

// ExitResult is the outcome of processing a parking exit.
type ExitResult struct {
	Session         Session
	ExitTime        time.Time
	DurationMinutes int
	Status          string
	AmountDzd       float64
	OverstayMinutes int
}
