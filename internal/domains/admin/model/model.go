package model

import (
	parkingModel "parkdz/internal/domains/parking/model"
	reservationModel "parkdz/internal/domains/reservation/model"
)

// StatusCount is one bucket of the reservation status histogram.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// RecentReservation is a reservation row joined with its location name for
// the dashboard feed.
type RecentReservation struct {
	reservationModel.Reservation
	LocationName string `db:"location_name"`
}

// Metrics is the admin dashboard rollup.
type Metrics struct {
	TotalUsers          int
	TotalLocations      int
	ActiveLocations     int
	TotalReservations   int
	StatusCounts        []StatusCount
	CompletedRevenueDzd float64
	Recent              []RecentReservation
	RecentLocations     []parkingModel.ParkingLocation
}
