package model

import (
	"math"
	"time"

	"parkdz/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID                = "id"
	FieldUserEmail         = "user_email"
	FieldMatricule         = "matricule"
	FieldParkingLocationID = "parking_location_id"
	FieldParkingSpotID     = "parking_spot_id"
	FieldReservationStart  = "reservation_start"
	FieldReservationEnd    = "reservation_end"
	FieldBaseAmountDzd     = "base_amount_dzd"
	FieldTotalAmountDzd    = "total_amount_dzd"
	FieldConfirmationCode  = "confirmation_code"
	FieldQrCode            = "qr_code"
	FieldStatus            = "status"
)

// Reservation status values. Confirmed, cancelled and completed belong to the
// booking lifecycle; paid, overstay and unpaid are terminal states stamped by
// the checkout flow on drive-in sessions.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusPaid      = "paid"
	StatusOverstay  = "overstay"
	StatusUnpaid    = "unpaid"
)

type Reservation struct {
	ID                string     `db:"id"`
	UserEmail         string     `db:"user_email"`
	Matricule         string     `db:"matricule"`
	ParkingLocationID string     `db:"parking_location_id"`
	ParkingSpotID     *string    `db:"parking_spot_id"`
	ReservationStart  time.Time  `db:"reservation_start"`
	ReservationEnd    *time.Time `db:"reservation_end"`
	BaseAmountDzd     float64    `db:"base_amount_dzd"`
	TotalAmountDzd    float64    `db:"total_amount_dzd"`
	ConfirmationCode  string     `db:"confirmation_code"`
	QrCode            string     `db:"qr_code"`
	Status            string     `db:"status"`
	model.Metadata
}

// Detail is a reservation joined with its location and, when one was
// assigned, its spot.
type Detail struct {
	Reservation
	LocationName string  `db:"location_name"`
	Address      string  `db:"address"`
	Wilaya       string  `db:"wilaya"`
	PricePerHour float64 `db:"price_per_hour"`
	SpotNumber   *int    `db:"spot_number"`
	SpotType     *string `db:"spot_type"`
}

// DurationHours is the billed duration of a reservation window. Any started
// hour counts as a full hour.
func DurationHours(start, end time.Time) int {
	hours := int(math.Ceil(end.Sub(start).Hours()))
	if hours < 1 {
		hours = 1
	}

	return hours
}

// CalculateCost prices a reservation window against an hourly rate.
func CalculateCost(start, end time.Time, pricePerHour float64) float64 {
	return float64(DurationHours(start, end)) * pricePerHour
}
