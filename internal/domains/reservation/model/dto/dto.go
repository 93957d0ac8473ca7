package dto

import (
	"time"

	"parkdz/internal/domains/reservation/model"

	gDto "parkdz/shared/dto"
)

type CreateReservationRequest struct {
	UserEmail         string    `json:"user_email"          validate:"required,email"`
	Matricule         string    `json:"matricule"           validate:"required,max=20"`
	ParkingLocationID string    `json:"parking_location_id" validate:"required,uuid4"`
	ParkingSpotID     *string   `json:"parking_spot_id"     validate:"omitempty,uuid4"`
	ReservationStart  time.Time `json:"reservation_start"   validate:"required"`
	ReservationEnd    time.Time `json:"reservation_end"     validate:"required"`
}

type ReservationResponse struct {
	ID                string     `json:"id"`
	UserEmail         string     `json:"user_email"`
	Matricule         string     `json:"matricule"`
	ParkingLocationID string     `json:"parking_location_id"`
	ParkingSpotID     *string    `json:"parking_spot_id,omitempty"`
	ReservationStart  time.Time  `json:"reservation_start"`
	ReservationEnd    *time.Time `json:"reservation_end,omitempty"`
	DurationHours     int        `json:"duration_hours"`
	TotalAmountDzd    float64    `json:"total_amount_dzd"`
	ConfirmationCode  string     `json:"confirmation_code"`
	QrCode            string     `json:"qr_code"`
	Status            string     `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.UserEmail = mod.UserEmail
	r.Matricule = mod.Matricule
	r.ParkingLocationID = mod.ParkingLocationID
	r.ParkingSpotID = mod.ParkingSpotID
	r.ReservationStart = mod.ReservationStart
	r.ReservationEnd = mod.ReservationEnd
	r.TotalAmountDzd = mod.TotalAmountDzd
	r.ConfirmationCode = mod.ConfirmationCode
	r.QrCode = mod.QrCode
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)

	if mod.ReservationEnd != nil {
		r.DurationHours = model.DurationHours(mod.ReservationStart, *mod.ReservationEnd)
	}
}

type ReservationDetailResponse struct {
	ReservationResponse
	LocationName string  `json:"location_name"`
	Address      string  `json:"address"`
	Wilaya       string  `json:"wilaya"`
	PricePerHour float64 `json:"price_per_hour"`
	SpotNumber   *int    `json:"spot_number,omitempty"`
	SpotType     *string `json:"spot_type,omitempty"`
}

func (r *ReservationDetailResponse) FromModel(mod model.Detail) {
	r.ReservationResponse.FromModel(mod.Reservation)
	r.LocationName = mod.LocationName
	r.Address = mod.Address
	r.Wilaya = mod.Wilaya
	r.PricePerHour = mod.PricePerHour
	r.SpotNumber = mod.SpotNumber
	r.SpotType = mod.SpotType
}
