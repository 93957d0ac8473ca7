package dto

import (
	"time"

	"parkdz/internal/domains/checkout/model"
)

type ProcessExitRequest struct {
	Matricule string `json:"matricule" validate:"required,max=20"`
}

type ExitResponse struct {
	ReservationID   string    `json:"reservation_id"`
	Matricule       string    `json:"matricule"`
	LocationName    string    `json:"location_name"`
	EntryTime       time.Time `json:"entry_time"`
	ExitTime        time.Time `json:"exit_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	AmountDzd       float64   `json:"amount_dzd"`
	OverstayMinutes int       `json:"overstay_minutes,omitempty"`
	Message         string    `json:"message"`
}

func (r *ExitResponse) FromModel(mod model.ExitResult, message string) {
	r.ReservationID = mod.Session.ID
	r.Matricule = mod.Session.Matricule
	r.LocationName = mod.Session.LocationName
	r.EntryTime = mod.Session.ReservationStart
	r.ExitTime = mod.ExitTime
	r.DurationMinutes = mod.DurationMinutes
	r.Status = mod.Status
	r.AmountDzd = mod.AmountDzd
	r.OverstayMinutes = mod.OverstayMinutes
	r.Message = message
}
