package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"parkdz/internal/domains/checkout/model"
	reservationModel "parkdz/internal/domains/reservation/model"
)

func TestSettleExit(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	session := model.Session{
		ID:               "res-1",
		Matricule:        "16-123-456",
		ReservationStart: entry,
	}

	tests := []struct {
		name         string
		exitTime     time.Time
		covering     coveringWindow
		hasCovering  bool
		wantStatus   string
		wantAmount   float64
		wantOverstay int
		wantDuration int
	}{
		{
			name:         "covered exit before reservation end",
			exitTime:     entry.Add(90 * time.Minute),
			covering:     coveringWindow{ReservationEnd: entry.Add(2 * time.Hour)},
			hasCovering:  true,
			wantStatus:   reservationModel.StatusPaid,
			wantAmount:   0,
			wantDuration: 90,
		},
		{
			name:         "covered exit exactly at reservation end",
			exitTime:     entry.Add(2 * time.Hour),
			covering:     coveringWindow{ReservationEnd: entry.Add(2 * time.Hour)},
			hasCovering:  true,
			wantStatus:   reservationModel.StatusPaid,
			wantAmount:   0,
			wantDuration: 120,
		},
		{
			name:         "overstay past reservation end",
			exitTime:     entry.Add(2*time.Hour + 25*time.Minute),
			covering:     coveringWindow{ReservationEnd: entry.Add(2 * time.Hour)},
			hasCovering:  true,
			wantStatus:   reservationModel.StatusOverstay,
			wantAmount:   0,
			wantOverstay: 25,
			wantDuration: 145,
		},
		{
			name:         "walk-in billed per started hour",
			exitTime:     entry.Add(2*time.Hour + time.Minute),
			hasCovering:  false,
			wantStatus:   reservationModel.StatusUnpaid,
			wantAmount:   300,
			wantDuration: 121,
		},
		{
			name:         "short walk-in billed one hour minimum",
			exitTime:     entry.Add(10 * time.Minute),
			hasCovering:  false,
			wantStatus:   reservationModel.StatusUnpaid,
			wantAmount:   100,
			wantDuration: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := settleExit(session, tt.exitTime, tt.covering, tt.hasCovering, 100)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantAmount, res.AmountDzd)
			assert.Equal(t, tt.wantOverstay, res.OverstayMinutes)
			assert.Equal(t, tt.wantDuration, res.DurationMinutes)
			assert.Equal(t, tt.exitTime, res.ExitTime)
		})
	}
}
