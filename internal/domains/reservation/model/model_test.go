package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"parkdz/internal/domains/reservation/model"
)

func TestDurationHours(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{
			name: "exact hours",
			end:  start.Add(3 * time.Hour),
			want: 3,
		},
		{
			name: "started hour counts as full",
			end:  start.Add(2*time.Hour + time.Minute),
			want: 3,
		},
		{
			name: "under an hour billed as one",
			end:  start.Add(20 * time.Minute),
			want: 1,
		},
		{
			name: "zero duration billed as one",
			end:  start,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DurationHours(start, tt.end))
		})
	}
}

func TestCalculateCost(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 150.0, model.CalculateCost(start, start.Add(3*time.Hour), 50))
	assert.Equal(t, 200.0, model.CalculateCost(start, start.Add(3*time.Hour+time.Second), 50))
	assert.Equal(t, 50.0, model.CalculateCost(start, start.Add(5*time.Minute), 50))
}
