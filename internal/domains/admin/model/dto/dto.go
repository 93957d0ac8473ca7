package dto

import (
	"parkdz/internal/domains/admin/model"
	parkingDto "parkdz/internal/domains/parking/model/dto"
	reservationDto "parkdz/internal/domains/reservation/model/dto"
)

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type RecentReservationResponse struct {
	reservationDto.ReservationResponse
	LocationName string `json:"location_name"`
}

type MetricsResponse struct {
	TotalUsers          int                           `json:"total_users"`
	TotalLocations      int                           `json:"total_locations"`
	ActiveLocations     int                           `json:"active_locations"`
	TotalReservations   int                           `json:"total_reservations"`
	StatusCounts        []StatusCountResponse         `json:"status_counts"`
	CompletedRevenueDzd float64                       `json:"completed_revenue_dzd"`
	RecentReservations  []RecentReservationResponse   `json:"recent_reservations"`
	RecentLocations     []parkingDto.LocationResponse `json:"recent_locations"`
}

func (r *MetricsResponse) FromModel(mod model.Metrics) {
	r.TotalUsers = mod.TotalUsers
	r.TotalLocations = mod.TotalLocations
	r.ActiveLocations = mod.ActiveLocations
	r.TotalReservations = mod.TotalReservations
	r.CompletedRevenueDzd = mod.CompletedRevenueDzd

	r.StatusCounts = make([]StatusCountResponse, len(mod.StatusCounts))
	for i, count := range mod.StatusCounts {
		r.StatusCounts[i] = StatusCountResponse{Status: count.Status, Count: count.Count}
	}

	r.RecentReservations = make([]RecentReservationResponse, len(mod.Recent))
	for i, recent := range mod.Recent {
		r.RecentReservations[i].ReservationResponse.FromModel(recent.Reservation)
		r.RecentReservations[i].LocationName = recent.LocationName
	}

	r.RecentLocations = make([]parkingDto.LocationResponse, len(mod.RecentLocations))
	for i, location := range mod.RecentLocations {
		r.RecentLocations[i].FromModel(location)
	}
}
