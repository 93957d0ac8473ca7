package dto

import (
	"parkdz/internal/domains/parking/model"
	gDto "parkdz/shared/dto"
	gModel "parkdz/shared/model"
	"parkdz/shared/timezone"

	"github.com/google/uuid"
)

type CreateParkingLocationRequest struct {
	Name         string  `json:"name"         validate:"required,max=150"`
	Address      string  `json:"address"      validate:"required,max=255"`
	Wilaya       string  `json:"wilaya"       validate:"required,max=100"`
	Commune      string  `json:"commune"      validate:"required,max=100"`
	Latitude     float64 `json:"latitude"     validate:"required,gte=-90,lte=90"`
	Longitude    float64 `json:"longitude"    validate:"required,gte=-180,lte=180"`
	ParkingType  string  `json:"parking_type" validate:"required,oneof=public organized"`
	TotalSpots   int     `json:"total_spots"  validate:"required,gte=1"`
	PricePerHour float64 `json:"price_per_hour" validate:"required,gt=0"`
	CompanyID    *string `json:"company_id"   validate:"omitempty,uuid4"`
}

func (c *CreateParkingLocationRequest) ToModel(user string) model.ParkingLocation {
	return model.ParkingLocation{
		ID:           uuid.NewString(),
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		Address:      c.Address,
		Wilaya:       c.Wilaya,
		Commune:      c.Commune,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
		ParkingType:  c.ParkingType,
		TotalSpots:   c.TotalSpots,
		// A new location opens with every spot free.
		AvailableSpots: c.TotalSpots,
		PricePerHour:   c.PricePerHour,
		IsActive:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateParkingLocationRequest struct {
	Name         string  `db:"name"           json:"name"           validate:"omitempty,max=150"`
	Address      string  `db:"address"        json:"address"        validate:"omitempty,max=255"`
	Wilaya       string  `db:"wilaya"         json:"wilaya"         validate:"omitempty,max=100"`
	Commune      string  `db:"commune"        json:"commune"        validate:"omitempty,max=100"`
	PricePerHour float64 `db:"price_per_hour" json:"price_per_hour" validate:"omitempty,gt=0"`
	IsActive     *bool   `db:"is_active"      json:"is_active"      validate:"omitempty"`
}

type UpdateAvailabilityRequest struct {
	AvailableSpots *int `json:"available_spots" validate:"required,gte=0"`
}

type UpdateSpotAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

type SearchParkingRequest struct {
	Latitude     float64  `json:"latitude"     validate:"required,gte=-90,lte=90"`
	Longitude    float64  `json:"longitude"    validate:"required,gte=-180,lte=180"`
	RadiusMeters float64  `json:"radius"       validate:"gt=0"`
	MaxPrice     *float64 `json:"max_price"    validate:"omitempty,gt=0"`
	ParkingType  string   `json:"parking_type" validate:"omitempty,oneof=public organized"`
}

type LocationResponse struct {
	ID             string  `json:"id"`
	CompanyID      *string `json:"company_id,omitempty"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Wilaya         string  `json:"wilaya"`
	Commune        string  `json:"commune"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	ParkingType    string  `json:"parking_type"`
	TotalSpots     int     `json:"total_spots"`
	AvailableSpots int     `json:"available_spots"`
	PricePerHour   float64 `json:"price_per_hour"`
	IsActive       bool    `json:"is_active"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(mod model.ParkingLocation) {
	r.ID = mod.ID
	r.CompanyID = mod.CompanyID
	r.Name = mod.Name
	r.Address = mod.Address
	r.Wilaya = mod.Wilaya
	r.Commune = mod.Commune
	r.Latitude = mod.Latitude
	r.Longitude = mod.Longitude
	r.ParkingType = mod.ParkingType
	r.TotalSpots = mod.TotalSpots
	r.AvailableSpots = mod.AvailableSpots
	r.PricePerHour = mod.PricePerHour
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)
}

type SearchResultResponse struct {
	LocationResponse
	DistanceKm float64 `json:"distance_km"`
}

func (r *SearchResultResponse) FromModel(mod model.LocationWithDistance) {
	r.LocationResponse.FromModel(mod.ParkingLocation)
	r.DistanceKm = mod.DistanceKm
}

type SpotResponse struct {
	ID                string `json:"id"`
	ParkingLocationID string `json:"parking_location_id"`
	SpotNumber        int    `json:"spot_number"`
	IsAvailable       bool   `json:"is_available"`
	SpotType          string `json:"spot_type"`
}

func (r *SpotResponse) FromModel(mod model.ParkingSpot) {
	r.ID = mod.ID
	r.ParkingLocationID = mod.ParkingLocationID
	r.SpotNumber = mod.SpotNumber
	r.IsAvailable = mod.IsAvailable
	r.SpotType = mod.SpotType
}

type LocationDetailResponse struct {
	LocationResponse
	Spots []SpotResponse `json:"spots"`
}

func (r *LocationDetailResponse) FromModels(location model.ParkingLocation, spots []model.ParkingSpot) {
	r.LocationResponse.FromModel(location)

	r.Spots = make([]SpotResponse, len(spots))
	for i, spot := range spots {
		r.Spots[i].FromModel(spot)
	}
}

type WilayaCountResponse struct {
	Wilaya       string `json:"wilaya"`
	ParkingCount int    `json:"parking_count"`
}
