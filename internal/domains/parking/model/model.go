package model

import (
	"parkdz/shared/model"
)

const (
	LocationTableName  = "parking_locations"
	LocationEntityName = "parking_location"

	FieldID             = "id"
	FieldCompanyID      = "company_id"
	FieldName           = "name"
	FieldAddress        = "address"
	FieldWilaya         = "wilaya"
	FieldCommune        = "commune"
	FieldLatitude       = "latitude"
	FieldLongitude      = "longitude"
	FieldParkingType    = "parking_type"
	FieldTotalSpots     = "total_spots"
	FieldAvailableSpots = "available_spots"
	FieldPricePerHour   = "price_per_hour"
	FieldIsActive       = "is_active"
)

const (
	ParkingTypePublic    = "public"
	ParkingTypeOrganized = "organized"
)

const (
	SpotTableName  = "parking_spots"
	SpotEntityName = "parking_spot"

	SpotFieldID          = "id"
	SpotFieldLocationID  = "parking_location_id"
	SpotFieldNumber      = "spot_number"
	SpotFieldIsAvailable = "is_available"
	SpotFieldType        = "spot_type"
)

type ParkingLocation struct {
	ID             string  `db:"id"`
	CompanyID      *string `db:"company_id"`
	Name           string  `db:"name"`
	Address        string  `db:"address"`
	Wilaya         string  `db:"wilaya"`
	Commune        string  `db:"commune"`
	Latitude       float64 `db:"latitude"`
	Longitude      float64 `db:"longitude"`
	ParkingType    string  `db:"parking_type"`
	TotalSpots     int     `db:"total_spots"`
	AvailableSpots int     `db:"available_spots"`
	PricePerHour   float64 `db:"price_per_hour"`
	IsActive       bool    `db:"is_active"`
	model.Metadata
}

// LocationWithDistance is a search result row; distance_km is computed in
// the query via the haversine formula.
type LocationWithDistance struct {
	ParkingLocation
	DistanceKm float64 `db:"distance_km"`
}

type ParkingSpot struct {
	ID                string `db:"id"`
	ParkingLocationID string `db:"parking_location_id"`
	SpotNumber        int    `db:"spot_number"`
	IsAvailable       bool   `db:"is_available"`
	SpotType          string `db:"spot_type"`
	model.Metadata
}

// WilayaCount aggregates active locations per wilaya.
type WilayaCount struct {
	Wilaya       string `db:"wilaya"`
	ParkingCount int    `db:"parking_count"`
}
