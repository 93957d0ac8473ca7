package model

import (
	"time"

	"parkdz/shared/model"
)

const (
	TableName  = "companies"
	EntityName = "company"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldCompanyName      = "company_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldWilaya           = "wilaya"
	FieldCommune          = "commune"
	FieldSubscriptionPlan = "subscription_plan"
)

const (
	SubscriptionPlanBasic = "basic"
	SubscriptionPlanPro   = "pro"
)

type Company struct {
	ID               string `db:"id"`
	UserID           string `db:"user_id"`
	CompanyName      string `db:"company_name"`
	Email            string `db:"email"`
	Phone            string `db:"phone"`
	Address          string `db:"address"`
	Wilaya           string `db:"wilaya"`
	Commune          string `db:"commune"`
	SubscriptionPlan string `db:"subscription_plan"`
	model.Metadata
}

// DailyReservationCount is one day of the analytics series.
type DailyReservationCount struct {
	Day   time.Time `db:"day"`
	Count int       `db:"count"`
}

// Analytics aggregates a company's footprint across its locations.
type Analytics struct {
	TotalLocations    int
	TotalSpots        int
	TotalReservations int
	Daily             []DailyReservationCount
}
