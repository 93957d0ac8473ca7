package dto

import (
	"time"

	"parkdz/internal/domains/company/model"
	parkingModel "parkdz/internal/domains/parking/model"
	parkingDto "parkdz/internal/domains/parking/model/dto"
	userModel "parkdz/internal/domains/user/model"
	gDto "parkdz/shared/dto"
	gModel "parkdz/shared/model"
	"parkdz/shared/timezone"

	"github.com/google/uuid"
)

type RegisterCompanyRequest struct {
	CompanyName        string `json:"company_name"        validate:"required,max=150"`
	Email              string `json:"email"               validate:"required,email"`
	Phone              string `json:"phone"               validate:"required,max=20"`
	Address            string `json:"address"             validate:"required,max=255"`
	Wilaya             string `json:"wilaya"              validate:"required,max=100"`
	Commune            string `json:"commune"             validate:"required,max=100"`
	Password           string `json:"password"            validate:"required,min=8"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=50"`
}

// ToModels builds the owning user account and the company row; both are
// inserted in one transaction by the repository.
func (r *RegisterCompanyRequest) ToModels(hashedPassword string) (userModel.User, model.Company) {
	now := timezone.Now()

	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  r.Email,
		ModifiedBy: r.Email,
	}

	user := userModel.User{
		ID:                 uuid.NewString(),
		Username:           r.CompanyName,
		Email:              r.Email,
		Phone:              r.Phone,
		Password:           hashedPassword,
		IsCompany:          true,
		RegistrationNumber: &r.RegistrationNumber,
		Metadata:           meta,
	}

	company := model.Company{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		CompanyName:      r.CompanyName,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		Wilaya:           r.Wilaya,
		Commune:          r.Commune,
		SubscriptionPlan: model.SubscriptionPlanBasic,
		Metadata:         meta,
	}

	return user, company
}

type PaymentRequest struct {
	CompanyID string  `json:"company_id" validate:"required,uuid4"`
	Token     string  `json:"token"      validate:"required"`
	AmountDzd float64 `json:"amount_dzd" validate:"required,gt=0"`
}

type CompanyResponse struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	CompanyName      string `json:"company_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Wilaya           string `json:"wilaya"`
	Commune          string `json:"commune"`
	SubscriptionPlan string `json:"subscription_plan"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(mod model.Company) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.CompanyName = mod.CompanyName
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Address = mod.Address
	r.Wilaya = mod.Wilaya
	r.Commune = mod.Commune
	r.SubscriptionPlan = mod.SubscriptionPlan
	r.Metadata.FromModel(mod.Metadata)
}

type PaymentResponse struct {
	TransactionID    string  `json:"transaction_id"`
	Provider         string  `json:"provider"`
	AmountDzd        float64 `json:"amount_dzd"`
	SubscriptionPlan string  `json:"subscription_plan"`
}

type DailyReservationCountResponse struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

type AnalyticsResponse struct {
	TotalLocations    int                             `json:"total_locations"`
	TotalSpots        int                             `json:"total_spots"`
	TotalReservations int                             `json:"total_reservations"`
	Daily             []DailyReservationCountResponse `json:"daily_reservations"`
}

func (r *AnalyticsResponse) FromModel(mod model.Analytics) {
	r.TotalLocations = mod.TotalLocations
	r.TotalSpots = mod.TotalSpots
	r.TotalReservations = mod.TotalReservations

	r.Daily = make([]DailyReservationCountResponse, len(mod.Daily))
	for i, day := range mod.Daily {
		r.Daily[i] = DailyReservationCountResponse{Day: day.Day, Count: day.Count}
	}
}

type CompanyLocationsResponse struct {
	Company   CompanyResponse               `json:"company"`
	Locations []parkingDto.LocationResponse `json:"locations"`
}

func (r *CompanyLocationsResponse) FromModels(company model.Company, locations []parkingModel.ParkingLocation) {
	r.Company.FromModel(company)

	r.Locations = make([]parkingDto.LocationResponse, len(locations))
	for i, location := range locations {
		r.Locations[i].FromModel(location)
	}
}
