package dto

import (
	"parkdz/internal/domains/user/model"
	gDto "parkdz/shared/dto"
	gModel "parkdz/shared/model"
	"parkdz/shared/timezone"

	"github.com/google/uuid"
)

type RegisterUserRequest struct {
	Username           string  `json:"username"            validate:"required,max=100"`
	Email              string  `json:"email"               validate:"required,email"`
	Phone              string  `json:"phone"               validate:"required,max=20"`
	Password           string  `json:"password"            validate:"required,min=8"`
	IsCompany          bool    `json:"is_company"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=50"`
}

func (r *RegisterUserRequest) ToModel(hashedPassword string) model.User {
	return model.User{
		ID:                 uuid.NewString(),
		Username:           r.Username,
		Email:              r.Email,
		Phone:              r.Phone,
		Password:           hashedPassword,
		IsCompany:          r.IsCompany,
		RegistrationNumber: r.RegistrationNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  r.Email,
			ModifiedBy: r.Email,
		},
	}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID                 string  `json:"id"`
	Username           string  `json:"username"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	IsCompany          bool    `json:"is_company"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.IsCompany = mod.IsCompany
	r.RegistrationNumber = mod.RegistrationNumber
	r.Metadata.FromModel(mod.Metadata)
}
