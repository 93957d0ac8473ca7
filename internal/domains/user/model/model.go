package model

import (
	"parkdz/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                 = "id"
	FieldUsername           = "username"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldPassword           = "password"
	FieldIsCompany          = "is_company"
	FieldRegistrationNumber = "registration_number"
)

type User struct {
	ID                 string  `db:"id"`
	Username           string  `db:"username"`
	Email              string  `db:"email"`
	Phone              string  `db:"phone"`
	Password           string  `db:"password"`
	IsCompany          bool    `db:"is_company"`
	RegistrationNumber *string `db:"registration_number"`
	model.Metadata
}
