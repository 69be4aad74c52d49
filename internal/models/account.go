package models

import (
	"time"

	"github.com/google/uuid"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusBanned   AccountStatus = "banned"
)

// Account for the account table. Password holds the bcrypt hash and is
// never serialized.
type Account struct {
	ID          uuid.UUID     `json:"account_id"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phone_number"`
	Password    string        `json:"-"`
	Status      AccountStatus `json:"status"`
	Gender      *string       `json:"gender"`
	DateOfBirth *time.Time    `json:"date_of_birth"`
	CompanyID   *int64        `json:"company_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
