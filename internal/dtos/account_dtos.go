package dtos

import "github.com/jobvip/backend/internal/models"

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=11"`
	Password    string `json:"password" validate:"required,min=6,max=20"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
}

type RegisterResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Account *models.Account `json:"account"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	AccessToken string          `json:"access_token"`
	Account     *models.Account `json:"account"`
}

type ForgotPasswordRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Channel string `json:"channel" validate:"omitempty,oneof=email sms"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=20"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
