package dtos

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

var validate = validator.New()

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:       "holder@example.com",
		PhoneNumber: "0912345678",
		Password:    "secret1",
	}
}

func TestRegisterRequestValidation(t *testing.T) {
	require.NoError(t, validate.Struct(validRegisterRequest()))

	req := validRegisterRequest()
	req.Email = "not-an-email"
	require.Error(t, validate.Struct(req))

	req = validRegisterRequest()
	req.PhoneNumber = "091234567" // 9 digits
	require.Error(t, validate.Struct(req))

	req = validRegisterRequest()
	req.PhoneNumber = "091234567890" // 12 digits
	require.Error(t, validate.Struct(req))

	req = validRegisterRequest()
	req.PhoneNumber = "09123456789" // 11 digits
	require.NoError(t, validate.Struct(req))

	req = validRegisterRequest()
	req.Password = "five5"
	require.Error(t, validate.Struct(req))

	req = validRegisterRequest()
	req.Password = "p23456789012345678901" // 21 chars
	require.Error(t, validate.Struct(req))
}

func TestForgotPasswordRequestChannel(t *testing.T) {
	require.NoError(t, validate.Struct(ForgotPasswordRequest{Email: "a@b.co"}))
	require.NoError(t, validate.Struct(ForgotPasswordRequest{Email: "a@b.co", Channel: "sms"}))
	require.NoError(t, validate.Struct(ForgotPasswordRequest{Email: "a@b.co", Channel: "email"}))
	require.Error(t, validate.Struct(ForgotPasswordRequest{Email: "a@b.co", Channel: "pigeon"}))
	require.Error(t, validate.Struct(ForgotPasswordRequest{Email: "nope"}))
}
