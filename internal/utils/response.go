package utils

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	ErrCodeInvalidPayload         = "invalid_payload"
	ErrCodeValidation             = "validation_error"
	ErrCodeUnauthorized           = "unauthorized"
	ErrCodeInvalidCredentials     = "invalid_credentials"
	ErrCodeAccountBanned          = "account_banned"
	ErrCodeAccountInactive        = "account_inactive"
	ErrCodeInvalidOTP             = "invalid_otp"
	ErrCodeOTPExpired             = "otp_expired"
	ErrCodeOTPNotVerified         = "otp_not_verified"
	ErrCodeNotFound               = "not_found"
	ErrCodeConflict               = "conflict"
	ErrCodeInternal               = "internal_server_error"
	ErrCodeExternalServiceFailure = "external_service_failure"
)

// ErrorResponse is the envelope for every non-2xx response. Success is
// always false so clients can branch on a single field.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RespondErrorWithCode builds a JSON error response with a standard
// code and message. The optional `details` is included if non-nil.
func RespondErrorWithCode(
	w http.ResponseWriter,
	status int,
	errorCode string,
	publicMessage string,
	details any,
	devErrs ...error,
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errBody := ErrorResponse{
		Success: false,
		Code:    errorCode,
		Message: publicMessage,
	}
	if details != nil {
		errBody.Details = details
	} else if len(devErrs) > 0 && devErrs[0] != nil && os.Getenv("ENV") != "production" {
		// Surface the internal error to developers outside production.
		errBody.Details = devErrs[0].Error()
	}
	_ = json.NewEncoder(w).Encode(errBody)

	// devErr is optional; only handle if provided
	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}

// RespondWithJSON for successful cases
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
