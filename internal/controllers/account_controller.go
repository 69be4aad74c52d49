package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/services"
	"github.com/jobvip/backend/internal/utils"
)

var accountValidate = validator.New()

type AccountController struct {
	accountService       services.AccountService
	passwordResetService services.PasswordResetService
}

func NewAccountController(
	accountService services.AccountService,
	passwordResetService services.PasswordResetService,
) *AccountController {
	return &AccountController{
		accountService:       accountService,
		passwordResetService: passwordResetService,
	}
}

// ----------------------------------------------------------------
// POST /api/account/postRegister
// ----------------------------------------------------------------
func (c *AccountController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for register payload", nil, err,
		)
		return
	}
	if err := accountValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	account, svcErr := c.accountService.Register(r.Context(), &req)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.RegisterResponse{
		Success: true,
		Message: "Account registered successfully",
		Account: account,
	})
}

// ----------------------------------------------------------------
// GET /api/account/listAccount
// ----------------------------------------------------------------
func (c *AccountController) ListAccountsHandler(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.accountService.ListActive(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list accounts")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to list accounts", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, accounts)
}

// ----------------------------------------------------------------
// PATCH  /api/account/softDeleteAccount/{id}   (sets status=inactive)
// DELETE /api/account/deleteAccount/{id}
// ----------------------------------------------------------------
func (c *AccountController) SoftDeleteHandler(w http.ResponseWriter, r *http.Request) {
	c.deleteAccount(w, r, c.accountService.SoftDelete, "Account deactivated")
}

func (c *AccountController) HardDeleteHandler(w http.ResponseWriter, r *http.Request) {
	c.deleteAccount(w, r, c.accountService.HardDelete, "Account deleted")
}

func (c *AccountController) deleteAccount(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID) error,
	message string,
) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Account id must be a valid UUID", nil, err,
		)
		return
	}

	if svcErr := op(r.Context(), id); svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Success: true,
		Message: message,
	})
}

// ----------------------------------------------------------------
// POST /api/account/forgot
// ----------------------------------------------------------------
func (c *AccountController) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for forgot-password payload", nil, err,
		)
		return
	}
	if err := accountValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	if svcErr := c.passwordResetService.RequestReset(r.Context(), req.Email, req.Channel); svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Success: true,
		Message: "OTP has been sent",
	})
}

// ----------------------------------------------------------------
// POST /api/account/otp
// ----------------------------------------------------------------
func (c *AccountController) VerifyOTPHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for verify-otp payload", nil, err,
		)
		return
	}
	if err := accountValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	if svcErr := c.passwordResetService.VerifyCode(r.Context(), req.Email, req.OTP); svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Success: true,
		Message: "OTP verified",
	})
}

// ----------------------------------------------------------------
// POST /api/account/resetPassword
// ----------------------------------------------------------------
func (c *AccountController) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for reset-password payload", nil, err,
		)
		return
	}
	if err := accountValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	if svcErr := c.passwordResetService.ResetPassword(r.Context(), req.Email, req.NewPassword); svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Success: true,
		Message: "Password has been reset",
	})
}
