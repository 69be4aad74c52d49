package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/middleware"
	"github.com/jobvip/backend/internal/services"
	"github.com/jobvip/backend/internal/utils"
)

var authValidate = validator.New()

type AuthController struct {
	accountService services.AccountService
}

func NewAuthController(accountService services.AccountService) *AuthController {
	return &AuthController{accountService: accountService}
}

// ----------------------------------------------------------------
// POST /api/auth/login
// POST /api/account/postLogin
// ----------------------------------------------------------------
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for login payload", nil, err,
		)
		return
	}
	if err := authValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	account, token, svcErr := c.accountService.Login(r.Context(), req.Email, req.Password)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Success:     true,
		Message:     "Login successful",
		AccessToken: token,
		Account:     account,
	})
}

// ----------------------------------------------------------------
// GET /api/auth/profile   (behind AuthMiddleware)
// ----------------------------------------------------------------
func (c *AuthController) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := r.Context().Value(middleware.ContextKeyAccountID).(uuid.UUID)
	if !ok {
		utils.RespondErrorWithCode(
			w, http.StatusUnauthorized, utils.ErrCodeUnauthorized,
			"No account in context", nil,
		)
		return
	}

	account, svcErr := c.accountService.GetProfile(r.Context(), accountID)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, account)
}
