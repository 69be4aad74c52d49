package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/models"
	"github.com/jobvip/backend/internal/repositories"
	"github.com/jobvip/backend/internal/utils"
)

// ---------------------------------------------------------------------
// AccountService interface
// ---------------------------------------------------------------------

type AccountService interface {
	Register(ctx context.Context, req *dtos.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, string, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	ListActive(ctx context.Context) ([]*models.Account, error)
	SoftDelete(ctx context.Context, accountID uuid.UUID) error
	HardDelete(ctx context.Context, accountID uuid.UUID) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type accountService struct {
	accountRepo repositories.AccountRepository
	jwtService  JWTService
}

func NewAccountService(accountRepo repositories.AccountRepository, jwtService JWTService) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// ---------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------

// Register pre-checks email and phone uniqueness for friendly messages;
// the unique constraints remain authoritative and a concurrent insert is
// mapped from the 23505 error.
func (s *accountService) Register(ctx context.Context, req *dtos.RegisterRequest) (*models.Account, error) {
	if existing, err := s.accountRepo.GetByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Email already in use",
			Err:        utils.ErrEmailExists,
		}
	}

	if existing, err := s.accountRepo.GetByPhoneNumber(ctx, req.PhoneNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Phone number already in use",
			Err:        utils.ErrPhoneExists,
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		ID:          uuid.New(),
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    hash,
		Status:      models.AccountStatusActive,
	}
	if req.Gender != "" {
		account.Gender = &req.Gender
	}
	if req.DateOfBirth != "" {
		dob, parseErr := time.Parse("2006-01-02", req.DateOfBirth)
		if parseErr != nil {
			return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation, "date_of_birth must be YYYY-MM-DD")
		}
		account.DateOfBirth = &dob
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, utils.NewAppError(http.StatusConflict, utils.ErrCodeConflict, "Email or phone number already in use")
		}
		return nil, err
	}

	created, err := s.accountRepo.GetByID(ctx, account.ID)
	if err != nil || created == nil {
		utils.Logger.WithError(err).Warn("Could not re-read account after create, returning in-memory copy")
		return account, nil
	}
	return created, nil
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------

// Login checks account status before the password so banned and inactive
// holders get a specific message. A missing account and a wrong password
// share one generic message.
func (s *accountService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if account == nil {
		return nil, "", utils.NewAppError(http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Email or password is incorrect")
	}

	switch account.Status {
	case models.AccountStatusBanned:
		return nil, "", utils.NewAppError(http.StatusForbidden, utils.ErrCodeAccountBanned, "Account is locked")
	case models.AccountStatusInactive:
		return nil, "", utils.NewAppError(http.StatusForbidden, utils.ErrCodeAccountInactive, "Account is not activated")
	}

	if !utils.CheckPasswordHash(password, account.Password) {
		return nil, "", utils.NewAppError(http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Email or password is incorrect")
	}

	token, err := s.jwtService.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign access token: %w", err)
	}

	if touchErr := s.accountRepo.TouchUpdatedAt(ctx, account.ID); touchErr != nil {
		utils.Logger.WithError(touchErr).Warnf("Failed to touch updated_at for account %s", account.ID)
	}

	return account, token, nil
}

// ---------------------------------------------------------------------
// Reads / deletes
// ---------------------------------------------------------------------

func (s *accountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound, "Account not found")
	}
	return account, nil
}

func (s *accountService) ListActive(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.ListActive(ctx)
}

// SoftDelete flips the account to inactive, keeping the row for audit.
func (s *accountService) SoftDelete(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound, "Account not found")
	}
	return s.accountRepo.UpdateStatus(ctx, accountID, models.AccountStatusInactive)
}

func (s *accountService) HardDelete(ctx context.Context, accountID uuid.UUID) error {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound, "Account not found")
	}
	return s.accountRepo.Delete(ctx, accountID)
}
