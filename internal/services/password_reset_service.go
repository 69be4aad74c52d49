package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jobvip/backend/internal/config"
	"github.com/jobvip/backend/internal/otp"
	"github.com/jobvip/backend/internal/repositories"
	"github.com/jobvip/backend/internal/utils"
)

const otpLength = 6

// ---------------------------------------------------------------------
// PasswordResetService interface
// ---------------------------------------------------------------------

// PasswordResetService drives the three-step reset flow: request a code,
// verify it, then set the new password. Codes live in the process-local
// otp.Store.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email, channel string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type passwordResetService struct {
	accountRepo repositories.AccountRepository
	store       *otp.Store
	notifier    PasswordResetNotifier
	cfg         *config.Config
}

func NewPasswordResetService(
	accountRepo repositories.AccountRepository,
	store *otp.Store,
	notifier PasswordResetNotifier,
	cfg *config.Config,
) PasswordResetService {
	return &passwordResetService{
		accountRepo: accountRepo,
		store:       store,
		notifier:    notifier,
		cfg:         cfg,
	}
}

// RequestReset generates a fresh code for the account and delivers it
// over the requested channel. A repeat request overwrites the previous
// code.
func (s *passwordResetService) RequestReset(ctx context.Context, email, channel string) error {
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeNotFound, "Email does not exist")
	}

	code, err := utils.RandomNumericString(otpLength)
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	s.store.Put(email, code, s.cfg.OTPExpiry)

	switch channel {
	case "sms":
		if !s.cfg.SMSEnabled() {
			s.store.Clear(email)
			return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation, "SMS delivery is not available")
		}
		err = s.notifier.SendResetSMS(ctx, account.PhoneNumber, code)
	default:
		err = s.notifier.SendResetEmail(ctx, email, code)
	}
	if err != nil {
		s.store.Clear(email)
		return &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Failed to send OTP",
			Err:        err,
		}
	}

	utils.Logger.Infof("Password reset OTP issued for %s via %s", email, channelOrDefault(channel))
	return nil
}

// VerifyCode checks the submitted code and, on success, opens the
// reset window for the email.
func (s *passwordResetService) VerifyCode(ctx context.Context, email, code string) error {
	err := s.store.Verify(email, code)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, otp.ErrExpired):
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeOTPExpired, "OTP expired")
	case errors.Is(err, otp.ErrNotFound):
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeInvalidOTP, "OTP not found or expired")
	case errors.Is(err, otp.ErrMismatch):
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeInvalidOTP, "Incorrect OTP")
	default:
		return err
	}
}

// ResetPassword requires a prior successful verification for the email.
// The verified mark is consumed so the window is single use.
func (s *passwordResetService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if !s.store.IsVerified(email) {
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeOTPNotVerified, "OTP has not been verified")
	}

	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account == nil {
		return utils.NewAppError(http.StatusBadRequest, utils.ErrCodeNotFound, "Email does not exist")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accountRepo.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}

	s.store.Clear(email)
	utils.Logger.Infof("Password reset completed for %s", email)
	return nil
}

func channelOrDefault(channel string) string {
	if channel == "" {
		return "email"
	}
	return channel
}
