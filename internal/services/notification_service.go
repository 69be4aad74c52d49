package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jobvip/backend/internal/config"
	"github.com/jobvip/backend/internal/utils"
)

// ---------------------------------------------------------------------
// PasswordResetNotifier interface
// ---------------------------------------------------------------------

// PasswordResetNotifier delivers a reset code to the account holder over
// email or SMS.
type PasswordResetNotifier interface {
	SendResetEmail(ctx context.Context, toEmail, code string) error
	SendResetSMS(ctx context.Context, toPhone, code string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type notificationService struct {
	cfg            *config.Config
	sendgridClient *sendgrid.Client
	twilioClient   *twilio.RestClient
}

func NewNotificationService(cfg *config.Config) PasswordResetNotifier {
	sgClient := sendgrid.NewSendClient(cfg.SendGridAPIKey)

	var twClient *twilio.RestClient
	if cfg.SMSEnabled() {
		twClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return &notificationService{
		cfg:            cfg,
		sendgridClient: sgClient,
		twilioClient:   twClient,
	}
}

func (s *notificationService) SendResetEmail(ctx context.Context, toEmail, code string) error {
	from := mail.NewEmail(config.OrganizationName, s.cfg.SendgridFromEmail)
	to := mail.NewEmail("", toEmail)
	subject := config.OrganizationName + " - Password Reset Code"
	plainTextContent := fmt.Sprintf("Your password reset code is %s", code)
	htmlContent := fmt.Sprintf(passwordResetEmailHTML, code, time.Now().Year())
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	if s.cfg.SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	_, sendErr := s.sendgridClient.Send(message)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send password reset email to %s via SendGrid", toEmail)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}

func (s *notificationService) SendResetSMS(ctx context.Context, toPhone, code string) error {
	if s.twilioClient == nil {
		return fmt.Errorf("%w: sms channel is not configured", utils.ErrExternalServiceFailure)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(s.cfg.TwilioFromPhone)
	params.SetBody(fmt.Sprintf("Your %s password reset code is %s", config.OrganizationName, code))

	_, sendErr := s.twilioClient.Api.CreateMessage(params)
	if sendErr != nil {
		utils.Logger.WithError(sendErr).Errorf("Failed to send password reset SMS to %s via Twilio", toPhone)
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, sendErr)
	}
	return nil
}
