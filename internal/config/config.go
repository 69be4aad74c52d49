package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/jobvip/backend/internal/utils"
)

const (
	OrganizationName = "JobVip"
	AppName          = "jobvip-api"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	Env              string

	// Database
	DBUrl string

	// Auth
	JWTSecret         []byte
	AccessTokenExpiry time.Duration

	// Password-reset OTP flow
	OTPExpiry         time.Duration
	OTPVerifiedWindow time.Duration

	// SendGrid / Twilio for OTP delivery
	SendGridAPIKey      string
	SendgridFromEmail   string
	SendgridSandboxMode bool
	TwilioAccountSID    string
	TwilioAuthToken     string
	TwilioFromPhone     string
}

// LoadConfig reads the whole configuration once at process start. Required
// values are fatal when missing; there is no hot-reload.
//
// When BWS_ACCESS_TOKEN is set, secrets are pulled from the Bitwarden
// project for the current environment and override the process
// environment; otherwise everything comes from env vars / .env.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found, relying on process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	secret := loadSecretLookup(env)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}
	dbURL := secret("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL is missing")
	}
	jwtSecret := secret("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET is missing")
	}
	sgAPIKey := secret("SENDGRID_API_KEY")
	if sgAPIKey == "" {
		utils.Logger.Fatal("SENDGRID_API_KEY is missing")
	}

	appUrl := os.Getenv("APP_URL")
	if appUrl == "" {
		appUrl = "http://localhost:5173"
	}

	sgFrom := os.Getenv("SENDGRID_FROM_EMAIL")
	if sgFrom == "" {
		utils.Logger.Warn("SENDGRID_FROM_EMAIL is empty, defaulting to no-reply@jobvip.dev")
		sgFrom = "no-reply@jobvip.dev"
	}
	sgSandbox, _ := strconv.ParseBool(os.Getenv("SENDGRID_SANDBOX_MODE"))

	// Twilio is optional: without credentials the SMS delivery channel for
	// password-reset codes is unavailable and requests for it are rejected.
	twilioSID := secret("TWILIO_ACCOUNT_SID")
	twilioToken := secret("TWILIO_AUTH_TOKEN")
	twilioFrom := os.Getenv("TWILIO_FROM_PHONE")
	if twilioSID == "" || twilioToken == "" {
		utils.Logger.Warn("Twilio credentials missing; SMS OTP delivery disabled")
	}

	return &Config{
		OrganizationName:    OrganizationName,
		AppName:             AppName,
		AppPort:             appPort,
		AppUrl:              appUrl,
		Env:                 env,
		DBUrl:               dbURL,
		JWTSecret:           []byte(jwtSecret),
		AccessTokenExpiry:   7 * 24 * time.Hour,
		OTPExpiry:           3 * time.Minute,
		OTPVerifiedWindow:   15 * time.Minute,
		SendGridAPIKey:      sgAPIKey,
		SendgridFromEmail:   sgFrom,
		SendgridSandboxMode: sgSandbox,
		TwilioAccountSID:    twilioSID,
		TwilioAuthToken:     twilioToken,
		TwilioFromPhone:     twilioFrom,
	}
}

func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

// loadSecretLookup returns a lookup over the Bitwarden project for env,
// falling back to the process environment per key. Without a
// BWS_ACCESS_TOKEN the lookup is plain os.Getenv.
func loadSecretLookup(env string) func(string) string {
	if os.Getenv("BWS_ACCESS_TOKEN") == "" {
		return os.Getenv
	}

	client, err := utils.NewBWSSecretsClient()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize BWSSecretsClient")
	}
	defer client.Close()

	projectName := fmt.Sprintf("%s-%s", AppName, env)
	secrets, err := client.GetBWSSecrets(projectName)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to fetch secrets from BWS")
	}
	utils.Logger.Infof("Loaded %d secrets from BWS project %s", len(secrets), projectName)

	return func(key string) string {
		if v, ok := secrets[key]; ok && v != "" {
			return v
		}
		return os.Getenv(key)
	}
}
