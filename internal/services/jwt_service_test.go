package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jobvip/backend/internal/config"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(&config.Config{
		JWTSecret:         []byte("unit-test-secret"),
		AccessTokenExpiry: time.Hour,
	})

	accountID := uuid.New()
	token, err := svc.GenerateAccessToken(accountID, "holder@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, accountID, parsedID)
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	issuer := NewJWTService(&config.Config{
		JWTSecret:         []byte("secret-a"),
		AccessTokenExpiry: time.Hour,
	})
	verifier := NewJWTService(&config.Config{
		JWTSecret:         []byte("secret-b"),
		AccessTokenExpiry: time.Hour,
	})

	token, err := issuer.GenerateAccessToken(uuid.New(), "holder@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	svc := NewJWTService(&config.Config{
		JWTSecret:         []byte("unit-test-secret"),
		AccessTokenExpiry: -time.Minute,
	})

	token, err := svc.GenerateAccessToken(uuid.New(), "holder@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGarbageTokenRejected(t *testing.T) {
	svc := NewJWTService(&config.Config{
		JWTSecret:         []byte("unit-test-secret"),
		AccessTokenExpiry: time.Hour,
	})

	_, err := svc.ValidateAccessToken("not.a.token")
	require.Error(t, err)
}
