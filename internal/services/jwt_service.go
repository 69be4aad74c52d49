package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jobvip/backend/internal/config"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

type JWTService interface {
	GenerateAccessToken(accountID uuid.UUID, email string) (string, error)
	ValidateAccessToken(tokenString string) (uuid.UUID, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	secret      []byte
	tokenExpiry time.Duration
}

func NewJWTService(cfg *config.Config) JWTService {
	return &jwtService{
		secret:      cfg.JWTSecret,
		tokenExpiry: cfg.AccessTokenExpiry,
	}
}

func (j *jwtService) GenerateAccessToken(accountID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"iss":   config.OrganizationName,
		"sub":   accountID.String(),
		"email": email,
		"exp":   time.Now().Add(j.tokenExpiry).Unix(),
		"iat":   time.Now().Unix(),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateAccessToken parses and verifies the token and returns the
// account ID from the "sub" claim.
func (j *jwtService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("invalid subject claim")
	}
	return accountID, nil
}
