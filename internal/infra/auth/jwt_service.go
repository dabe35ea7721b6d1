// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"nestly/config"
	"nestly/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard.
type jwtService struct {
	secret string // Secret key for signing tokens.
}

// NewJWTService is the constructor for jwtService.
//
// An empty secret is accepted: the historical contract has no default and no
// startup failure for a missing key, so the issuer signs with the empty key
// and the misconfiguration is only surfaced as a warning here.
func NewJWTService(cfg *config.Config, logger *slog.Logger) service.TokenService {
	if cfg.SecretKey.Access == "" {
		logger.Warn("No signing secret configured; tokens will be signed with an empty key")
	}

	return &jwtService{secret: cfg.SecretKey.Access}
}

// Issue creates an HS256-signed token carrying the user identifier.
// The token deliberately carries no expiration claim and is never validated
// by any route; it is issued for the client's benefit only.
func (s *jwtService) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id": userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}
