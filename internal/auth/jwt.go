package auth

import (
	"fmt"
	"time"

	"shipment-portal/internal/config"
	"shipment-portal/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller resolved from a verified session token.
type Identity struct {
	Email string
	Role  models.UserRole
}

type SessionClaims struct {
	Role models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the portal's session tokens. It owns the
// signing secret; nothing outside this type ever sees the key material.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		method: jwt.GetSigningMethod(cfg.JWTAlgorithm),
		ttl:    cfg.TokenTTL,
	}
}

// TTL is the configured session lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

func (s *TokenService) Issue(subject string, role models.UserRole, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
}

// Verify folds every failure mode — bad signature, unexpected signing
// method, malformed token, elapsed expiry — into a single false, so callers
// cannot distinguish an expired session from a tampered one.
func (s *TokenService) Verify(tokenStr string) (Identity, bool) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != s.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}
	if claims.Subject == "" {
		return Identity{}, false
	}

	return Identity{Email: claims.Subject, Role: claims.Role}, true
}
