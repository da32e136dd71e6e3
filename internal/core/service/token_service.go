package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// TokenService issues and validates HS256-signed session tokens carrying
// the user's email and role.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for subject with the given role, expiring after the
// configured TTL.
func (s *TokenService) Issue(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies token. It fails with domain.ErrInvalidToken
// when the token is absent, malformed, signed with the wrong key or
// algorithm, expired, or missing its subject claim.
func (s *TokenService) Validate(token string) (ports.Claims, error) {
	if token == "" {
		return ports.Claims{}, domain.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ports.Claims{}, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return ports.Claims{}, domain.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = domain.RoleUser
	}

	return ports.Claims{Subject: subject, Role: role}, nil
}
