package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"fitbook/internal/model"
)

// DefaultTokenTTL is the access token lifetime used when the
// configuration does not override it.
const DefaultTokenTTL = 60 * time.Minute

// Claims represents JWT claims. The subject is the user's email and
// roles carries the role set embedded at issuance time.
type Claims struct {
	Roles []model.Role `json:"roles"`
	jwt.RegisteredClaims
}

// JWTService issues and validates signed access tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a JWT service signing with the given secret.
// A zero ttl falls back to DefaultTokenTTL. The caller is responsible
// for never passing an empty secret; config.Load refuses to produce one.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the subject with the configured TTL.
func (s *JWTService) Issue(subject string, roles []model.Role) (string, error) {
	return s.IssueWithTTL(subject, roles, s.ttl)
}

// IssueWithTTL signs a token for the subject with an explicit TTL.
func (s *JWTService) IssueWithTTL(subject string, roles []model.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token and verifies its signature and expiry,
// returning the embedded claims.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
