package auth

import (
	"crypto/rand"
	"fmt"
	"time"

	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 10 * time.Hour
	signingKeySize  = 32
)

// Claims is the signed payload of an access token. The subject is the user's email.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

type Option func(*TokenService)

// WithClock replaces time.Now for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(key []byte, ttl time.Duration, opts ...Option) (*TokenService, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("token signing key is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	s := &TokenService{
		key: key,
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// GenerateKey returns a random HS256 key. Tokens signed with it cannot be
// verified by another process or after a restart.
func GenerateKey() ([]byte, error) {
	key := make([]byte, signingKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}
	return key, nil
}

func (s *TokenService) Issue(subject, role string) (string, error) {
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseClaims verifies the signature and decodes the claims. Expiry is not
// checked here; see Validate.
func (s *TokenService) ParseClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid {
		return nil, appErrors.NewAppError(appErrors.CodeInvalidSignature, appErrors.ErrInvalidSignature.Message, err)
	}

	return claims, nil
}

func (s *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *TokenService) ExtractExpiry(tokenString string) (time.Time, error) {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}

// Validate reports whether the token belongs to expectedSubject and has not expired.
func (s *TokenService) Validate(tokenString, expectedSubject string) bool {
	claims, err := s.ParseClaims(tokenString)
	if err != nil {
		return false
	}
	return claims.IsValidFor(expectedSubject, s.now())
}

// IsValidFor checks subject and expiry of already verified claims.
func (c *Claims) IsValidFor(expectedSubject string, now time.Time) bool {
	if c.Subject != expectedSubject || c.ExpiresAt == nil {
		return false
	}
	return now.Before(c.ExpiresAt.Time)
}
