package token

import (
	"errors"
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// ErrInvalidToken is the single error returned for any verification failure.
// Callers must not learn whether a token was malformed, expired or signed
// with the wrong key.
var ErrInvalidToken = errors.New("invalid token")

// TTL is how long an issued token stays valid.
const TTL = 24 * time.Hour

// Claims carried by every issued token
type Claims struct {
	UserID               uint `json:"user_id"` // Custom claim for user ID
	jwt.RegisteredClaims      // Standard JWT claims
}

// Service signs and verifies bearer tokens with a shared HS256 secret.
type Service struct {
	secret []byte
}

// NewService creates a token service around the given signing secret
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue creates a signed JWT binding the given user ID
func (s *Service) Issue(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the bound user ID
func (s *Service) Verify(tokenStr string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
