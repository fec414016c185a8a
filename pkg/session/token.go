package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "careerai"

// Claims carried by the session cookie. Subject is the session id.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenSigner issues and verifies HS256 session tokens
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenSigner(secret string, ttl time.Duration) *TokenSigner {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &TokenSigner{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime of an issued token
func (s *TokenSigner) TTL() time.Duration {
	return s.ttl
}

// NewSessionID returns a fresh random session id
func NewSessionID() string {
	return uuid.NewString()
}

// Issue signs a token for sessionID valid from now for the signer's TTL
func (s *TokenSigner) Issue(sessionID string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies tokenString and returns its claims
func (s *TokenSigner) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("session token: invalid")
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("session token: bad subject: %w", err)
	}
	return claims, nil
}

// IsExpired reports whether err came from an otherwise valid but expired token
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

// NeedsRefresh reports whether less than half of the token lifetime remains
func (s *TokenSigner) NeedsRefresh(claims *Claims, now time.Time) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Sub(now) < s.ttl/2
}
