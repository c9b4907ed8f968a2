// Package auth issues and verifies the HS256 access tokens used by the
// API, and wraps password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenTTL is how long an issued token stays valid.
const AccessTokenTTL = 24 * time.Hour

// Claims is the verified identity carried by an access token.
type Claims struct {
	UserID  uint
	IsStaff bool
}

var ErrInvalidToken = errors.New("invalid or expired token")

// NewAccessToken signs an HS256 JWT for the user with subject, staff
// flag, issued-at and expiry claims.
func NewAccessToken(secret string, userID uint, isStaff bool) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   fmt.Sprintf("%d", userID),
		"staff": isStaff,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies the signature and expiry of a token and
// extracts its claims. Any malformed, forged or expired token yields
// ErrInvalidToken.
func ParseAccessToken(secret, token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, ErrInvalidToken
	}
	var userID uint
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil {
		return Claims{}, ErrInvalidToken
	}
	staff, _ := mapClaims["staff"].(bool)
	return Claims{UserID: userID, IsStaff: staff}, nil
}
