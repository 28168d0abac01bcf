package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Service issues and verifies short-lived admin session tokens. A token is
// only ever minted after the admin password has been verified, so holding a
// valid token is equivalent to knowing the password until it expires.
type Service interface {
	NewToken() (string, error)
	Validate(tokenStr string) bool
}

type Session struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) Service {
	return &Session{secretKey, ttl}
}

func (s *Session) NewToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Validate reports whether tokenStr is a live admin session token.
func (s *Session) Validate(tokenStr string) bool {
	if tokenStr == "" {
		return false
	}
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	admin, _ := claims["admin"].(bool)
	return admin
}
