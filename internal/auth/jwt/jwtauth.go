package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

var ErrNoSubject = errors.New("token has no subject")

// VerifyToken checks signature and expiry and returns the subject and the
// expiration time of the token.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, time.Time, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", time.Time{}, err
	}
	if t.Subject() == "" {
		return "", time.Time{}, ErrNoSubject
	}
	return t.Subject(), t.Expiration(), nil
}

// NewTokenWithSubject creates a JWT carrying the admin email as subject.
func NewTokenWithSubject(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}
