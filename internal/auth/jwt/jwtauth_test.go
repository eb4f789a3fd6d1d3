package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)
	tok, err := NewTokenWithSubject(jwtAuth, time.Hour, "admin@seminar.test")
	require.NoError(t, err)

	sub, exp, err := VerifyToken(jwtAuth, tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@seminar.test", sub)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
}

func TestTokenRejected(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	expired, err := NewTokenWithSubject(jwtAuth, -time.Hour, "admin@seminar.test")
	require.NoError(t, err)
	_, _, err = VerifyToken(jwtAuth, expired)
	assert.Error(t, err)

	noSub, err := NewTokenWithSubject(jwtAuth, time.Hour, "")
	require.NoError(t, err)
	_, _, err = VerifyToken(jwtAuth, noSub)
	assert.ErrorIs(t, err, ErrNoSubject)

	other := jwtauth.New("HS256", []byte("other"), nil)
	tok, err := NewTokenWithSubject(other, time.Hour, "admin@seminar.test")
	require.NoError(t, err)
	_, _, err = VerifyToken(jwtAuth, tok)
	assert.Error(t, err)

	_, _, err = VerifyToken(jwtAuth, "bad token")
	assert.Error(t, err)
}
