package pwhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(16, 10000)
	require.NoError(t, err)

	hash, err := ph.HashPassword("testPassword")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "pbkdf2_sha256$10000$"))

	assert.NoError(t, ph.Validate("testPassword", hash))
	assert.ErrorIs(t, ph.Validate("wrongPassword", hash), ErrMismatch)

	// same password, different salt
	other, err := ph.HashPassword("testPassword")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestValidateUsesStoredIterations(t *testing.T) {
	old, err := New(16, 2000)
	require.NoError(t, err)
	hash, err := old.HashPassword("pw")
	require.NoError(t, err)

	current, err := New(16, 50000)
	require.NoError(t, err)
	assert.NoError(t, current.Validate("pw", hash))
}

func TestValidateInvalidFormat(t *testing.T) {
	ph, err := New(16, 10000)
	require.NoError(t, err)

	for _, h := range []string{"", "hash", "md5$1$a$b", "pbkdf2_sha256$x$a$b", "pbkdf2_sha256$100$!!$b"} {
		assert.ErrorIs(t, ph.Validate("pw", h), ErrInvalidFormat, h)
	}
}

func TestNewRejectsWeakSettings(t *testing.T) {
	_, err := New(4, 10000)
	assert.Error(t, err)
	_, err = New(16, 10)
	assert.Error(t, err)
}
