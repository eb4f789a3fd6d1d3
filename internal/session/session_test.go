package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	now := time.Date(2025, 9, 13, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sess     *Session
		ok       bool
		redirect string
	}{
		{"absent", nil, false, LoginPath},
		{"no subject", &Session{ExpiresAt: now.Add(time.Hour)}, false, LoginPath},
		{"expired", &Session{Subject: "admin@seminar.test", ExpiresAt: now.Add(-time.Second)}, false, LoginPath},
		{"active", &Session{Subject: "admin@seminar.test", ExpiresAt: now.Add(time.Hour)}, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redirect, ok := Guard(tt.sess, now)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.redirect, redirect)
		})
	}
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	s := &Session{Subject: "admin@seminar.test"}
	got, ok := FromContext(NewContext(context.Background(), s))
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = FromContext(NewContext(context.Background(), nil))
	assert.False(t, ok)
}
