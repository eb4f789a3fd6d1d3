// Package session carries the authenticated admin session as an explicit value.
package session

import (
	"context"
	"time"
)

// LoginPath is where guarded views send visitors without an active session.
const LoginPath = "/login"

// Session is an authenticated admin credential with an expiry.
type Session struct {
	Subject   string
	ExpiresAt time.Time
}

// Active reports whether s is present and not expired at now.
func (s *Session) Active(now time.Time) bool {
	return s != nil && s.Subject != "" && now.Before(s.ExpiresAt)
}

// Guard decides whether an admin view may proceed. When it may not, the
// returned path is the redirect target.
func Guard(s *Session, now time.Time) (redirect string, ok bool) {
	if !s.Active(now) {
		return LoginPath, false
	}
	return "", true
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
