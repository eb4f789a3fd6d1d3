package ratelimit

import (
	"fmt"
	"strings"
	"sync"
	"time"

	gerr "github.com/jekabolt/seminar-booking/internal/errors"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	stop     chan struct{}
	once     sync.Once
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// Reset forgets the counter of key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.counters, key)
	l.mu.Unlock()
}

// Close stops the cleanup goroutine.
func (l *Limiter) Close() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.counters)
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(cleanupInterval(l.window))
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evict(time.Now())
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.counters {
		if now.After(c.expiresAt) {
			delete(l.counters, key)
		}
	}
}

func cleanupInterval(window time.Duration) time.Duration {
	if window < time.Minute {
		return window
	}
	return time.Minute
}

const (
	ipBooking  = "ip_booking"
	ipLogin    = "ip_login"
	emailLogin = "email_login"
)

type Config struct {
	BookingsPerHour int `mapstructure:"bookings_per_hour"`
	LoginsPerMinute int `mapstructure:"logins_per_minute"`
}

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
}

// NewMultiKeyLimiter creates a limiter from c, zero values fall back to
// 30 booking submissions per IP per hour and 5 login attempts per minute.
func NewMultiKeyLimiter(c Config) *MultiKeyLimiter {
	if c.BookingsPerHour <= 0 {
		c.BookingsPerHour = 30
	}
	if c.LoginsPerMinute <= 0 {
		c.LoginsPerMinute = 5
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			ipBooking:  NewLimiter(time.Hour, c.BookingsPerHour),
			ipLogin:    NewLimiter(time.Minute, c.LoginsPerMinute),
			emailLogin: NewLimiter(time.Minute, c.LoginsPerMinute),
		},
	}
}

// CheckBooking verifies if a booking form can be submitted from the given IP.
func (m *MultiKeyLimiter) CheckBooking(ip string) error {
	if !m.limiters[ipBooking].Allow(ip) {
		return fmt.Errorf("too many bookings from this IP address: %w", gerr.ErrTooManyRequests)
	}
	return nil
}

// CheckLogin verifies if a sign in attempt is allowed for the IP and email.
func (m *MultiKeyLimiter) CheckLogin(ip, email string) error {
	if !m.limiters[ipLogin].Allow(ip) {
		return fmt.Errorf("too many login attempts from this IP address: %w", gerr.ErrTooManyRequests)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !m.limiters[emailLogin].Allow(email) {
		return fmt.Errorf("too many login attempts for this account: %w", gerr.ErrTooManyRequests)
	}
	return nil
}

// LoginSucceeded clears the per-account login counter.
func (m *MultiKeyLimiter) LoginSucceeded(email string) {
	m.limiters[emailLogin].Reset(strings.ToLower(strings.TrimSpace(email)))
}

// Close stops every limiter.
func (m *MultiKeyLimiter) Close() {
	for _, l := range m.limiters {
		l.Close()
	}
}
