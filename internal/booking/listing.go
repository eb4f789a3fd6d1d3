package booking

import (
	"strings"
	"time"

	"github.com/jekabolt/seminar-booking/internal/entity"
)

// Match reports whether the booking's name, email or ABO number contains
// term, ignoring case. A missing ABO number never matches.
func Match(b entity.Booking, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(b.Name), term) ||
		strings.Contains(strings.ToLower(b.Email), term) {
		return true
	}
	return b.AboNumber.Valid && strings.Contains(strings.ToLower(b.AboNumber.String), term)
}

// Filter returns the bookings matching term in their original order. An
// empty term returns all of them.
func Filter(all []entity.Booking, term string) []entity.Booking {
	if term == "" {
		out := make([]entity.Booking, len(all))
		copy(out, all)
		return out
	}
	out := make([]entity.Booking, 0, len(all))
	for _, b := range all {
		if Match(b, term) {
			out = append(out, b)
		}
	}
	return out
}

// Until returns the bookings created at or before t, preserving order.
// Bookings are never updated or deleted, so this reproduces a set that was
// loaded when t was the newest creation time.
func Until(all []entity.Booking, t time.Time) []entity.Booking {
	out := make([]entity.Booking, 0, len(all))
	for _, b := range all {
		if !b.CreatedAt.After(t) {
			out = append(out, b)
		}
	}
	return out
}

// Newest returns the latest creation time in all, or fallback when all is
// empty.
func Newest(all []entity.Booking, fallback time.Time) time.Time {
	if len(all) == 0 {
		return fallback
	}
	newest := all[0].CreatedAt
	for _, b := range all[1:] {
		if b.CreatedAt.After(newest) {
			newest = b.CreatedAt
		}
	}
	return newest
}

// Listing keeps the loaded bookings and the subset matching the current
// search term. The subset is recomputed whenever either input changes.
type Listing struct {
	all      []entity.Booking
	term     string
	filtered []entity.Booking
}

// NewListing returns a listing over all with the given term applied.
func NewListing(all []entity.Booking, term string) *Listing {
	l := &Listing{all: all, term: term}
	l.refresh()
	return l
}

func (l *Listing) refresh() {
	l.filtered = Filter(l.all, l.term)
}

// SetBookings replaces the full set and recomputes the matching subset.
// The report export uses it to narrow a fresh load to a snapshot.
func (l *Listing) SetBookings(all []entity.Booking) {
	l.all = all
	l.refresh()
}

// SetTerm replaces the search term and recomputes the matching subset.
// Handlers build one Listing per request with the term already set, so
// this is only needed by long-lived holders of a Listing.
func (l *Listing) SetTerm(term string) {
	l.term = term
	l.refresh()
}

func (l *Listing) Term() string { return l.term }

func (l *Listing) All() []entity.Booking { return l.all }

func (l *Listing) Filtered() []entity.Booking { return l.filtered }
