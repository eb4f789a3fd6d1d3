package dto

import (
	"database/sql"
	"time"

	"github.com/jekabolt/seminar-booking/internal/booking"
	"github.com/jekabolt/seminar-booking/internal/entity"
)

// Booking is the JSON shape of a stored booking. Blank optional fields are null.
type Booking struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AboNumber    *string   `json:"abo_number"`
	GroupType    *string   `json:"group_type"`
	ReferralName *string   `json:"referral_name"`
	DiamondName  *string   `json:"diamond_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateBookingsRequest struct {
	Participants []booking.Participant `json:"participants"`
}

type CreateBookingsResponse struct {
	Bookings []Booking `json:"bookings"`
}

type ListBookingsResponse struct {
	Term     string    `json:"term"`
	Total    int       `json:"total"`
	Bookings []Booking `json:"bookings"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AuthToken string    `json:"authToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func ConvertEntityBookingToDto(b entity.Booking) Booking {
	return Booking{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		AboNumber:    nullStringPtr(b.AboNumber),
		GroupType:    nullStringPtr(b.GroupType),
		ReferralName: nullStringPtr(b.ReferralName),
		DiamondName:  nullStringPtr(b.DiamondName),
		CreatedAt:    b.CreatedAt,
	}
}

func ConvertEntityBookingsToDto(bs []entity.Booking) []Booking {
	out := make([]Booking, 0, len(bs))
	for _, b := range bs {
		out = append(out, ConvertEntityBookingToDto(b))
	}
	return out
}
