package entity

import (
	"database/sql"
	"time"
)

// GroupType is the participant group picked on the booking form.
type GroupType string

const (
	GroupLG  GroupType = "L&G"
	GroupHAN GroupType = "HAN"
	GroupCTN GroupType = "CTN"
)

// GroupTypes lists the selectable groups in form order.
var GroupTypes = []GroupType{GroupLG, GroupHAN, GroupCTN}

// ValidGroupType reports whether s names a known group.
func ValidGroupType(s string) bool {
	for _, gt := range GroupTypes {
		if string(gt) == s {
			return true
		}
	}
	return false
}

// Booking represents the bookings table
type Booking struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	BookingInsert
}

// BookingInsert holds the participant details submitted on the form.
type BookingInsert struct {
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Phone        string         `db:"phone"`
	AboNumber    sql.NullString `db:"abo_number"`
	GroupType    sql.NullString `db:"group_type"`
	ReferralName sql.NullString `db:"referral_name"`
	DiamondName  sql.NullString `db:"diamond_name"`
}
