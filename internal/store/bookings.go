package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/seminar-booking/internal/dependency"
	"github.com/jekabolt/seminar-booking/internal/entity"
)

type bookingsStore struct {
	*MYSQLStore
}

// Bookings returns an object implementing dependency.Bookings interface
func (ms *MYSQLStore) Bookings() dependency.Bookings {
	return &bookingsStore{
		MYSQLStore: ms,
	}
}

// AddBooking inserts a single booking row. The id and creation time are
// assigned here, never taken from the caller.
func (bs *bookingsStore) AddBooking(ctx context.Context, b *entity.BookingInsert) (*entity.Booking, error) {
	booking := &entity.Booking{
		ID:            uuid.NewString(),
		CreatedAt:     bs.Now(),
		BookingInsert: *b,
	}

	query := `
	INSERT INTO bookings
		(id, name, email, phone, abo_number, group_type, referral_name, diamond_name, created_at)
	VALUES
		(:id, :name, :email, :phone, :aboNumber, :groupType, :referralName, :diamondName, :createdAt)`

	_, err := ExecNamed(ctx, bs.DB(), query, map[string]any{
		"id":           booking.ID,
		"name":         booking.Name,
		"email":        booking.Email,
		"phone":        booking.Phone,
		"aboNumber":    booking.AboNumber,
		"groupType":    booking.GroupType,
		"referralName": booking.ReferralName,
		"diamondName":  booking.DiamondName,
		"createdAt":    booking.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("can't add booking: %w", err)
	}
	return booking, nil
}

// GetBookings returns all bookings ordered by creation time.
func (bs *bookingsStore) GetBookings(ctx context.Context, of entity.OrderFactor) ([]entity.Booking, error) {
	query := fmt.Sprintf(`
	SELECT
		id, name, email, phone, abo_number, group_type, referral_name, diamond_name, created_at
	FROM bookings
	ORDER BY created_at %s`, of.String())

	bookings, err := QueryListNamed[entity.Booking](ctx, bs.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get bookings: %w", err)
	}
	if bookings == nil {
		bookings = []entity.Booking{}
	}
	return bookings, nil
}
