package mail

import (
	"context"
	"fmt"

	"github.com/jekabolt/seminar-booking/internal/entity"
	gerr "github.com/jekabolt/seminar-booking/internal/errors"
)

const (
	BookingConfirmed = "booking_confirmed.gohtml"
)

var templateSubjects = map[string]string{
	BookingConfirmed: "Your booking is confirmed",
}

// SendBookingConfirmation renders the confirmation and queues it for the
// worker. It never blocks: a full queue is reported as an error.
func (m *Mailer) SendBookingConfirmation(ctx context.Context, cm entity.ConfirmationMail) error {
	if cm.To == "" || cm.BookingID == "" {
		return fmt.Errorf("%w: incomplete confirmation: %+v", gerr.BadMailRequest, cm)
	}
	msg, err := m.buildMessage(cm.To, cm.Name, BookingConfirmed, cm)
	if err != nil {
		return err
	}
	select {
	case m.queue <- pending{msg: msg, to: cm.To}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return fmt.Errorf("mail queue is full, dropping confirmation for booking %s", cm.BookingID)
	}
}
