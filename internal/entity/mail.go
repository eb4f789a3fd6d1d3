package entity

// ConfirmationMail is a booking confirmation queued for delivery.
type ConfirmationMail struct {
	BookingID string
	To        string
	Name      string
	Event     Event
}
