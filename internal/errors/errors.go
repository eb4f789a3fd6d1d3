package gerr

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrBookingFailed      = errors.New("failed to submit booking")
	ErrTooManyRequests    = errors.New("too many requests, please try again later")

	ErrAdminNotFound = errors.New("admin not found")
	ErrAdminExists   = errors.New("admin already exists")

	MailApiLimitReached = errors.New("mail api limit reached")
	BadMailRequest      = errors.New("bad mail request")
)
