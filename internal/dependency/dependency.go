package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Bookings interface {
		// AddBooking inserts one participant as an independent booking row.
		AddBooking(ctx context.Context, b *entity.BookingInsert) (*entity.Booking, error)
		// GetBookings returns every booking ordered by creation time.
		GetBookings(ctx context.Context, of entity.OrderFactor) ([]entity.Booking, error)
	}

	Admin interface {
		AddAdmin(ctx context.Context, email, pwHash string) error
		DeleteAdmin(ctx context.Context, email string) error
		ChangePassword(ctx context.Context, email, newHash string) error
		PasswordHashByEmail(ctx context.Context, email string) (string, error)
		GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	}

	Repository interface {
		Bookings() Bookings
		Admin() Admin
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Ping(ctx context.Context) error
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		Rebind(query string) string

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	Mailer interface {
		// SendBookingConfirmation queues a confirmation for delivery by the worker.
		SendBookingConfirmation(ctx context.Context, cm entity.ConfirmationMail) error
		Start(ctx context.Context) error
		Stop() error
	}

	Sender interface {
		SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
	}
)
