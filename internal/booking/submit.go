package booking

import (
	"context"
	"fmt"

	"github.com/jekabolt/seminar-booking/internal/entity"
)

// Creator persists a single booking row.
type Creator interface {
	AddBooking(ctx context.Context, b *entity.BookingInsert) (*entity.Booking, error)
}

// BatchError is returned by SubmitBatch when an insert fails. Entries before
// Index were persisted, the entry at Index and every later one were not.
type BatchError struct {
	Index int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("submit participant %d: %v", e.Index+1, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Submitted is the number of rows that were persisted before the failure.
func (e *BatchError) Submitted() int {
	return e.Index
}

// SubmitBatch inserts entries one by one in order, waiting for each insert
// before issuing the next. It halts on the first failure and returns the
// rows created so far together with a *BatchError.
func SubmitBatch(ctx context.Context, c Creator, entries []entity.BookingInsert) ([]entity.Booking, error) {
	created := make([]entity.Booking, 0, len(entries))
	for i := range entries {
		if err := ctx.Err(); err != nil {
			return created, &BatchError{Index: i, Err: err}
		}
		b, err := c.AddBooking(ctx, &entries[i])
		if err != nil {
			return created, &BatchError{Index: i, Err: err}
		}
		created = append(created, *b)
	}
	return created, nil
}
