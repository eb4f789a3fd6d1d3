package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jekabolt/seminar-booking/internal/dependency/mocks"
	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fakeInserts(n int) []entity.BookingInsert {
	out := make([]entity.BookingInsert, n)
	for i := range out {
		out[i] = Participant{
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Phone: gofakeit.Phone(),
		}.Insert()
	}
	return out
}

func TestSubmitBatchAll(t *testing.T) {
	ctx := context.Background()
	bs := mocks.NewBookings(t)
	entries := fakeInserts(3)

	var order []string
	bs.EXPECT().AddBooking(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, bi *entity.BookingInsert) (*entity.Booking, error) {
			order = append(order, bi.Name)
			return &entity.Booking{ID: gofakeit.UUID(), CreatedAt: time.Now(), BookingInsert: *bi}, nil
		}).Times(3)

	created, err := SubmitBatch(ctx, bs, entries)
	require.NoError(t, err)
	require.Len(t, created, 3)
	for i := range entries {
		assert.Equal(t, entries[i].Name, order[i])
		assert.Equal(t, entries[i], created[i].BookingInsert)
	}
}

func TestSubmitBatchHaltsOnFirstError(t *testing.T) {
	for _, k := range []int{0, 1, 3} {
		ctx := context.Background()
		bs := mocks.NewBookings(t)
		entries := fakeInserts(5)
		boom := errors.New("connection refused")

		calls := 0
		bs.EXPECT().AddBooking(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, bi *entity.BookingInsert) (*entity.Booking, error) {
				calls++
				if calls == k+1 {
					return nil, boom
				}
				return &entity.Booking{ID: gofakeit.UUID(), BookingInsert: *bi}, nil
			}).Times(k + 1)

		created, err := SubmitBatch(ctx, bs, entries)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)

		var be *BatchError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, k, be.Index)
		assert.Equal(t, k, be.Submitted())
		assert.Len(t, created, k)
		assert.Equal(t, k+1, calls)
	}
}

func TestSubmitBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bs := mocks.NewBookings(t)

	created, err := SubmitBatch(ctx, bs, fakeInserts(2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, created)
}
