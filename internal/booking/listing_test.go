package booking

import (
	"database/sql"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/stretchr/testify/assert"
)

func booking(id, name, email, abo string) entity.Booking {
	b := entity.Booking{ID: id}
	b.Name = name
	b.Email = email
	if abo != "" {
		b.AboNumber = sql.NullString{String: abo, Valid: true}
	}
	return b
}

func sampleBookings() []entity.Booking {
	return []entity.Booking{
		booking("3", "Jane Doe", "jane@x.com", ""),
		booking("2", "Ali Hassan", "ali@example.my", "ABO-7781"),
		booking("1", "Mei Ling", "JANE.backup@corp.com", "X-100"),
	}
}

func ids(bs []entity.Booking) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	all := sampleBookings()
	tests := []struct {
		term string
		want []string
	}{
		{term: "", want: []string{"3", "2", "1"}},
		{term: "jane", want: []string{"3", "1"}},
		{term: "JANE DOE", want: []string{"3"}},
		{term: "abo-77", want: []string{"2"}},
		{term: "x-1", want: []string{"1"}},
		{term: ".my", want: []string{"2"}},
		{term: "nobody", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(all, tt.term)))
		})
	}
}

func TestFilterIgnoresOtherFields(t *testing.T) {
	b := booking("1", "A", "a@b.com", "")
	b.Phone = "0123456789"
	b.ReferralName = sql.NullString{String: "Jane", Valid: true}
	assert.Empty(t, Filter([]entity.Booking{b}, "0123"))
	assert.Empty(t, Filter([]entity.Booking{b}, "jane"))
}

func TestFilterSubset(t *testing.T) {
	all := make([]entity.Booking, 40)
	for i := range all {
		all[i] = booking(gofakeit.UUID(), gofakeit.Name(), gofakeit.Email(), gofakeit.Numerify("ABO-####"))
	}
	for i := 0; i < 20; i++ {
		term := gofakeit.Letter() + gofakeit.Letter()
		got := Filter(all, term)
		pos := 0
		for _, g := range got {
			for pos < len(all) && all[pos].ID != g.ID {
				pos++
			}
			assert.Less(t, pos, len(all), "filtered record %s not in full set order", g.ID)
			assert.True(t, Match(g, term))
		}
	}
	assert.Equal(t, all, Filter(all, ""))
}

func TestListingRecomputes(t *testing.T) {
	l := NewListing(nil, "jane")
	assert.Empty(t, l.Filtered())

	l.SetBookings(sampleBookings())
	assert.Equal(t, []string{"3", "1"}, ids(l.Filtered()))

	l.SetTerm("")
	assert.Len(t, l.Filtered(), 3)
	assert.Equal(t, "", l.Term())
	assert.Len(t, l.All(), 3)
}

func TestUntilAndNewest(t *testing.T) {
	base := time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	all := sampleBookings()
	for i := range all {
		all[i].CreatedAt = base.Add(-time.Duration(i) * time.Hour)
	}

	assert.Equal(t, base, Newest(all, time.Time{}))
	assert.Equal(t, base, Newest(nil, base))
	assert.Equal(t, base.Add(-time.Hour), Newest(all[1:], time.Time{}))

	assert.Equal(t, []string{"3", "2", "1"}, ids(Until(all, base)))
	assert.Equal(t, []string{"2", "1"}, ids(Until(all, base.Add(-time.Minute))))
	assert.Empty(t, Until(all, base.Add(-3*time.Hour)))

	// a booking arriving after the snapshot stays out
	late := booking("4", "Late Comer", "late@x.com", "")
	late.CreatedAt = base.Add(time.Minute)
	l := NewListing(append([]entity.Booking{late}, all...), "")
	l.SetBookings(Until(l.All(), Newest(all, time.Time{})))
	assert.Equal(t, []string{"3", "2", "1"}, ids(l.Filtered()))
}
