package report

import (
	"bytes"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	r, err := New(Config{DateLayout: "2006-01-02", Timezone: "Asia/Kuala_Lumpur"})
	require.NoError(t, err)

	created := time.Date(2025, 9, 1, 20, 0, 0, 0, time.UTC)
	b := entity.Booking{ID: "1", CreatedAt: created}
	b.Name = "Jane Doe"
	b.Email = "jane@x.com"
	b.Phone = "0123456789"
	b.GroupType = sql.NullString{String: "HAN", Valid: true}

	tbl := r.Build("Seminar - Bookings Report", created, []entity.Booking{b})
	assert.Equal(t, "Seminar - Bookings Report", tbl.Title)
	assert.Equal(t, "Generated on 2025-09-02", tbl.Generated)
	assert.Equal(t, Header, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"Jane Doe", "jane@x.com", "0123456789", "-", "HAN", "-", "-", "2025-09-02"}, tbl.Rows[0])
}

func TestBuildEmpty(t *testing.T) {
	r, err := New(Config{})
	require.NoError(t, err)
	tbl := r.Build("Report", time.Now(), nil)
	assert.Empty(t, tbl.Rows)
	assert.Len(t, tbl.Header, 8)
}

func TestNewBadTimezone(t *testing.T) {
	_, err := New(Config{Timezone: "Mars/Olympus"})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	r, err := New(Config{})
	require.NoError(t, err)

	var empty bytes.Buffer
	require.NoError(t, Render(&empty, r.Build("Report", time.Now(), nil)))
	assert.True(t, bytes.HasPrefix(empty.Bytes(), []byte("%PDF")))

	bookings := make([]entity.Booking, 120)
	for i := range bookings {
		bookings[i].Name = "Participant with a rather long name that needs several lines"
		bookings[i].Email = "someone@example.com"
		bookings[i].CreatedAt = time.Now()
	}
	var full bytes.Buffer
	require.NoError(t, Render(&full, r.Build("Report", time.Now(), bookings)))
	assert.Greater(t, full.Len(), empty.Len())
}

func bodyMeasure() (func(string) float64, func(string) string) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 8)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return func(s string) float64 { return pdf.GetStringWidth(tr(s)) }, tr
}

func TestRenderKeepsLongValues(t *testing.T) {
	r, err := New(Config{})
	require.NoError(t, err)

	names := []string{
		"Muhammad Hafiz bin Abdul Rahman",
		"Zoë Müller-Ångström Hernández de la Peña Ñúñez",
	}
	email := "nurul.aisyah.binti.kamaruddin@gmail.com"

	var bookings []entity.Booking
	for _, n := range names {
		b := entity.Booking{CreatedAt: time.Now()}
		b.Name = n
		b.Email = email
		b.Phone = "0123456789"
		bookings = append(bookings, b)
	}

	var out bytes.Buffer
	require.NoError(t, render(&out, r.Build("Report", time.Now(), bookings), false))
	pdf := out.Bytes()

	measure, tr := bodyMeasure()
	for _, n := range names {
		lines := wrap(n, widths[0]-2*cellPad, measure)
		assert.Greater(t, len(lines), 1, n)
		assert.Equal(t, n, strings.Join(lines, " "))
		for _, l := range lines {
			assert.True(t, bytes.Contains(pdf, []byte("("+tr(l)+")")), "missing line %q", l)
		}
	}

	lines := wrap(email, widths[1]-2*cellPad, measure)
	assert.Equal(t, email, strings.Join(lines, ""))
	for _, l := range lines {
		assert.True(t, bytes.Contains(pdf, []byte("("+l+")")), "missing line %q", l)
	}
	assert.NotContains(t, string(pdf), "\ufffd")
	assert.False(t, bytes.Contains(pdf, []byte("..)")))
}

func TestWrap(t *testing.T) {
	// one unit per rune
	measure := func(s string) float64 { return float64(len([]rune(s))) }

	assert.Equal(t, []string{""}, wrap("", 10, measure))
	assert.Equal(t, []string{"short"}, wrap("short", 10, measure))
	assert.Equal(t, []string{"Ali bin", "Abu Bakar"}, wrap("Ali bin Abu Bakar", 9, measure))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrap("abcdefghij", 4, measure))
	assert.Equal(t, []string{"Zoë", "Müll", "er"}, wrap("Zoë Müller", 4, measure))
	assert.Equal(t, []string{"a", "b"}, wrap("ab", 0.5, measure))
}
