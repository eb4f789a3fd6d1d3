package admin

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/seminar-booking/internal/dependency/mocks"
	"github.com/jekabolt/seminar-booking/internal/dto"
	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/report"
	"github.com/jekabolt/seminar-booking/internal/session"
	"github.com/jekabolt/seminar-booking/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T, repo *mocks.Repository) *Server {
	tr := i18n.NewTranslator("en")
	vr, err := view.New(tr)
	require.NoError(t, err)
	rep, err := report.New(report.Config{})
	require.NoError(t, err)
	s := New(repo, rep, vr, tr, entity.Event{Name: "Business Expansion Seminar"})
	s.now = func() time.Time { return now }
	return s
}

func fixtures() []entity.Booking {
	jane := entity.Booking{ID: "b2", CreatedAt: now.Add(-time.Hour)}
	jane.Name = "Jane Doe"
	jane.Email = "jane@x.com"
	jane.Phone = "0123456789"

	ali := entity.Booking{ID: "b1", CreatedAt: now.Add(-48 * time.Hour)}
	ali.Name = "Ali Hassan"
	ali.Email = "ali@example.my"
	ali.Phone = "0191234567"
	ali.AboNumber = sql.NullString{String: "ABO-7781", Valid: true}
	return []entity.Booking{jane, ali}
}

func withSession(r *http.Request, sess *session.Session) *http.Request {
	return r.WithContext(session.NewContext(r.Context(), sess))
}

func active() *session.Session {
	return &session.Session{Subject: "admin@example.com", ExpiresAt: now.Add(time.Hour)}
}

func TestAdminPageRedirectsWithoutSession(t *testing.T) {
	// no expectations: the store must not be touched
	repo := mocks.NewRepository(t)
	s := newServer(t, repo)

	for _, sess := range []*session.Session{nil, {Subject: "admin@example.com", ExpiresAt: now.Add(-time.Minute)}} {
		req := httptest.NewRequest(http.MethodGet, "/admin?q=jane", nil)
		if sess != nil {
			req = withSession(req, sess)
		}
		rec := httptest.NewRecorder()
		s.AdminPage(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, session.LoginPath, rec.Header().Get("Location"))
		assert.NotContains(t, rec.Body.String(), "Jane")

		rec = httptest.NewRecorder()
		s.ReportPDF(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	}
}

func TestAdminPageSearch(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(fixtures(), nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/admin?q=JANE", nil), active())
	rec := httptest.NewRecorder()
	s.AdminPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<td>Jane Doe</td>")
	assert.NotContains(t, body, "Ali Hassan")
	assert.Contains(t, body, "1 / 2")
	assert.Contains(t, body, "<title>Booking Management Dashboard</title>")

	req = withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), active())
	rec = httptest.NewRecorder()
	s.AdminPage(rec, req)
	body = rec.Body.String()
	assert.Contains(t, body, "<td>Ali Hassan</td>")
	assert.Contains(t, body, "<td>ABO-7781</td>")
	assert.Contains(t, body, "<td>-</td>")
	assert.Contains(t, body, "2 / 2")
}

func TestAdminPageFetchFailureIsSilent(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	s.AdminPage(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), active()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "0 / 0")
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestReportPDF(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(fixtures(), nil)

	rec := httptest.NewRecorder()
	s.ReportPDF(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin/report.pdf?q=nobody", nil), active()))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="bookings-report.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestListBookings(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(fixtures(), nil).Once()

	rec := httptest.NewRecorder()
	s.ListBookings(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings?q=abo-77", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)

	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(nil, errors.New("db down")).Once()
	rec = httptest.NewRecorder()
	s.ListBookings(rec, httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAdminPagePinsReportToShownRows(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(fixtures(), nil)

	rec := httptest.NewRecorder()
	s.AdminPage(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), active()))
	require.Equal(t, http.StatusOK, rec.Code)
	newest := now.Add(-time.Hour).Format(time.RFC3339Nano)
	assert.Contains(t, rec.Body.String(), `name="until" value="`+newest+`"`)
}

func TestReportPDFUntil(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(fixtures(), nil).Times(2)

	download := func(query string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		s.ReportPDF(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin/report.pdf"+query, nil), active()))
		return rec
	}

	all := download("")
	require.Equal(t, http.StatusOK, all.Code)

	// both fixtures are newer than the pin
	before := now.Add(-72 * time.Hour).Format(time.RFC3339Nano)
	pinned := download("?until=" + before)
	require.Equal(t, http.StatusOK, pinned.Code)
	assert.Less(t, pinned.Body.Len(), all.Body.Len())

	// rejected before the store is asked
	bad := download("?until=yesterday")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestReportPDFFetchFailure(t *testing.T) {
	repo := mocks.NewRepository(t)
	bs := mocks.NewBookings(t)
	s := newServer(t, repo)

	repo.EXPECT().Bookings().Return(bs)
	bs.EXPECT().GetBookings(mock.Anything, entity.Descending).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	s.ReportPDF(rec, withSession(httptest.NewRequest(http.MethodGet, "/admin/report.pdf", nil), active()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.False(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}
