package admin

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jekabolt/seminar-booking/internal/apisrv/respond"
	"github.com/jekabolt/seminar-booking/internal/booking"
	"github.com/jekabolt/seminar-booking/internal/dependency"
	"github.com/jekabolt/seminar-booking/internal/dto"
	"github.com/jekabolt/seminar-booking/internal/entity"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/report"
	"github.com/jekabolt/seminar-booking/internal/session"
	"github.com/jekabolt/seminar-booking/internal/view"
)

const (
	searchParam = "q"
	untilParam  = "until"
)

// Server implements handlers for admin.
type Server struct {
	repo     dependency.Repository
	reporter *report.Reporter
	view     *view.Renderer
	tr       *i18n.Translator
	event    entity.Event
	now      func() time.Time
}

// New creates a new server with admin handlers.
func New(
	r dependency.Repository,
	rep *report.Reporter,
	vr *view.Renderer,
	tr *i18n.Translator,
	ev entity.Event,
) *Server {
	return &Server{
		repo:     r,
		reporter: rep,
		view:     vr,
		tr:       tr,
		event:    ev,
		now:      time.Now,
	}
}

// guard redirects to the login page unless the request carries an active
// session. It must run before any booking data is loaded.
func (s *Server) guard(w http.ResponseWriter, r *http.Request) bool {
	sess, _ := session.FromContext(r.Context())
	redirect, ok := session.Guard(sess, s.now())
	if !ok {
		http.Redirect(w, r, redirect, http.StatusSeeOther)
	}
	return ok
}

// listing loads every booking newest first and applies the search term.
func (s *Server) listing(ctx context.Context, term string) (*booking.Listing, error) {
	all, err := s.repo.Bookings().GetBookings(ctx, entity.Descending)
	if err != nil {
		return nil, err
	}
	return booking.NewListing(all, term), nil
}

func (s *Server) reportTitle() string {
	return fmt.Sprintf("%s - Bookings Report", s.event.Name)
}

// AdminPage renders the searchable bookings table. A failed load is logged
// and renders as an empty table.
func (s *Server) AdminPage(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r) {
		return
	}
	now := s.now()
	l, err := s.listing(r.Context(), r.URL.Query().Get(searchParam))
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't get bookings",
			slog.String("err", err.Error()),
		)
		l = booking.NewListing(nil, r.URL.Query().Get(searchParam))
	}
	table := s.reporter.Build(s.reportTitle(), now, l.Filtered())

	locale := s.tr.LocaleFromRequest(r)
	s.view.Render(w, r, http.StatusOK, view.PageAdmin, view.Page{
		Locale: locale,
		Title:  s.tr.T(locale, i18n.MsgDashboard, nil),
		Data: view.AdminData{
			Event: s.event,
			Term:  l.Term(),
			Until: booking.Newest(l.All(), now).Format(time.RFC3339Nano),
			Total: len(l.All()),
			Rows:  table.Rows,
		},
	})
}

// ReportPDF streams the filtered bookings as a PDF attachment. With the
// until parameter the export is limited to the bookings the dashboard had
// loaded, rows created later are left out.
func (s *Server) ReportPDF(w http.ResponseWriter, r *http.Request) {
	if !s.guard(w, r) {
		return
	}
	var until time.Time
	if v := r.URL.Query().Get(untilParam); v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			http.Error(w, "bad until parameter", http.StatusBadRequest)
			return
		}
		until = t
	}

	l, err := s.listing(r.Context(), r.URL.Query().Get(searchParam))
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't get bookings for report",
			slog.String("err", err.Error()),
		)
		http.Error(w, "can't load bookings", http.StatusInternalServerError)
		return
	}
	if !until.IsZero() {
		l.SetBookings(booking.Until(l.All(), until))
	}
	table := s.reporter.Build(s.reportTitle(), s.now(), l.Filtered())

	var buf bytes.Buffer
	if err := report.Render(&buf, table); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't render report",
			slog.String("err", err.Error()),
		)
		http.Error(w, "can't render report", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ListBookings returns the filtered bookings as JSON.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get(searchParam)
	all, err := s.repo.Bookings().GetBookings(r.Context(), entity.Descending)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't get bookings",
			slog.String("err", err.Error()),
		)
		respond.Error(w, r, http.StatusInternalServerError, "can't get bookings")
		return
	}
	filtered := booking.Filter(all, term)
	respond.JSON(w, r, http.StatusOK, dto.ListBookingsResponse{
		Term:     term,
		Total:    len(all),
		Bookings: dto.ConvertEntityBookingsToDto(filtered),
	})
}
