package frontend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jekabolt/seminar-booking/internal/apisrv/respond"
	"github.com/jekabolt/seminar-booking/internal/booking"
	"github.com/jekabolt/seminar-booking/internal/dependency"
	"github.com/jekabolt/seminar-booking/internal/dto"
	"github.com/jekabolt/seminar-booking/internal/entity"
	gerr "github.com/jekabolt/seminar-booking/internal/errors"
	"github.com/jekabolt/seminar-booking/internal/i18n"
	"github.com/jekabolt/seminar-booking/internal/middleware"
	"github.com/jekabolt/seminar-booking/internal/ratelimit"
	"github.com/jekabolt/seminar-booking/internal/view"
)

const (
	actionAdd    = "add"
	actionSubmit = "submit"
)

// Server implements the public booking handlers.
type Server struct {
	repo    dependency.Repository
	mailer  dependency.Mailer
	limiter *ratelimit.MultiKeyLimiter
	view    *view.Renderer
	tr      *i18n.Translator
	event   entity.Event
}

// New creates a new server with frontend handlers. mailer may be nil when
// confirmation mails are disabled.
func New(
	r dependency.Repository,
	m dependency.Mailer,
	l *ratelimit.MultiKeyLimiter,
	vr *view.Renderer,
	tr *i18n.Translator,
	ev entity.Event,
) *Server {
	return &Server{
		repo:    r,
		mailer:  m,
		limiter: l,
		view:    vr,
		tr:      tr,
		event:   ev,
	}
}

// submit validates and persists the entries, then queues confirmations.
// Only valid submissions count against the per-client quota.
func (s *Server) submit(ctx context.Context, f *booking.Form) ([]entity.Booking, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.limiter.CheckBooking(middleware.GetClientIP(ctx)); err != nil {
		return nil, err
	}
	created, err := booking.SubmitBatch(ctx, s.repo.Bookings(), f.Inserts())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't submit booking",
			slog.String("err", err.Error()),
			slog.Int("participants", f.Len()),
			slog.Int("submitted", len(created)),
		)
		return nil, gerr.ErrBookingFailed
	}
	s.confirm(ctx, created)
	return created, nil
}

func (s *Server) confirm(ctx context.Context, created []entity.Booking) {
	if s.mailer == nil {
		return
	}
	for _, b := range created {
		err := s.mailer.SendBookingConfirmation(ctx, entity.ConfirmationMail{
			BookingID: b.ID,
			To:        b.Email,
			Name:      b.Name,
			Event:     s.event,
		})
		if err != nil {
			slog.Default().ErrorContext(ctx, "can't queue confirmation mail",
				slog.String("err", err.Error()),
				slog.String("booking_id", b.ID),
			)
		}
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, f *booking.Form, notice *view.Notice) {
	s.view.Render(w, r, status, view.PageBooking, view.Page{
		Locale: s.tr.LocaleFromRequest(r),
		Title:  s.event.Name,
		Notice: notice,
		Data:   view.NewBookingData(s.event, f),
	})
}

// BookingPage renders the form with one blank participant.
func (s *Server) BookingPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, booking.NewForm(), nil)
}

// SubmitBooking handles both form actions: add appends a blank entry and
// submit persists every entry in order.
func (s *Server) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	locale := s.tr.LocaleFromRequest(r)
	failed := view.Error(s.tr.T(locale, i18n.MsgBookingFailed, nil))

	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, booking.NewForm(), failed)
		return
	}
	f, err := booking.ParseForm(r.PostForm)
	if err != nil {
		slog.Default().WarnContext(r.Context(), "can't parse booking form",
			slog.String("err", err.Error()),
		)
		if f == nil {
			f = booking.NewForm()
		}
		s.render(w, r, http.StatusBadRequest, f, failed)
		return
	}

	action := r.PostForm.Get("action")
	if action == actionAdd {
		if err := f.Add(); err != nil {
			s.render(w, r, http.StatusBadRequest, f, failed)
			return
		}
		s.render(w, r, http.StatusOK, f, nil)
		return
	}
	if action != "" && action != actionSubmit {
		s.render(w, r, http.StatusBadRequest, f, failed)
		return
	}

	_, err = s.submit(r.Context(), f)
	var ve *booking.ValidationError
	switch {
	case err == nil:
		f.Reset()
		s.render(w, r, http.StatusOK, f, view.Success(
			s.tr.T(locale, i18n.MsgBookingSuccessTitle, nil),
			s.tr.T(locale, i18n.MsgBookingSuccessBody, map[string]any{"Event": s.event.Name}),
		))
	case errors.As(err, &ve):
		s.render(w, r, http.StatusUnprocessableEntity, f,
			view.Error(s.tr.T(locale, i18n.MsgBookingInvalid, map[string]any{"Index": ve.Index + 1})))
	case errors.Is(err, gerr.ErrTooManyRequests):
		s.render(w, r, http.StatusTooManyRequests, f, view.Error(s.tr.T(locale, i18n.MsgTooManyRequests, nil)))
	default:
		s.render(w, r, http.StatusInternalServerError, f, failed)
	}
}

// CreateBookings is the JSON variant of the submit action.
func (s *Server) CreateBookings(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingsRequest
	if err := respond.Decode(w, r, &req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, gerr.ErrBookingFailed.Error())
		return
	}
	if len(req.Participants) == 0 {
		respond.Error(w, r, http.StatusBadRequest, "at least one participant is required")
		return
	}
	f, err := booking.FromParticipants(req.Participants)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.submit(r.Context(), f)
	var ve *booking.ValidationError
	switch {
	case err == nil:
		respond.JSON(w, r, http.StatusCreated, dto.CreateBookingsResponse{
			Bookings: dto.ConvertEntityBookingsToDto(created),
		})
	case errors.As(err, &ve):
		respond.Error(w, r, http.StatusUnprocessableEntity, ve.Error())
	case errors.Is(err, gerr.ErrTooManyRequests):
		respond.Error(w, r, http.StatusTooManyRequests, gerr.ErrTooManyRequests.Error())
	default:
		respond.Error(w, r, http.StatusInternalServerError, gerr.ErrBookingFailed.Error())
	}
}
