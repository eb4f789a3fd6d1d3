// Package view renders the server side pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/jekabolt/seminar-booking/internal/booking"
	"github.com/jekabolt/seminar-booking/internal/entity"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const (
	PageBooking = "booking.gohtml"
	PageAdmin   = "admin.gohtml"
	PageLogin   = "login.gohtml"
)

// Translator localizes message ids.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

// Notice is the banner shown above the page content.
type Notice struct {
	Kind  string
	Title string
	Body  string
}

func Success(title, body string) *Notice { return &Notice{Kind: "success", Title: title, Body: body} }

func Error(body string) *Notice { return &Notice{Kind: "error", Body: body} }

// Page is the root value every template executes against.
type Page struct {
	Locale string
	Title  string
	Notice *Notice
	Data   any
}

// ParticipantRow is one entry of the booking form.
type ParticipantRow struct {
	booking.Participant
	Index int
}

func (p ParticipantRow) Number() int { return p.Index + 1 }

// Key is the input name of field for this entry.
func (p ParticipantRow) Key(field string) string {
	return booking.FormKey(p.Index, booking.Field(field))
}

type BookingData struct {
	Event        entity.Event
	Participants []ParticipantRow
	GroupTypes   []entity.GroupType
}

// NewBookingData lays out the form entries for rendering.
func NewBookingData(ev entity.Event, f *booking.Form) BookingData {
	entries := f.Entries()
	rows := make([]ParticipantRow, 0, len(entries))
	for i, p := range entries {
		rows = append(rows, ParticipantRow{Participant: p, Index: i})
	}
	return BookingData{Event: ev, Participants: rows, GroupTypes: entity.GroupTypes}
}

type AdminData struct {
	Event entity.Event
	Term  string
	// Until pins the report download to the rows shown, RFC 3339.
	Until string
	Total int
	Rows  [][]string
}

type LoginData struct {
	Email string
}

// Renderer executes the layout together with one page template.
type Renderer struct {
	pages map[string]*template.Template
}

func New(tr Translator) (*Renderer, error) {
	funcs := template.FuncMap{
		"t": func(locale, key string, kv ...any) string {
			var data map[string]any
			if len(kv) > 1 {
				data = make(map[string]any, len(kv)/2)
				for i := 0; i+1 < len(kv); i += 2 {
					data[fmt.Sprint(kv[i])] = kv[i+1]
				}
			}
			return tr.T(locale, key, data)
		},
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageBooking, PageAdmin, PageLogin} {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, "templates/layout.gohtml", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template '%s': %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render writes page with the given status. The page is rendered into a
// buffer first so a template error still yields a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, p Page) {
	tmpl, ok := r.pages[page]
	if !ok {
		slog.Default().ErrorContext(req.Context(), "unknown page", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", p); err != nil {
		slog.Default().ErrorContext(req.Context(), "can't render page",
			slog.String("page", page),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
