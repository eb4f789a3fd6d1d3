// Package report renders booking listings as a downloadable PDF table.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-pdf/fpdf"
	"github.com/jekabolt/seminar-booking/internal/entity"
)

// Filename is the name the report is downloaded under.
const Filename = "bookings-report.pdf"

const placeholder = "-"

// Header is the fixed column set of the report.
var Header = []string{"Name", "Email", "Phone", "ABO Number", "Group Type", "Referral", "Diamond", "Date"}

// column widths in mm, sized for A4 landscape with 10mm margins
var widths = []float64{40, 52, 30, 28, 22, 34, 34, 29}

type Config struct {
	DateLayout string `mapstructure:"date_layout"`
	Timezone   string `mapstructure:"timezone"`
}

// Reporter formats bookings into report tables.
type Reporter struct {
	layout string
	loc    *time.Location
}

// New validates the configured timezone and returns a Reporter.
func New(c Config) (*Reporter, error) {
	r := &Reporter{layout: c.DateLayout, loc: time.UTC}
	if r.layout == "" {
		r.layout = "02/01/2006"
	}
	if c.Timezone != "" {
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
		}
		r.loc = loc
	}
	return r, nil
}

// FormatDate renders t in the reporter's timezone and layout.
func (r *Reporter) FormatDate(t time.Time) string {
	return t.In(r.loc).Format(r.layout)
}

// Table is a report ready to be rendered.
type Table struct {
	Title     string
	Generated string
	Header    []string
	Rows      [][]string
}

// Build maps bookings to report rows in the given order, substituting a
// placeholder for blank optional fields.
func (r *Reporter) Build(title string, generatedAt time.Time, bookings []entity.Booking) Table {
	t := Table{
		Title:     title,
		Generated: "Generated on " + r.FormatDate(generatedAt),
		Header:    Header,
		Rows:      make([][]string, 0, len(bookings)),
	}
	for _, b := range bookings {
		t.Rows = append(t.Rows, []string{
			b.Name,
			b.Email,
			b.Phone,
			orPlaceholder(b.AboNumber.String),
			orPlaceholder(b.GroupType.String),
			orPlaceholder(b.ReferralName.String),
			orPlaceholder(b.DiamondName.String),
			r.FormatDate(b.CreatedAt),
		})
	}
	return t
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// Render writes t as an A4 landscape PDF. Long values wrap inside their
// column and the header row is repeated on every page.
func Render(w io.Writer, t Table) error {
	return render(w, t, true)
}

func render(w io.Writer, t Table, compress bool) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	_, pageH := pdf.GetPageSize()
	left, _, _, bottom := pdf.GetMargins()

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(218, 165, 32)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range t.Header {
			pdf.CellFormat(widths[i], lineH+1, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 7, tr(t.Generated), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for _, row := range t.Rows {
		cells := wrapRow(pdf, tr, row)
		rowH := lineH
		for _, lines := range cells {
			if h := float64(len(lines)) * lineH; h > rowH {
				rowH = h
			}
		}
		if pdf.GetY()+rowH > pageH-bottom {
			pdf.AddPage()
			header()
		}

		x, y := left, pdf.GetY()
		for i, lines := range cells {
			pdf.Rect(x, y, widths[i], rowH, "D")
			for j, line := range lines {
				pdf.SetXY(x, y+float64(j)*lineH)
				pdf.CellFormat(widths[i], lineH, tr(line), "", 0, "L", false, 0, "")
			}
			x += widths[i]
		}
		pdf.SetXY(left, y+rowH)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return pdf.Output(w)
}

// line height of a body row in mm
const lineH = 5.0

// cell padding fpdf applies on each side of a cell
const cellPad = 1.0

// wrapRow splits every cell of row into lines fitting its column.
func wrapRow(pdf *fpdf.Fpdf, tr func(string) string, row []string) [][]string {
	out := make([][]string, len(row))
	for i, cell := range row {
		out[i] = wrap(cell, widths[i]-2*cellPad, func(s string) float64 {
			return pdf.GetStringWidth(tr(s))
		})
	}
	return out
}

// wrap breaks s into lines no wider than width, splitting on spaces and
// breaking words that are wider than a line on their own. s stays UTF-8;
// measure decides the width of a candidate line.
func wrap(s string, width float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		for measure(word) > width {
			r := []rune(word)
			n := len(r) - 1
			for n > 1 && measure(string(r[:n])) > width {
				n--
			}
			if n < 1 {
				n = 1
			}
			lines = append(lines, string(r[:n]))
			word = string(r[n:])
		}
		line = word
	}
	if line != "" || len(lines) == 0 {
		lines = append(lines, line)
	}
	return lines
}
