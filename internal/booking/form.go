// Package booking holds the booking form model, the ordered batch submit
// and the admin listing filter.
package booking

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/seminar-booking/internal/entity"
)

// MaxParticipants caps the number of entries one form may carry.
const MaxParticipants = 50

// Field names one editable participant attribute.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldAboNumber    Field = "abo_number"
	FieldGroupType    Field = "group_type"
	FieldReferralName Field = "referral_name"
	FieldDiamondName  Field = "diamond_name"
)

// Valid reports whether f names a participant field.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Fields lists participant fields in form order.
var Fields = []Field{
	FieldName, FieldEmail, FieldPhone, FieldAboNumber, FieldGroupType, FieldReferralName, FieldDiamondName,
}

var (
	ErrUnknownField   = errors.New("unknown participant field")
	ErrIndexRange     = errors.New("participant index out of range")
	ErrTooManyEntries = fmt.Errorf("more than %d participants", MaxParticipants)
)

// Participant is one entry of the booking form as typed by the visitor.
type Participant struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AboNumber    string `json:"abo_number"`
	GroupType    string `json:"group_type"`
	ReferralName string `json:"referral_name"`
	DiamondName  string `json:"diamond_name"`
}

func (p *Participant) field(f Field) (*string, error) {
	switch f {
	case FieldName:
		return &p.Name, nil
	case FieldEmail:
		return &p.Email, nil
	case FieldPhone:
		return &p.Phone, nil
	case FieldAboNumber:
		return &p.AboNumber, nil
	case FieldGroupType:
		return &p.GroupType, nil
	case FieldReferralName:
		return &p.ReferralName, nil
	case FieldDiamondName:
		return &p.DiamondName, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
}

// Validate applies the same constraints the form inputs carry: required
// name, email and phone, an email-shaped email and a known group type.
func (p Participant) Validate() error {
	groups := make([]interface{}, 0, len(entity.GroupTypes))
	for _, gt := range entity.GroupTypes {
		groups = append(groups, string(gt))
	}
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Email, validation.Required, validation.NewStringRule(govalidator.IsEmail, "must be a valid email address")),
		validation.Field(&p.Phone, validation.Required),
		validation.Field(&p.GroupType, validation.In(groups...)),
	)
}

// Insert converts the entry to a row, blank optional fields become NULL.
func (p Participant) Insert() entity.BookingInsert {
	return entity.BookingInsert{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		AboNumber:    nullString(p.AboNumber),
		GroupType:    nullString(p.GroupType),
		ReferralName: nullString(p.ReferralName),
		DiamondName:  nullString(p.DiamondName),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// ValidationError reports the first invalid entry of a form.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("participant %d: %v", e.Index+1, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Form is the ordered list of participant entries behind the booking page.
// It always holds at least one entry.
type Form struct {
	entries []Participant
}

// NewForm returns a form with a single blank entry.
func NewForm() *Form {
	f := &Form{}
	f.Reset()
	return f
}

// FromParticipants builds a form from already collected entries. An empty
// list yields a single blank entry.
func FromParticipants(ps []Participant) (*Form, error) {
	if len(ps) > MaxParticipants {
		return nil, ErrTooManyEntries
	}
	if len(ps) == 0 {
		return NewForm(), nil
	}
	entries := make([]Participant, len(ps))
	copy(entries, ps)
	return &Form{entries: entries}, nil
}

// Add appends one blank entry.
func (f *Form) Add() error {
	if len(f.entries) >= MaxParticipants {
		return ErrTooManyEntries
	}
	f.entries = append(f.entries, Participant{})
	return nil
}

// Update sets one field of the entry at index, leaving every other field
// and entry untouched.
func (f *Form) Update(index int, field Field, value string) error {
	if index < 0 || index >= len(f.entries) {
		return fmt.Errorf("%w: %d", ErrIndexRange, index)
	}
	p, err := f.entries[index].field(field)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// Reset returns the form to a single blank entry.
func (f *Form) Reset() {
	f.entries = []Participant{{}}
}

// Len returns the number of entries.
func (f *Form) Len() int {
	return len(f.entries)
}

// Entries returns a copy of the entries in order.
func (f *Form) Entries() []Participant {
	out := make([]Participant, len(f.entries))
	copy(out, f.entries)
	return out
}

// Validate checks every entry in order and stops at the first invalid one.
func (f *Form) Validate() error {
	for i, p := range f.entries {
		if err := p.Validate(); err != nil {
			return &ValidationError{Index: i, Err: err}
		}
	}
	return nil
}

// Inserts converts every entry to a row, preserving order.
func (f *Form) Inserts() []entity.BookingInsert {
	out := make([]entity.BookingInsert, 0, len(f.entries))
	for _, p := range f.entries {
		out = append(out, p.Insert())
	}
	return out
}

// FormKey is the input name for one field of one entry,
// e.g. participants.0.email.
func FormKey(index int, field Field) string {
	return "participants." + strconv.Itoa(index) + "." + string(field)
}

// ParseForm rebuilds a form from posted values. Entries are positioned by
// the index in their input names; gaps become blank entries. Inputs that do
// not follow the participants.<i>.<field> shape, or name an unknown field,
// are ignored. Entries past MaxParticipants yield ErrTooManyEntries together
// with the form holding the entries that fit.
func ParseForm(values url.Values) (*Form, error) {
	type input struct {
		index int
		field Field
		value string
	}
	var (
		inputs  []input
		count   int
		tooMany bool
	)
	for key, vs := range values {
		parts := strings.Split(key, ".")
		if len(parts) != 3 || parts[0] != "participants" || len(vs) == 0 {
			continue
		}
		i, err := strconv.Atoi(parts[1])
		if err != nil || i < 0 {
			continue
		}
		field := Field(parts[2])
		if !field.Valid() {
			continue
		}
		if i >= MaxParticipants {
			tooMany = true
			continue
		}
		inputs = append(inputs, input{index: i, field: field, value: vs[0]})
		if i+1 > count {
			count = i + 1
		}
	}

	f := NewForm()
	for f.Len() < count {
		if err := f.Add(); err != nil {
			return f, err
		}
	}
	sort.Slice(inputs, func(a, b int) bool { return inputs[a].index < inputs[b].index })
	for _, in := range inputs {
		if err := f.Update(in.index, in.field, in.value); err != nil {
			return f, err
		}
	}
	if tooMany {
		return f, ErrTooManyEntries
	}
	return f, nil
}
