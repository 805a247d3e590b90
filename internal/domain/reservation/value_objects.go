package reservation

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"restaurant-booking/internal/pkg/phone"
)

const (
	MinNameLength    = 2
	MaxNameLength    = 100
	MinGuests        = 1
	MaxGuests        = 8
	MaxMessageLength = 500
	DateLayout       = "2006-01-02"
)

var (
	ErrInvalidName    = errors.New("name must be between 2 and 100 characters")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidTime    = errors.New("invalid time")
	ErrInvalidGuests  = errors.New("guests must be between 1 and 8")
	ErrMessageTooLong = errors.New("message must be at most 500 characters")
	ErrReasonTooLong  = errors.New("cancellation reason must be at most 500 characters")
	ErrInvalidStatus  = errors.New("invalid reservation status")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	slotRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Date is a calendar day without time of day or zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Time() time.Time       { return d.t }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Equal(o Date) bool     { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool    { return d.t.Before(o.t) }
func (d Date) After(o Date) bool     { return d.t.After(o.t) }
func (d Date) AddDays(n int) Date    { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) AddMonths(n int) Date  { return Date{t: d.t.AddDate(0, n, 0)} }
func (d Date) Compare(o Date) int    { return d.t.Compare(o.t) }

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		// Older documents may hold a full ISO timestamp.
		t, terr := time.Parse(time.RFC3339, string(b))
		if terr != nil {
			return err
		}
		parsed = DateOf(t)
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDate
	}
	return d.UnmarshalText([]byte(s))
}

func NewName(s string) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < MinNameLength || n > MaxNameLength {
		return "", ErrInvalidName
	}
	return s, nil
}

func NewEmail(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return s, nil
}

// NewPhone validates a French number and returns it without separators.
func NewPhone(s string) (string, error) {
	if !phone.Valid(s) {
		return "", ErrInvalidPhone
	}
	return phone.Canonical(s), nil
}

// NewSlot checks the HH:MM shape only; membership in the catalog is a restaurant concern.
func NewSlot(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !slotRegex.MatchString(s) {
		return "", ErrInvalidTime
	}
	return s, nil
}

func ValidSlot(s string) bool {
	return slotRegex.MatchString(s)
}

func NewGuests(n int) (int, error) {
	if n < MinGuests || n > MaxGuests {
		return 0, ErrInvalidGuests
	}
	return n, nil
}

func NewMessage(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return s, nil
}

func NewCancellationReason(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxMessageLength {
		return "", ErrReasonTooLong
	}
	return s, nil
}
