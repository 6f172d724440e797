package book

import (
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Name is the trimmed, non-empty identity key of a Record.
// It is immutable after construction.
type Name struct {
	value string
}

// NewName trims the raw input and rejects empty results.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, &ValidationError{Reason: config.ErrEmptyName}
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a canonical string of exactly 10 decimal digits.
type Phone struct {
	value string
}

// NormalizeDigits strips every non-digit character from raw.
// Normalizing an already normalized string is a no-op.
func NormalizeDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewPhone normalizes raw and rejects anything that does not leave exactly
// 10 digits behind.
func NewPhone(raw string) (Phone, error) {
	digits := NormalizeDigits(raw)
	if len(digits) != config.PhoneDigits {
		return Phone{}, &ValidationError{Reason: config.ErrPhoneLength}
	}
	return Phone{value: digits}, nil
}

func (p Phone) String() string {
	return p.value
}

// Equal compares two phones by their canonical digit strings.
func (p Phone) Equal(other Phone) bool {
	return p.value == other.value
}

// Birthday is a calendar date that is never in the future. It renders back
// to the exact DD.MM.YYYY form it was parsed from.
type Birthday struct {
	value time.Time
}

// NewBirthday parses raw strictly as DD.MM.YYYY. Impossible calendar days
// (e.g. 31.04) fail the parse. The result must not be after today.
func NewBirthday(raw string, today time.Time) (Birthday, error) {
	parsed, err := time.Parse(config.DateFormatBirthday, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}, &ValidationError{Reason: config.ErrDateFormat}
	}
	return BirthdayFromDate(parsed, today)
}

// BirthdayFromDate accepts an already constructed date, applying the same
// future-date check as NewBirthday.
func BirthdayFromDate(d time.Time, today time.Time) (Birthday, error) {
	d = DateOnly(d)
	if d.After(DateOnly(today)) {
		return Birthday{}, &ValidationError{Reason: config.ErrFutureBirthday}
	}
	return Birthday{value: d}, nil
}

// Date returns the underlying calendar date at midnight UTC.
func (b Birthday) Date() time.Time {
	return b.value
}

func (b Birthday) String() string {
	return b.value.Format(config.DateFormatBirthday)
}

// DateOnly truncates t to midnight UTC. Birthdays are calendar dates, not
// instants, so all date arithmetic in this package happens on this canonical
// form.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
