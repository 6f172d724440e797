package book

import (
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact card: a Name, an ordered sequence of unique Phones,
// and an optional Birthday. The name never changes after creation; all other
// state is owned exclusively by the record.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord validates rawName and creates an empty record for it.
func NewRecord(rawName string) (*Record, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}
	return &Record{name: name}, nil
}

// Name returns the identity key of the record.
func (r *Record) Name() string {
	return r.name.String()
}

// Phones returns a copy of the phone sequence in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Adding a phone whose digit string is
// already present is a silent no-op, so the call is idempotent.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if r.hasPhone(phone.value) {
		return nil
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone normalizes raw to its digit string and returns the matching
// phone. It never mutates and never fails: a malformed input simply does not
// match anything.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	digits := NormalizeDigits(raw)
	for _, p := range r.phones {
		if p.value == digits {
			return p, true
		}
	}
	return Phone{}, false
}

// RemovePhone removes the first phone matching raw's digit string and
// reports whether a removal happened.
func (r *Record) RemovePhone(raw string) bool {
	digits := NormalizeDigits(raw)
	for i, p := range r.phones {
		if p.value == digits {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces the phone matching oldRaw with newRaw. The new value is
// validated before anything else, so a malformed input leaves the record
// untouched. When the new digit string is already stored, the matched entry
// is removed instead of replaced, collapsing the duplicate; the call still
// reports success. Returns false when oldRaw matches nothing.
func (r *Record) EditPhone(oldRaw, newRaw string) (bool, error) {
	newPhone, err := NewPhone(newRaw)
	if err != nil {
		return false, err
	}
	oldDigits := NormalizeDigits(oldRaw)
	for i, p := range r.phones {
		if p.value != oldDigits {
			continue
		}
		if r.hasPhone(newPhone.value) {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true, nil
		}
		r.phones[i] = newPhone
		return true, nil
	}
	return false, nil
}

// AddBirthday parses raw as DD.MM.YYYY and stores it. A record holds at most
// one birthday; a second assignment fails without touching the first.
func (r *Record) AddBirthday(raw string, today time.Time) error {
	if r.birthday != nil {
		return &DomainError{Reason: config.ErrBirthdaySet}
	}
	b, err := NewBirthday(raw, today)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// SetBirthday stores an already validated Birthday, enforcing the same
// single-assignment rule as AddBirthday. Used by collaborators that hold a
// date rather than a raw string (snapshot loading, vCard import).
func (r *Record) SetBirthday(b Birthday) error {
	if r.birthday != nil {
		return &DomainError{Reason: config.ErrBirthdaySet}
	}
	r.birthday = &b
	return nil
}

func (r *Record) hasPhone(digits string) bool {
	for _, p := range r.phones {
		if p.value == digits {
			return true
		}
	}
	return false
}
