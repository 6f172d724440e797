package book

// ValidationError reports malformed field input (name, phone, birthday).
// It is returned by the field constructors and propagated unchanged by the
// Record operations that call them.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// DomainError reports a record-level rule violation that is not a format
// issue, such as assigning a second birthday.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}
