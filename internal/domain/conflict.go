package domain

// Conflict pairs a requested interval with an existing active booking that overlaps it
type Conflict struct {
	FacilityID string
	Booking    *Booking
	Overlap    Interval
}

// ConflictError is returned when a booking cannot be admitted because of overlapping bookings.
// It carries the conflicts and free alternatives so the caller can offer another slot.
type ConflictError struct {
	Err         error
	Conflicts   []Conflict
	Suggestions []Interval
}

func (e *ConflictError) Error() string {
	return e.Err.Error()
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
