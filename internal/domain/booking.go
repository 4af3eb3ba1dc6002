package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// allowedTransitions describes the booking state machine.
// cancelled and completed are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal returns true if no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo returns true if the state machine allows moving from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Requester identifies who placed the booking
type Requester struct {
	ID         string
	Name       string
	Department string
}

// Booking represents a facility reservation
type Booking struct {
	ID           string
	FacilityID   string
	FacilityName string // denormalized for history
	Requester    Requester
	Purpose      string
	EventTitle   string
	StartTime    time.Time
	EndTime      time.Time
	Status       BookingStatus
	Attendees    int

	SpecialRequirements *string
	EquipmentRequested  []string

	Cost float64

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Interval returns the booked time range
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking blocks its time range.
// Pending bookings block as well: a slot awaiting approval cannot be given away.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeModified returns true if the booking details may still change
func (b *Booking) CanBeModified() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Clone returns a deep copy of the booking
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.SpecialRequirements != nil {
		v := *b.SpecialRequirements
		c.SpecialRequirements = &v
	}
	if b.EquipmentRequested != nil {
		c.EquipmentRequested = append([]string(nil), b.EquipmentRequested...)
	}
	if b.CancelledAt != nil {
		v := *b.CancelledAt
		c.CancelledAt = &v
	}
	return &c
}

// BookingsFilter filters bookings in the booking store.
// All criteria are optional and combined with AND.
type BookingsFilter struct {
	FacilityID  *string
	RequesterID *string
	Status      *BookingStatus
	Window      *Interval  // only bookings overlapping the window
	EndedBy     *time.Time // only bookings with EndTime <= EndedBy
	ActiveOnly  bool       // exclude cancelled bookings
}

// Matches returns true if the booking satisfies the filter
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.FacilityID != nil && b.FacilityID != *f.FacilityID {
		return false
	}
	if f.RequesterID != nil && b.Requester.ID != *f.RequesterID {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.Window != nil && !f.Window.Overlaps(b.Interval()) {
		return false
	}
	if f.EndedBy != nil && b.EndTime.After(*f.EndedBy) {
		return false
	}
	if f.ActiveOnly && !b.IsActive() {
		return false
	}
	return true
}
