package domain

// AvailabilitySlot represents a fixed-size bucket of a facility's day
type AvailabilitySlot struct {
	Interval
	Available bool
	BookingID *string // first booking occupying the slot
}

// IsOccupied returns true if an active booking overlaps the slot
func (s *AvailabilitySlot) IsOccupied() bool {
	return !s.Available
}
