package domain

// FacilityType represents the kind of a bookable facility
type FacilityType string

const (
	FacilityTypeSeminarHall    FacilityType = "seminar-hall"
	FacilityTypeLaboratory     FacilityType = "laboratory"
	FacilityTypeConferenceRoom FacilityType = "conference-room"
	FacilityTypeAuditorium     FacilityType = "auditorium"
	FacilityTypeClassroom      FacilityType = "classroom"
)

// IsValid returns true if the type is one of the known facility types
func (t FacilityType) IsValid() bool {
	switch t {
	case FacilityTypeSeminarHall, FacilityTypeLaboratory, FacilityTypeConferenceRoom,
		FacilityTypeAuditorium, FacilityTypeClassroom:
		return true
	}
	return false
}

// Facility represents a bookable room, hall or lab from the campus catalog
type Facility struct {
	ID          string
	Name        string
	Type        FacilityType
	Building    string
	Floor       string
	Capacity    int
	Equipment   []string
	Amenities   []string
	HourlyRate  *float64 // nil = free of charge
	Description *string
	IsActive    bool
}

// IsBookable returns true if new bookings may be placed on the facility
func (f *Facility) IsBookable() bool {
	return f.IsActive
}

// FitsAttendees returns true if the facility can host the given number of attendees
func (f *Facility) FitsAttendees(attendees int) bool {
	return attendees > 0 && attendees <= f.Capacity
}
