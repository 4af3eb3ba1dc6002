package scheduling

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

var testDay = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 15, hour, minute, 0, 0, time.UTC)
}

func booking(id, facilityID string, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		FacilityID: facilityID,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
		Attendees:  10,
	}
}
