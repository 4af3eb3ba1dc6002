package check_conflicts

import (
	"fmt"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(facilityID, startStr, endStr, excludeBookingID string) (*models.CheckConflictsRequest, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}

	return &models.CheckConflictsRequest{
		FacilityID:       facilityID,
		StartTime:        start,
		EndTime:          end,
		ExcludeBookingID: excludeBookingID,
	}, nil
}
