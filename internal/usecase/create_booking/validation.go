package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Интервал и вместимость проверяются отдельно, после загрузки помещения
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.FacilityID) == "" {
		return fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterID) == "" {
		return fmt.Errorf("%w: requester id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterName) == "" {
		return fmt.Errorf("%w: requester name is required", ErrInvalidInput)
	}

	if err := validateText("purpose", req.Purpose, domain.MaxPurposeLength); err != nil {
		return err
	}

	if err := validateText("eventTitle", req.EventTitle, domain.MaxEventTitleLength); err != nil {
		return err
	}

	if req.Attendees <= 0 {
		return fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	// Проверяем, что время начала и окончания указано
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.SpecialRequirements != nil && utf8.RuneCountInString(*req.SpecialRequirements) > domain.MaxSpecialRequirementsLength {
		return fmt.Errorf("%w: specialRequirements must be at most %d characters", ErrInvalidInput, domain.MaxSpecialRequirementsLength)
	}

	if len(req.EquipmentRequested) > domain.MaxEquipmentItems {
		return fmt.Errorf("%w: at most %d equipment items", ErrInvalidInput, domain.MaxEquipmentItems)
	}

	return nil
}

func validateText(field, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, maxLength)
	}
	return nil
}
