package update_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// validateRequest валидирует переданные поля запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if !req.hasChanges() {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Purpose != nil {
		if err := validateText("purpose", *req.Purpose, domain.MaxPurposeLength); err != nil {
			return err
		}
	}

	if req.EventTitle != nil {
		if err := validateText("eventTitle", *req.EventTitle, domain.MaxEventTitleLength); err != nil {
			return err
		}
	}

	if req.Attendees != nil && *req.Attendees <= 0 {
		return fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	if (req.StartTime != nil && req.StartTime.IsZero()) || (req.EndTime != nil && req.EndTime.IsZero()) {
		return fmt.Errorf("%w: startTime and endTime must not be empty", ErrInvalidInput)
	}

	if req.SpecialRequirements != nil && utf8.RuneCountInString(*req.SpecialRequirements) > domain.MaxSpecialRequirementsLength {
		return fmt.Errorf("%w: specialRequirements must be at most %d characters", ErrInvalidInput, domain.MaxSpecialRequirementsLength)
	}

	if req.EquipmentRequested != nil && len(*req.EquipmentRequested) > domain.MaxEquipmentItems {
		return fmt.Errorf("%w: at most %d equipment items", ErrInvalidInput, domain.MaxEquipmentItems)
	}

	return nil
}

func validateText(field, value string, maxLength int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, maxLength)
	}
	return nil
}

// applyChanges возвращает копию бронирования с примененными изменениями
func applyChanges(b *domain.Booking, req *Request) *domain.Booking {
	updated := b.Clone()

	if req.Purpose != nil {
		updated.Purpose = *req.Purpose
	}
	if req.EventTitle != nil {
		updated.EventTitle = *req.EventTitle
	}
	if req.StartTime != nil {
		updated.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		updated.EndTime = req.EndTime.UTC()
	}
	if req.Attendees != nil {
		updated.Attendees = *req.Attendees
	}
	if req.SpecialRequirements != nil {
		// Пустая строка очищает поле
		if *req.SpecialRequirements == "" {
			updated.SpecialRequirements = nil
		} else {
			v := *req.SpecialRequirements
			updated.SpecialRequirements = &v
		}
	}
	if req.EquipmentRequested != nil {
		updated.EquipmentRequested = append([]string(nil), (*req.EquipmentRequested)...)
	}

	return updated
}
