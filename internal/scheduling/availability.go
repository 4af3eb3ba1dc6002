package scheduling

import (
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// BuildAvailability строит сетку доступности facility на календарную дату
// Длина результата всегда равна cfg.SlotCount(), независимо от количества бронирований
// Для каждого слота используется тот же предикат пересечения, что и в FindConflicts (отменённые не учитываются);
// к занятому слоту прикрепляется первое найденное бронирование
func BuildAvailability(
	bookings []*domain.Booking,
	facilityID string,
	date time.Time,
	cfg GridConfig,
) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, cfg.SlotCount())

	for i := range slots {
		slot := domain.NewInterval(cfg.slotStart(date, i), cfg.slotStart(date, i+1))

		slots[i] = domain.AvailabilitySlot{
			Interval:  slot,
			Available: true,
		}

		if occupant := firstOverlapping(bookings, facilityID, slot, ""); occupant != nil {
			id := occupant.ID
			slots[i].Available = false
			slots[i].BookingID = &id
		}
	}

	return slots
}
