package scheduling

import "github.com/m04kA/campus-facility-booking/internal/domain"

// FindConflicts возвращает все активные бронирования facility, пересекающиеся с запрошенным интервалом
// Чистая функция над снимком бронирований, ничего не изменяет
//
// Пропускаются:
// - бронирования других facility
// - бронирование с ID excludeBookingID (перепроверка при обновлении самого себя)
// - отменённые бронирования
//
// Интервалы полуоткрытые: бронирование, заканчивающееся ровно в момент начала запрошенного, НЕ конфликтует
// Для каждого пересечения возвращается окно [max(start), min(end))
func FindConflicts(
	bookings []*domain.Booking,
	facilityID string,
	requested domain.Interval,
	excludeBookingID string,
) []domain.Conflict {
	conflicts := make([]domain.Conflict, 0)

	for _, booking := range bookings {
		if !blocks(booking, facilityID, excludeBookingID) {
			continue
		}

		bookingInterval := booking.Interval()
		if !requested.Overlaps(bookingInterval) {
			continue
		}

		conflicts = append(conflicts, domain.Conflict{
			FacilityID: facilityID,
			Booking:    booking,
			Overlap:    requested.Intersection(bookingInterval),
		})
	}

	return conflicts
}

// HasConflicts сообщает, есть ли хотя бы одно пересечение
func HasConflicts(bookings []*domain.Booking, facilityID string, requested domain.Interval, excludeBookingID string) bool {
	return firstOverlapping(bookings, facilityID, requested, excludeBookingID) != nil
}

// firstOverlapping возвращает первое (в порядке снимка) активное бронирование, пересекающееся с интервалом
func firstOverlapping(
	bookings []*domain.Booking,
	facilityID string,
	interval domain.Interval,
	excludeBookingID string,
) *domain.Booking {
	for _, booking := range bookings {
		if blocks(booking, facilityID, excludeBookingID) && interval.Overlaps(booking.Interval()) {
			return booking
		}
	}
	return nil
}

// blocks сообщает, может ли бронирование занимать время facility
func blocks(booking *domain.Booking, facilityID string, excludeBookingID string) bool {
	if booking == nil || booking.FacilityID != facilityID {
		return false
	}
	if excludeBookingID != "" && booking.ID == excludeBookingID {
		return false
	}
	return booking.IsActive()
}
