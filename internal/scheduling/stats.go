package scheduling

import (
	"math"
	"time"

	"github.com/jinzhu/now"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// StatsPeriod переводит пару календарных дат в полуоткрытый интервал [from 00:00, to+1 00:00)
// Границы дней считаются в зоне сетки
func StatsPeriod(from, to time.Time, cfg GridConfig) domain.Interval {
	loc := cfg.location()
	start := now.With(from.In(loc)).BeginningOfDay()
	end := now.With(to.In(loc)).BeginningOfDay().AddDate(0, 0, 1)
	return domain.NewInterval(start, end)
}

// ComputeStats агрегирует бронирования, пересекающие период
// Выручка и загрузка учитывают только confirmed и completed
// Загрузка - доля забронированных часов от рабочих часов помещения за период, в процентах
func ComputeStats(
	bookings []*domain.Booking,
	facilities []*domain.Facility,
	period domain.Interval,
	cfg GridConfig,
) domain.BookingStats {
	stats := domain.BookingStats{
		Period:              period,
		FacilityUtilization: make([]domain.FacilityUtilization, len(facilities)),
	}

	index := make(map[string]int, len(facilities))
	for i, f := range facilities {
		stats.FacilityUtilization[i] = domain.FacilityUtilization{FacilityID: f.ID, FacilityName: f.Name}
		index[f.ID] = i
	}

	for _, b := range bookings {
		if !period.Overlaps(b.Interval()) {
			continue
		}

		stats.TotalBookings++
		switch b.Status {
		case domain.StatusPending:
			stats.PendingBookings++
		case domain.StatusConfirmed:
			stats.ConfirmedBookings++
		case domain.StatusCancelled:
			stats.CancelledBookings++
		case domain.StatusCompleted:
			stats.CompletedBookings++
		}

		if b.Status != domain.StatusConfirmed && b.Status != domain.StatusCompleted {
			continue
		}

		stats.TotalRevenue += b.Cost
		if i, ok := index[b.FacilityID]; ok {
			stats.FacilityUtilization[i].Bookings++
			stats.FacilityUtilization[i].BookedHours += period.Intersection(b.Interval()).Hours()
		}
	}

	available := operatingHours(period, cfg)
	for i := range stats.FacilityUtilization {
		u := &stats.FacilityUtilization[i]
		u.BookedHours = round2(u.BookedHours)
		if available > 0 {
			u.Utilization = round2(math.Min(100, u.BookedHours/available*100))
		}
	}
	stats.TotalRevenue = round2(stats.TotalRevenue)

	return stats
}

// operatingHours рабочие часы одного помещения за период (по числу календарных дней)
func operatingHours(period domain.Interval, cfg GridConfig) float64 {
	days := math.Ceil(period.Hours() / 24)
	return days * float64(cfg.SlotCount()) * cfg.SlotDuration().Hours()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
