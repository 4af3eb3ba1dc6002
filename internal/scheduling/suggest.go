package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// SuggestAlternatives подбирает свободные интервалы той же длительности в тот же день
// Кандидаты начинаются на границах слотов рабочего окна и целиком в него помещаются;
// сортировка - по удаленности от запрошенного начала (при равенстве раньше идет более ранний)
func SuggestAlternatives(
	bookings []*domain.Booking,
	facilityID string,
	requested domain.Interval,
	excludeBookingID string,
	cfg GridConfig,
	limit int,
) []domain.Interval {
	suggestions := make([]domain.Interval, 0)
	if limit <= 0 || !requested.IsValid() {
		return suggestions
	}

	localStart := requested.Start.In(cfg.location())
	window := cfg.OperatingWindow(localStart)
	duration := requested.Duration()

	for i := 0; i < cfg.SlotCount(); i++ {
		candidate := domain.NewInterval(cfg.slotStart(localStart, i), cfg.slotStart(localStart, i).Add(duration))
		if !window.Contains(candidate) {
			break
		}
		if HasConflicts(bookings, facilityID, candidate, excludeBookingID) {
			continue
		}
		suggestions = append(suggestions, candidate)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return distance(suggestions[i].Start, requested.Start) < distance(suggestions[j].Start, requested.Start)
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func distance(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}

// SearchWindow интервал, который нужно прочитать из хранилища, чтобы проверить requested
// и подобрать альтернативы: рабочее окно дня начала, расширенное до requested
func SearchWindow(requested domain.Interval, cfg GridConfig) domain.Interval {
	window := cfg.OperatingWindow(requested.Start.In(cfg.location()))
	if requested.Start.Before(window.Start) {
		window.Start = requested.Start
	}
	if requested.End.After(window.End) {
		window.End = requested.End
	}
	return window
}
