package scheduling

import (
	"math"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// CalculateCost стоимость бронирования: hourlyRate × длительность в часах, округление до сотых
// Если ставка не задана - бронирование бесплатное
func CalculateCost(hourlyRate *float64, interval domain.Interval) float64 {
	if hourlyRate == nil || !interval.IsValid() {
		return 0
	}
	return math.Round(*hourlyRate*interval.Hours()*100) / 100
}
