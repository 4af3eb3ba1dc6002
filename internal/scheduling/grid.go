package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// ErrInvalidGridConfig возвращается при некорректной конфигурации сетки доступности
var ErrInvalidGridConfig = errors.New("scheduling: invalid grid config")

// GridConfig задает рабочее окно facility и размер слота
// CloseHour не включается: при OpenHour=8, CloseHour=23 последний часовой слот 22:00-23:00
type GridConfig struct {
	OpenHour    int
	CloseHour   int
	SlotMinutes int
	Location    *time.Location
}

// DefaultGridConfig часовые слоты с 08:00 до 23:00 по UTC
func DefaultGridConfig() GridConfig {
	return GridConfig{
		OpenHour:    domain.DefaultOpenHour,
		CloseHour:   domain.DefaultCloseHour,
		SlotMinutes: domain.DefaultSlotMinutes,
		Location:    time.UTC,
	}
}

// Validate проверяет конфигурацию
func (c GridConfig) Validate() error {
	if c.OpenHour < 0 || c.CloseHour > 24 || c.OpenHour >= c.CloseHour {
		return fmt.Errorf("%w: open hour %d must be before close hour %d within 0-24", ErrInvalidGridConfig, c.OpenHour, c.CloseHour)
	}
	if c.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot minutes must be positive", ErrInvalidGridConfig)
	}
	if ((c.CloseHour-c.OpenHour)*60)%c.SlotMinutes != 0 {
		return fmt.Errorf("%w: operating window is not a multiple of %d minutes", ErrInvalidGridConfig, c.SlotMinutes)
	}
	return nil
}

// SlotCount количество слотов в сетке дня
func (c GridConfig) SlotCount() int {
	return (c.CloseHour - c.OpenHour) * 60 / c.SlotMinutes
}

// SlotDuration длительность одного слота
func (c GridConfig) SlotDuration() time.Duration {
	return time.Duration(c.SlotMinutes) * time.Minute
}

// OperatingWindow рабочее окно для календарной даты date
// Берется только год/месяц/день date, время и зона date игнорируются
func (c GridConfig) OperatingWindow(date time.Time) domain.Interval {
	return domain.NewInterval(c.slotStart(date, 0), c.slotStart(date, c.SlotCount()))
}

// slotStart начало i-го слота дня (time.Date корректно нормализует переполнение минут и переходы DST)
func (c GridConfig) slotStart(date time.Time, i int) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.OpenHour, i*c.SlotMinutes, 0, 0, c.location())
}

func (c GridConfig) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}
