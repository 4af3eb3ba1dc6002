package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

func TestBuildAvailability_DefaultGrid(t *testing.T) {
	cfg := DefaultGridConfig()
	existing := []*domain.Booking{
		booking("b1", "F1", at(9, 0), at(11, 0), domain.StatusConfirmed),
		booking("b2", "F1", at(14, 30), at(15, 0), domain.StatusPending),
		booking("b3", "F1", at(16, 0), at(17, 0), domain.StatusCancelled),
		booking("b4", "F2", at(18, 0), at(19, 0), domain.StatusConfirmed),
	}

	slots := BuildAvailability(existing, "F1", testDay, cfg)

	require.Len(t, slots, 15)
	assert.Equal(t, at(8, 0), slots[0].Start)
	assert.Equal(t, at(9, 0), slots[0].End)
	assert.Equal(t, at(22, 0), slots[14].Start)
	assert.Equal(t, at(23, 0), slots[14].End)

	occupied := map[int]string{}
	for i, s := range slots {
		if !s.Available {
			require.NotNil(t, s.BookingID)
			occupied[s.Start.Hour()] = *s.BookingID
			assert.True(t, slots[i].IsOccupied())
		} else {
			assert.Nil(t, s.BookingID)
		}
	}

	assert.Equal(t, map[int]string{9: "b1", 10: "b1", 14: "b2"}, occupied)
}

func TestBuildAvailability_AlwaysSameLength(t *testing.T) {
	cfg := GridConfig{OpenHour: 9, CloseHour: 17, SlotMinutes: 30, Location: time.UTC}

	empty := BuildAvailability(nil, "F1", testDay, cfg)
	full := BuildAvailability([]*domain.Booking{
		booking("b1", "F1", at(0, 0), at(23, 59), domain.StatusConfirmed),
	}, "F1", testDay, cfg)

	assert.Len(t, empty, 16)
	assert.Len(t, full, 16)
	for _, s := range full {
		assert.False(t, s.Available)
	}
}

func TestBuildAvailability_Idempotent(t *testing.T) {
	existing := []*domain.Booking{booking("b1", "F1", at(12, 0), at(13, 0), domain.StatusConfirmed)}

	first := BuildAvailability(existing, "F1", testDay, DefaultGridConfig())
	second := BuildAvailability(existing, "F1", testDay, DefaultGridConfig())

	assert.Equal(t, first, second)
}

func TestBuildAvailability_UsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	cfg := DefaultGridConfig()
	cfg.Location = loc

	// 09:00-10:00 IST == 03:30-04:30 UTC
	existing := []*domain.Booking{
		booking("b1", "F1", time.Date(2025, 1, 15, 3, 30, 0, 0, time.UTC), time.Date(2025, 1, 15, 4, 30, 0, 0, time.UTC), domain.StatusConfirmed),
	}

	slots := BuildAvailability(existing, "F1", testDay, cfg)

	require.Len(t, slots, 15)
	assert.Equal(t, time.Date(2025, 1, 15, 8, 0, 0, 0, loc), slots[0].Start)
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestGridConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultGridConfig().Validate())
	assert.ErrorIs(t, GridConfig{OpenHour: 10, CloseHour: 10, SlotMinutes: 60}.Validate(), ErrInvalidGridConfig)
	assert.ErrorIs(t, GridConfig{OpenHour: 8, CloseHour: 25, SlotMinutes: 60}.Validate(), ErrInvalidGridConfig)
	assert.ErrorIs(t, GridConfig{OpenHour: 8, CloseHour: 9, SlotMinutes: 0}.Validate(), ErrInvalidGridConfig)
	assert.ErrorIs(t, GridConfig{OpenHour: 8, CloseHour: 9, SlotMinutes: 45}.Validate(), ErrInvalidGridConfig)
}
