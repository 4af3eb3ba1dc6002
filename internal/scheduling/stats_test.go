package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

func TestStatsPeriod(t *testing.T) {
	period := StatsPeriod(at(15, 30), time.Date(2025, 1, 16, 1, 0, 0, 0, time.UTC), DefaultGridConfig())

	assert.Equal(t, testDay, period.Start)
	assert.Equal(t, testDay.AddDate(0, 0, 2), period.End)
}

func TestComputeStats(t *testing.T) {
	facilities := []*domain.Facility{
		{ID: "1", Name: "Main Seminar Hall"},
		{ID: "2", Name: "Computer Lab 1"},
	}

	confirmed := booking("b1", "1", at(10, 0), at(13, 0), domain.StatusConfirmed)
	confirmed.Cost = 1500
	completed := booking("b2", "1", at(14, 0), at(15, 0), domain.StatusCompleted)
	completed.Cost = 500
	pending := booking("b3", "2", at(9, 0), at(10, 0), domain.StatusPending)
	pending.Cost = 300
	cancelled := booking("b4", "2", at(11, 0), at(12, 0), domain.StatusCancelled)
	cancelled.Cost = 300
	outside := booking("b5", "1", at(10, 0).AddDate(0, 0, 5), at(11, 0).AddDate(0, 0, 5), domain.StatusConfirmed)

	period := StatsPeriod(testDay, testDay, DefaultGridConfig())
	stats := ComputeStats(
		[]*domain.Booking{confirmed, completed, pending, cancelled, outside},
		facilities,
		period,
		DefaultGridConfig(),
	)

	assert.Equal(t, 4, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 1, stats.ConfirmedBookings)
	assert.Equal(t, 1, stats.CancelledBookings)
	assert.Equal(t, 1, stats.CompletedBookings)
	assert.InDelta(t, 2000.0, stats.TotalRevenue, 0.001)

	require.Len(t, stats.FacilityUtilization, 2)
	hall := stats.FacilityUtilization[0]
	assert.Equal(t, "1", hall.FacilityID)
	assert.Equal(t, 2, hall.Bookings)
	assert.InDelta(t, 4.0, hall.BookedHours, 0.001)
	// 4 из 15 рабочих часов
	assert.InDelta(t, 26.67, hall.Utilization, 0.001)

	lab := stats.FacilityUtilization[1]
	assert.Equal(t, 0, lab.Bookings)
	assert.Zero(t, lab.Utilization)
}

func TestComputeStats_ClipsToPeriod(t *testing.T) {
	overnight := booking("b1", "1", at(22, 0), at(22, 0).Add(4*time.Hour), domain.StatusConfirmed)

	stats := ComputeStats(
		[]*domain.Booking{overnight},
		[]*domain.Facility{{ID: "1"}},
		StatsPeriod(testDay, testDay, DefaultGridConfig()),
		DefaultGridConfig(),
	)

	assert.InDelta(t, 2.0, stats.FacilityUtilization[0].BookedHours, 0.001)
}
