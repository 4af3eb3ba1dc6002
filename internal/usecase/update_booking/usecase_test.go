package update_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/booking"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/scheduling"
	"github.com/m04kA/campus-facility-booking/pkg/keylock"
	"github.com/m04kA/campus-facility-booking/pkg/metrics"
	"github.com/m04kA/campus-facility-booking/pkg/ptr"
	"github.com/m04kA/campus-facility-booking/pkg/txmanager"
)

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existing(id string, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		FacilityID:   "1",
		FacilityName: "Main Seminar Hall",
		Requester:    domain.Requester{ID: "u1", Name: "Test User"},
		Purpose:      "Lecture",
		EventTitle:   "Algorithms",
		StartTime:    start,
		EndTime:      end,
		Status:       status,
		Attendees:    10,
		Cost:         500 * end.Sub(start).Hours(),
		CreatedAt:    at(6, 0),
		UpdatedAt:    at(6, 0),
	}
}

func setup(t *testing.T, bookings ...*domain.Booking) (*UseCase, *booking.MemoryRepository) {
	t.Helper()

	repo := booking.NewMemoryRepository()
	for _, b := range bookings {
		_, err := repo.Create(context.Background(), b)
		require.NoError(t, err)
	}

	uc := NewUseCase(
		repo,
		facility.NewMemoryRepository(facility.SampleCatalog()),
		txmanager.Noop{},
		keylock.New(),
		metrics.NewBookingRecorder(nil),
		Settings{Grid: scheduling.DefaultGridConfig(), MaxSuggestions: domain.DefaultMaxSuggestions},
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: at(8, 0)}

	return uc, repo
}

func TestExecute_MoveWithinOwnInterval(t *testing.T) {
	uc, repo := setup(t, existing("b1", at(10, 0), at(12, 0), domain.StatusConfirmed))

	// Новый интервал пересекается только со старым интервалом этого же бронирования
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		StartTime: ptr.Ptr(at(11, 0)),
		EndTime:   ptr.Ptr(at(14, 0)),
	})
	require.NoError(t, err)
	assert.True(t, resp.StartTime.Equal(at(11, 0)))
	assert.InDelta(t, 1500.0, resp.Cost, 0.001)
	assert.True(t, resp.UpdatedAt.Equal(at(8, 0)))
	assert.True(t, resp.CreatedAt.Equal(at(6, 0)))

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, stored.EndTime.Equal(at(14, 0)))
	assert.InDelta(t, 1500.0, stored.Cost, 0.001)
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	uc, repo := setup(t,
		existing("b1", at(10, 0), at(11, 0), domain.StatusConfirmed),
		existing("b2", at(12, 0), at(13, 0), domain.StatusConfirmed),
	)

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "b1",
		EndTime:   ptr.Ptr(at(12, 30)),
	})
	require.ErrorIs(t, err, ErrSchedulingConflict)

	var conflictErr *domain.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "b2", conflictErr.Conflicts[0].Booking.ID)
	assert.Equal(t, domain.NewInterval(at(12, 0), at(12, 30)), conflictErr.Conflicts[0].Overlap)

	stored, err := repo.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.True(t, stored.EndTime.Equal(at(11, 0)))
	assert.True(t, stored.UpdatedAt.Equal(at(6, 0)))
}

func TestExecute_DetailsOnlyKeepsCost(t *testing.T) {
	uc, _ := setup(t, existing("b1", at(10, 0), at(11, 0), domain.StatusPending))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:           "b1",
		Purpose:             ptr.Ptr("Workshop"),
		SpecialRequirements: ptr.Ptr("Extra chairs"),
		EquipmentRequested:  ptr.Ptr([]string{"Microphones"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Workshop", resp.Purpose)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.SpecialRequirements)
	assert.Equal(t, []string{"Microphones"}, resp.EquipmentRequested)
	assert.InDelta(t, 500.0, resp.Cost, 0.001)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		req     *Request
		wantErr error
	}{
		{
			name:    "cancelled booking",
			status:  domain.StatusCancelled,
			req:     &Request{BookingID: "b1", Purpose: ptr.Ptr("x")},
			wantErr: ErrNotModifiable,
		},
		{
			name:    "completed booking",
			status:  domain.StatusCompleted,
			req:     &Request{BookingID: "b1", Purpose: ptr.Ptr("x")},
			wantErr: ErrNotModifiable,
		},
		{
			name:    "end before start",
			status:  domain.StatusConfirmed,
			req:     &Request{BookingID: "b1", EndTime: ptr.Ptr(at(9, 0))},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "too many attendees",
			status:  domain.StatusConfirmed,
			req:     &Request{BookingID: "b1", Attendees: ptr.Ptr(201)},
			wantErr: ErrCapacityExceeded,
		},
		{
			name:    "unknown booking",
			status:  domain.StatusConfirmed,
			req:     &Request{BookingID: "missing", Purpose: ptr.Ptr("x")},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "no changes",
			status:  domain.StatusConfirmed,
			req:     &Request{BookingID: "b1"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty purpose",
			status:  domain.StatusConfirmed,
			req:     &Request{BookingID: "b1", Purpose: ptr.Ptr(" ")},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := setup(t, existing("b1", at(10, 0), at(11, 0), tt.status))

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)

			stored, err := repo.GetByID(context.Background(), "b1")
			require.NoError(t, err)
			assert.Equal(t, "Lecture", stored.Purpose)
			assert.True(t, stored.UpdatedAt.Equal(at(6, 0)))
		})
	}
}

func TestExecute_CancelledNeighbourDoesNotBlock(t *testing.T) {
	uc, _ := setup(t,
		existing("b1", at(10, 0), at(11, 0), domain.StatusConfirmed),
		existing("b2", at(11, 0), at(12, 0), domain.StatusCancelled),
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: "b1", EndTime: ptr.Ptr(at(12, 0))})
	assert.NoError(t, err)
}
