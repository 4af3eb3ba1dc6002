package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/infra/storage/schema"
	"github.com/m04kA/campus-facility-booking/pkg/dbmetrics"
	"github.com/m04kA/campus-facility-booking/pkg/psqlbuilder"
	"github.com/m04kA/campus-facility-booking/pkg/ptr"
	"github.com/m04kA/campus-facility-booking/pkg/txmanager"
)

type store interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, at time.Time) error
}

var day = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func newSQLiteDB(t *testing.T) *dbmetrics.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file::memory:?_time_format=sqlite")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil, "test")
	ctx := context.Background()
	require.NoError(t, schema.Apply(ctx, db, psqlbuilder.SQLite))
	require.NoError(t, facility.NewRepository(db, psqlbuilder.SQLite).EnsureSeeded(ctx, facility.SampleCatalog()))

	return db
}

func stores(t *testing.T) map[string]store {
	return map[string]store{
		"sqlite": NewRepository(newSQLiteDB(t), psqlbuilder.SQLite),
		"memory": NewMemoryRepository(),
	}
}

func newBooking(id, facilityID, requesterID string, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:                 id,
		FacilityID:         facilityID,
		FacilityName:       "Main Seminar Hall",
		Requester:          domain.Requester{ID: requesterID, Name: "Test User", Department: "CS"},
		Purpose:            "Lecture",
		EventTitle:         "Algorithms",
		StartTime:          start,
		EndTime:            end,
		Status:             domain.StatusConfirmed,
		Attendees:          10,
		EquipmentRequested: []string{"Projector"},
		Cost:               1000,
		CreatedAt:          at(7, 0),
		UpdatedAt:          at(7, 0),
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	for name, repo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := newBooking("b1", "1", "u1", at(10, 0), at(12, 0))
			b.SpecialRequirements = ptr.Ptr("Extra chairs")

			_, err := repo.Create(ctx, b)
			require.NoError(t, err)

			got, err := repo.GetByID(ctx, "b1")
			require.NoError(t, err)
			assert.Equal(t, "1", got.FacilityID)
			assert.Equal(t, "u1", got.Requester.ID)
			assert.True(t, got.StartTime.Equal(at(10, 0)))
			assert.True(t, got.EndTime.Equal(at(12, 0)))
			assert.Equal(t, domain.StatusConfirmed, got.Status)
			assert.Equal(t, []string{"Projector"}, got.EquipmentRequested)
			require.NotNil(t, got.SpecialRequirements)
			assert.Equal(t, "Extra chairs", *got.SpecialRequirements)
			assert.Nil(t, got.CancelledAt)
			assert.InDelta(t, 1000.0, got.Cost, 0.001)
		})
	}
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	for name, repo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.GetByID(context.Background(), "missing")
			assert.ErrorIs(t, err, ErrBookingNotFound)
		})
	}
}

func TestRepository_ListFilters(t *testing.T) {
	for name, repo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, b := range []*domain.Booking{
				newBooking("b3", "1", "u1", at(14, 0), at(15, 0)),
				newBooking("b1", "1", "u1", at(9, 0), at(10, 0)),
				newBooking("b2", "1", "u2", at(10, 0), at(11, 0)),
				newBooking("b4", "2", "u1", at(10, 0), at(11, 0)),
			} {
				_, err := repo.Create(ctx, b)
				require.NoError(t, err)
			}
			require.NoError(t, repo.UpdateStatus(ctx, "b2", domain.StatusCancelled, at(8, 0)))

			all, err := repo.List(ctx, domain.BookingsFilter{FacilityID: ptr.Ptr("1")})
			require.NoError(t, err)
			assert.Equal(t, []string{"b1", "b2", "b3"}, ids(all))

			active, err := repo.List(ctx, domain.BookingsFilter{FacilityID: ptr.Ptr("1"), ActiveOnly: true})
			require.NoError(t, err)
			assert.Equal(t, []string{"b1", "b3"}, ids(active))

			// [10:00, 14:00) касается b1 и b3 только границами
			window := domain.Interval{Start: at(10, 0), End: at(14, 0)}
			overlapping, err := repo.List(ctx, domain.BookingsFilter{FacilityID: ptr.Ptr("1"), Window: &window})
			require.NoError(t, err)
			assert.Equal(t, []string{"b2"}, ids(overlapping))

			byRequester, err := repo.List(ctx, domain.BookingsFilter{RequesterID: ptr.Ptr("u1")})
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"b1", "b3", "b4"}, ids(byRequester))

			confirmed := domain.StatusConfirmed
			ended, err := repo.List(ctx, domain.BookingsFilter{Status: &confirmed, EndedBy: ptr.Ptr(at(11, 0))})
			require.NoError(t, err)
			assert.ElementsMatch(t, []string{"b1", "b4"}, ids(ended))
		})
	}
}

func TestRepository_Update(t *testing.T) {
	for name, repo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := repo.Create(ctx, newBooking("b1", "1", "u1", at(10, 0), at(12, 0)))
			require.NoError(t, err)

			changed := newBooking("b1", "1", "u1", at(13, 0), at(14, 0))
			changed.Purpose = "Workshop"
			changed.Cost = 500
			changed.EquipmentRequested = nil
			changed.UpdatedAt = at(9, 0)
			require.NoError(t, repo.Update(ctx, changed))

			got, err := repo.GetByID(ctx, "b1")
			require.NoError(t, err)
			assert.Equal(t, "Workshop", got.Purpose)
			assert.True(t, got.StartTime.Equal(at(13, 0)))
			assert.True(t, got.UpdatedAt.Equal(at(9, 0)))
			assert.True(t, got.CreatedAt.Equal(at(7, 0)))
			assert.Empty(t, got.EquipmentRequested)
			assert.InDelta(t, 500.0, got.Cost, 0.001)

			err = repo.Update(ctx, newBooking("missing", "1", "u1", at(10, 0), at(11, 0)))
			assert.ErrorIs(t, err, ErrBookingNotFound)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	for name, repo := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := repo.Create(ctx, newBooking("b1", "1", "u1", at(10, 0), at(12, 0)))
			require.NoError(t, err)

			require.NoError(t, repo.UpdateStatus(ctx, "b1", domain.StatusCancelled, at(9, 30)))

			got, err := repo.GetByID(ctx, "b1")
			require.NoError(t, err)
			assert.Equal(t, domain.StatusCancelled, got.Status)
			require.NotNil(t, got.CancelledAt)
			assert.True(t, got.CancelledAt.Equal(at(9, 30)))
			assert.True(t, got.UpdatedAt.Equal(at(9, 30)))

			err = repo.UpdateStatus(ctx, "missing", domain.StatusCompleted, at(9, 30))
			assert.ErrorIs(t, err, ErrBookingNotFound)
		})
	}
}

func TestMemoryRepository_DuplicateID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "1", "u1", at(10, 0), at(11, 0)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking("b1", "1", "u1", at(12, 0), at(13, 0)))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, newBooking("b1", "1", "u1", at(10, 0), at(11, 0)))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	got.Status = domain.StatusCancelled
	got.EquipmentRequested[0] = "changed"

	again, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, again.Status)
	assert.Equal(t, "Projector", again.EquipmentRequested[0])
}

func TestRepository_RollbackLeavesStoreUnchanged(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewRepository(db, psqlbuilder.SQLite)
	tm := txmanager.NewTransactionManager(db, txmanager.WithSerializableLevel(sql.LevelDefault))
	ctx := context.Background()

	err := tm.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, newBooking("b1", "1", "u1", at(10, 0), at(11, 0))); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = repo.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func ids(bookings []*domain.Booking) []string {
	result := make([]string, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, b.ID)
	}
	return result
}
