package booking

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// MemoryRepository in-memory хранилище бронирований
// Хранит и отдает копии, поэтому вызывающий код не может изменить состояние в обход репозитория
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[string]*domain.Booking)}
}

func (r *MemoryRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return nil, ErrAlreadyExists
	}

	r.bookings[booking.ID] = booking.Clone()
	return booking.Clone(), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking.Clone(), nil
}

// List возвращает бронирования по фильтру в том же порядке, что и SQL-репозиторий
func (r *MemoryRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, booking := range r.bookings {
		if filter.Matches(booking) {
			result = append(result, booking.Clone())
		}
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return result, nil
}

func (r *MemoryRepository) Update(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.bookings[booking.ID]
	if !ok {
		return ErrBookingNotFound
	}

	updated := booking.Clone()
	// Неизменяемые поля остаются как при создании
	updated.FacilityID = existing.FacilityID
	updated.FacilityName = existing.FacilityName
	updated.Requester = existing.Requester
	updated.CreatedAt = existing.CreatedAt

	r.bookings[booking.ID] = updated
	return nil
}

func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	booking.Status = status
	booking.UpdatedAt = at
	if status == domain.StatusCancelled {
		cancelledAt := at
		booking.CancelledAt = &cancelledAt
	}
	return nil
}
