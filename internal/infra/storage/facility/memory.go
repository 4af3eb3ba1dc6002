package facility

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

// MemoryRepository in-memory каталог помещений
type MemoryRepository struct {
	mu         sync.RWMutex
	facilities map[string]*domain.Facility
}

// NewMemoryRepository создает каталог из переданного списка помещений
func NewMemoryRepository(facilities []*domain.Facility) *MemoryRepository {
	r := &MemoryRepository{facilities: make(map[string]*domain.Facility, len(facilities))}
	for _, f := range facilities {
		r.facilities[f.ID] = cloneFacility(f)
	}
	return r
}

func (r *MemoryRepository) List(_ context.Context, activeOnly bool) ([]*domain.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Facility, 0, len(r.facilities))
	for _, f := range r.facilities {
		if activeOnly && !f.IsActive {
			continue
		}
		result = append(result, cloneFacility(f))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.facilities[id]
	if !ok {
		return nil, ErrFacilityNotFound
	}
	return cloneFacility(f), nil
}

func cloneFacility(f *domain.Facility) *domain.Facility {
	c := *f
	if f.Equipment != nil {
		c.Equipment = append([]string(nil), f.Equipment...)
	}
	if f.Amenities != nil {
		c.Amenities = append([]string(nil), f.Amenities...)
	}
	if f.HourlyRate != nil {
		v := *f.HourlyRate
		c.HourlyRate = &v
	}
	if f.Description != nil {
		v := *f.Description
		c.Description = &v
	}
	return &c
}
