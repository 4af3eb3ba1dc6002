package models

import "github.com/m04kA/campus-facility-booking/internal/domain"

// FacilityResponse ответ с данными помещения
type FacilityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Building    string   `json:"building"`
	Floor       string   `json:"floor"`
	Capacity    int      `json:"capacity"`
	Equipment   []string `json:"equipment"`
	Amenities   []string `json:"amenities"`
	HourlyRate  *float64 `json:"hourlyRate,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// FacilityListResponse ответ со списком помещений
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	return &FacilityResponse{
		ID:          f.ID,
		Name:        f.Name,
		Type:        string(f.Type),
		Building:    f.Building,
		Floor:       f.Floor,
		Capacity:    f.Capacity,
		Equipment:   nonNil(f.Equipment),
		Amenities:   nonNil(f.Amenities),
		HourlyRate:  f.HourlyRate,
		Description: f.Description,
		IsActive:    f.IsActive,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, 0, len(facilities)),
	}

	for _, f := range facilities {
		if item := FromDomainFacility(f); item != nil {
			resp.Facilities = append(resp.Facilities, *item)
		}
	}

	return resp
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
