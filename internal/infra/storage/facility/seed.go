package facility

import (
	"github.com/m04kA/campus-facility-booking/internal/domain"
	"github.com/m04kA/campus-facility-booking/pkg/ptr"
)

// SampleCatalog возвращает демонстрационный каталог кампуса
// Используется для in-memory хранилища и начального наполнения БД
func SampleCatalog() []*domain.Facility {
	return []*domain.Facility{
		{
			ID:          "1",
			Name:        "Main Seminar Hall",
			Type:        domain.FacilityTypeSeminarHall,
			Building:    "Academic Block A",
			Floor:       "Ground Floor",
			Capacity:    200,
			Equipment:   []string{"Projector", "Sound System", "Microphones", "Air Conditioning", "Stage"},
			Amenities:   []string{"Parking", "Wheelchair Access", "Restrooms", "Refreshment Area"},
			HourlyRate:  ptr.Ptr(500.0),
			Description: ptr.Ptr("Large seminar hall suitable for conferences, workshops, and large gatherings"),
			IsActive:    true,
		},
		{
			ID:          "2",
			Name:        "Computer Lab 1",
			Type:        domain.FacilityTypeLaboratory,
			Building:    "IT Block",
			Floor:       "First Floor",
			Capacity:    50,
			Equipment:   []string{"50 Computers", "Projector", "Whiteboard", "Air Conditioning", "High-Speed Internet"},
			Amenities:   []string{"Wheelchair Access", "Restrooms"},
			HourlyRate:  ptr.Ptr(300.0),
			Description: ptr.Ptr("Modern computer lab with latest hardware and software"),
			IsActive:    true,
		},
		{
			ID:          "3",
			Name:        "Conference Room Alpha",
			Type:        domain.FacilityTypeConferenceRoom,
			Building:    "Administrative Block",
			Floor:       "Second Floor",
			Capacity:    25,
			Equipment:   []string{"Smart TV", "Video Conferencing", "Whiteboard", "Air Conditioning"},
			Amenities:   []string{"Coffee Machine", "Restrooms", "WiFi"},
			HourlyRate:  ptr.Ptr(400.0),
			Description: ptr.Ptr("Executive conference room with modern amenities"),
			IsActive:    true,
		},
		{
			ID:          "4",
			Name:        "Chemistry Laboratory",
			Type:        domain.FacilityTypeLaboratory,
			Building:    "Science Block",
			Floor:       "Ground Floor",
			Capacity:    30,
			Equipment:   []string{"Fume Hoods", "Lab Benches", "Safety Equipment", "Chemical Storage"},
			Amenities:   []string{"Emergency Shower", "Eye Wash Station", "First Aid Kit"},
			HourlyRate:  ptr.Ptr(350.0),
			Description: ptr.Ptr("Fully equipped chemistry lab for experiments and research"),
			IsActive:    true,
		},
		{
			ID:          "5",
			Name:        "Main Auditorium",
			Type:        domain.FacilityTypeAuditorium,
			Building:    "Cultural Center",
			Floor:       "Ground Floor",
			Capacity:    500,
			Equipment:   []string{"Professional Sound System", "Stage Lighting", "Projector", "Microphones", "Air Conditioning"},
			Amenities:   []string{"Parking", "Wheelchair Access", "Green Room", "Restrooms", "Refreshment Area"},
			HourlyRate:  ptr.Ptr(1000.0),
			Description: ptr.Ptr("Large auditorium for cultural events, convocations, and major gatherings"),
			IsActive:    true,
		},
	}
}
