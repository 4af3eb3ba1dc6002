package domain

// Default availability grid: hourly buckets from 08:00 to 23:00
const (
	DefaultOpenHour    = 8
	DefaultCloseHour   = 23
	DefaultSlotMinutes = 60
	DefaultTimezone    = "UTC"
)

// Business validation constants
const (
	MaxPurposeLength             = 200
	MaxEventTitleLength          = 200
	MaxSpecialRequirementsLength = 500
	MaxEquipmentItems            = 20
	DefaultMaxSuggestions        = 3
	DefaultStatsPeriodDays       = 30
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses lists every booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}
