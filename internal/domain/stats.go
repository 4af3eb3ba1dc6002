package domain

// BookingStats aggregates bookings over a period
type BookingStats struct {
	Period              Interval
	TotalBookings       int
	PendingBookings     int
	ConfirmedBookings   int
	CancelledBookings   int
	CompletedBookings   int
	TotalRevenue        float64 // confirmed + completed
	FacilityUtilization []FacilityUtilization
}

// FacilityUtilization shows how much of a facility's operating time was booked
type FacilityUtilization struct {
	FacilityID   string
	FacilityName string
	Bookings     int
	BookedHours  float64
	Utilization  float64 // percent of operating hours in the period, 0-100
}
