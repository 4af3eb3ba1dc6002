package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/campus-facility-booking/internal/api/middleware"
	"github.com/m04kA/campus-facility-booking/pkg/metrics"
)

// Handler HTTP обработчик одного маршрута
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers обработчики всех маршрутов API
type Handlers struct {
	ListFacilities       Handler
	GetFacility          Handler
	GetAvailability      Handler
	CheckConflicts       Handler
	CreateBooking        Handler
	ListBookings         Handler
	GetBookingStats      Handler
	GetBooking           Handler
	UpdateBooking        Handler
	CancelBooking        Handler
	UpdateBookingStatus  Handler
	GetRequesterBookings Handler
}

// MetricsOptions экспорт prometheus-метрик (nil Metrics - метрики выключены)
type MetricsOptions struct {
	Metrics *metrics.Metrics
	Path    string
}

// NewRouter регистрирует маршруты /api/v1
func NewRouter(h Handlers, m MetricsOptions) *mux.Router {
	r := mux.NewRouter()

	if m.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(m.Metrics))
		r.Handle(m.Path, m.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог помещений ---
	api.HandleFunc("/facilities", h.ListFacilities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}", h.GetFacility.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/availability", h.GetAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/facilities/{facilityId}/conflicts", h.CheckConflicts.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", h.ListBookings.Handle).Methods(http.MethodGet)
	// /bookings/stats регистрируется раньше /bookings/{bookingId}
	api.HandleFunc("/bookings/stats", h.GetBookingStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", h.UpdateBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", h.CancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/status", h.UpdateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- История заявителя ---
	api.HandleFunc("/requesters/{requesterId}/bookings", h.GetRequesterBookings.Handle).Methods(http.MethodGet)

	return r
}
