package metrics

// BookingRecorder адаптер для use cases и сервисов
// nil-safe: при выключенных метриках методы ничего не делают
type BookingRecorder struct {
	m *Metrics
}

// NewBookingRecorder создает рекордер бизнес-метрик (m может быть nil)
func NewBookingRecorder(m *Metrics) *BookingRecorder {
	return &BookingRecorder{m: m}
}

func (r *BookingRecorder) BookingCreated(facilityID, status string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingsCreated.WithLabelValues(facilityID, status).Inc()
}

func (r *BookingRecorder) BookingRejected(operation, reason string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingsRejected.WithLabelValues(operation, reason).Inc()
}

func (r *BookingRecorder) BookingCancelled(facilityID string) {
	if r == nil || r.m == nil {
		return
	}
	r.m.BookingsCancelled.WithLabelValues(facilityID).Inc()
}

func (r *BookingRecorder) BookingsCompleted(count int) {
	if r == nil || r.m == nil || count <= 0 {
		return
	}
	r.m.BookingsCompleted.WithLabelValues().Add(float64(count))
}
