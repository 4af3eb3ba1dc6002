package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/campus-facility-booking/internal/service/bookings"
	"github.com/m04kA/campus-facility-booking/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		resp   *models.BookingResponse
		err    error
		status int
	}{
		{name: "cancelled", resp: &models.BookingResponse{ID: "b-1", Status: "cancelled"}, status: http.StatusOK},
		{name: "not found", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "completed", err: bookings.ErrInvalidTransition, status: http.StatusConflict},
		{name: "internal", err: bookings.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, "b-1").Return(tt.resp, tt.err)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, nopLogger{}).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/b-1/cancel", nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.resp != nil {
				assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
			}
			svc.AssertExpectations(t)
		})
	}
}
