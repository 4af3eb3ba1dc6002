package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

func (m *mockService) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle_PassesFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.MatchedBy(func(r *models.ListBookingsRequest) bool {
		return r.FacilityID != nil && *r.FacilityID == "1" && r.RequesterID == nil &&
			r.Status != nil && *r.Status == "confirmed"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?facilityId=1&status=confirmed", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything).Return(nil, bookings.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings?status=archived", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
