package get_requester_bookings

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

func (m *mockService) ListByRequester(ctx context.Context, requesterID string, status *string) (*models.BookingListResponse, error) {
	args := m.Called(ctx, requesterID, status)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.BookingListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc *mockService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/requesters/{requesterId}/bookings", NewHandler(svc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_WithStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByRequester", mock.Anything, "u-1", mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == "cancelled"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b-1"}}}, nil)

	rec := serve(svc, "/api/v1/requesters/u-1/bookings?status=cancelled")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"b-1"`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("ListByRequester", mock.Anything, "u-1", mock.Anything).Return(nil, bookings.ErrInvalidInput)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/requesters/u-1/bookings?status=archived").Code)
}
