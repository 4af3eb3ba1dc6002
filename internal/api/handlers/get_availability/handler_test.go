package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/campus-facility-booking/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getAvailability.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(uc *mockUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/facilities/{facilityId}/availability", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	bookingID := "b-1"

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailability.Request{FacilityID: "1", Date: date}).
		Return(&getAvailability.Response{
			FacilityID:   "1",
			FacilityName: "Main Seminar Hall",
			Date:         date.Add(8 * time.Hour),
			Slots: []getAvailability.Slot{
				{StartTime: date.Add(8 * time.Hour), EndTime: date.Add(9 * time.Hour), Available: true},
				{StartTime: date.Add(9 * time.Hour), EndTime: date.Add(10 * time.Hour), BookingID: &bookingID},
			},
		}, nil)

	rec := serve(uc, "/api/v1/facilities/1/availability?date=2024-01-15")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-01-15", body.Date)
	require.Len(t, body.Slots, 2)
	assert.True(t, body.Slots[0].Available)
	assert.Nil(t, body.Slots[0].BookingID)
	require.NotNil(t, body.Slots[1].BookingID)
	assert.Equal(t, "b-1", *body.Slots[1].BookingID)
}

func TestHandle_BadRequests(t *testing.T) {
	uc := &mockUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/facilities/1/availability").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/facilities/1/availability?date=15.01.2024").Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_FacilityNotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, getAvailability.ErrFacilityNotFound)

	assert.Equal(t, http.StatusNotFound, serve(uc, "/api/v1/facilities/404/availability?date=2024-01-15").Code)
}
