package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/campus-facility-booking/internal/api/handlers"
	"github.com/m04kA/campus-facility-booking/internal/domain"
	createBooking "github.com/m04kA/campus-facility-booking/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

const validBody = `{
	"facilityId": "1",
	"requester": {"id": "u-1", "name": "Dr. Smith", "department": "Physics"},
	"purpose": "Lecture",
	"eventTitle": "Quantum Mechanics",
	"startTime": "2024-01-15T10:00:00Z",
	"endTime": "2024-01-15T12:00:00Z",
	"attendees": 40
}`

func serve(uc *mockUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.FacilityID == "1" && r.RequesterID == "u-1" && r.RequesterDepartment == "Physics" &&
			r.StartTime.Equal(start) && r.Attendees == 40
	})).Return(&createBooking.Response{
		ID:         "b-1",
		FacilityID: "1",
		Requester:  domain.Requester{ID: "u-1", Name: "Dr. Smith"},
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Status:     "confirmed",
		Attendees:  40,
		Cost:       1000,
	}, nil)

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body["id"])
	assert.Equal(t, "confirmed", body["status"])
	assert.Equal(t, 1000.0, body["cost"])
	assert.Equal(t, "u-1", body["requester"].(map[string]interface{})["id"])
	uc.AssertExpectations(t)
}

func TestHandle_SchedulingConflict(t *testing.T) {
	existing := &domain.Booking{
		ID:        "b-0",
		StartTime: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC),
		Status:    domain.StatusConfirmed,
	}
	overlap := domain.NewInterval(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), existing.EndTime)
	suggestion := domain.NewInterval(existing.EndTime, existing.EndTime.Add(2*time.Hour))

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &domain.ConflictError{
		Err:         createBooking.ErrSchedulingConflict,
		Conflicts:   []domain.Conflict{{FacilityID: "1", Booking: existing, Overlap: overlap}},
		Suggestions: []domain.Interval{suggestion},
	})

	rec := serve(uc, validBody)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body handlers.ConflictErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, "b-0", body.Conflicts[0].Booking.ID)
	assert.True(t, body.Conflicts[0].Overlap.StartTime.Equal(overlap.Start))
	assert.True(t, body.Conflicts[0].Overlap.EndTime.Equal(overlap.End))
	require.Len(t, body.Suggestions, 1)
	assert.True(t, body.Suggestions[0].StartTime.Equal(suggestion.Start))
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "facility not found", err: createBooking.ErrFacilityNotFound, status: http.StatusNotFound},
		{name: "capacity", err: fmt.Errorf("%w: 600 > 500", createBooking.ErrCapacityExceeded), status: http.StatusUnprocessableEntity},
		{name: "interval", err: createBooking.ErrInvalidInterval, status: http.StatusBadRequest},
		{name: "input", err: fmt.Errorf("%w: purpose is required", createBooking.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", err: fmt.Errorf("%w: db down", createBooking.ErrInternal), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, validBody)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &mockUseCase{}

	for _, body := range []string{``, `{"facilityId":`, `{"startTime":"tomorrow"}`, `{"unknown":1}`} {
		rec := serve(uc, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
