package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/PhotoMarket-BookingService/internal/usecase/check_availability"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error

	gotReq *checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/providers/{providerId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_AvailableSlot(t *testing.T) {
	startAt := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		ProviderID:    1,
		StartAt:       startAt,
		DurationHours: 2,
		Available:     true,
	}}

	rec := doRequest(uc, "/api/v1/providers/1/availability?date=2026-09-15&startTime=10:00&durationHours=2")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, "2026-09-15", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, 2, body.DurationHours)

	// Дата и время склеиваются в момент начала слота
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, startAt, uc.gotReq.StartAt)
	assert.Equal(t, int64(1), uc.gotReq.ProviderID)
	assert.Nil(t, uc.gotReq.ListingID)
}

func TestHandle_BusySlotWithAlternatives(t *testing.T) {
	day := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		ProviderID:    1,
		StartAt:       day.Add(10 * time.Hour),
		DurationHours: 2,
		Available:     false,
		Alternatives: []checkAvailability.Alternative{
			{Date: day, StartHour: 14},
			{Date: day.AddDate(0, 0, 1), StartHour: 8},
		},
	}}

	rec := doRequest(uc, "/api/v1/providers/1/availability?date=2026-09-15&startTime=10:00&durationHours=2")

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Available)
	require.Len(t, body.Alternatives, 2)
	assert.Equal(t, "2026-09-15", body.Alternatives[0].Date)
	assert.Equal(t, 14, body.Alternatives[0].StartHour)
	assert.Equal(t, "2026-09-16", body.Alternatives[1].Date)
}

func TestHandle_ListingIDForwarded(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{Available: true}}

	rec := doRequest(uc, "/api/v1/providers/1/availability?date=2026-09-15&startTime=10:00&listingId=42")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq.ListingID)
	assert.Equal(t, int64(42), *uc.gotReq.ListingID)
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"malformed provider id", "/api/v1/providers/abc/availability?date=2026-09-15&startTime=10:00"},
		{"malformed date", "/api/v1/providers/1/availability?date=15.09.2026&startTime=10:00"},
		{"missing date", "/api/v1/providers/1/availability?startTime=10:00"},
		{"malformed start time", "/api/v1/providers/1/availability?date=2026-09-15&startTime=25:99"},
		{"malformed duration", "/api/v1/providers/1/availability?date=2026-09-15&startTime=10:00&durationHours=abc"},
		{"malformed listing id", "/api/v1/providers/1/availability?date=2026-09-15&startTime=10:00&listingId=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{resp: &checkAvailability.Response{Available: true}}

			rec := doRequest(uc, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.gotReq, "use case must not be called on bad input")
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"provider not found", checkAvailability.ErrProviderNotFound, http.StatusNotFound},
		{"listing not found", checkAvailability.ErrListingNotFound, http.StatusNotFound},
		{"invalid duration", checkAvailability.ErrInvalidDuration, http.StatusBadRequest},
		{"invalid input", checkAvailability.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", checkAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err}

			rec := doRequest(uc, "/api/v1/providers/1/availability?date=2026-09-15&startTime=10:00&durationHours=1")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
