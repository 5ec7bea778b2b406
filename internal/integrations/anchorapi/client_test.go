package anchorapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

type quietLogger struct{}

func (quietLogger) Info(format string, v ...interface{})  {}
func (quietLogger) Warn(format string, v ...interface{})  {}
func (quietLogger) Error(format string, v ...interface{}) {}

func TestGetRates_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/parking/rates", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"data":{"hourly_rate":5,"daily_rate":40,"weekly_rate":200,"monthly_rate":600}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	rates, err := c.GetRates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5.0, rates.HourlyRate)
	assert.Equal(t, 600.0, rates.MonthlyRate)
}

func TestCheckAvailability_SendsWindow(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, start.Format(time.RFC3339), r.URL.Query().Get("start"))
		assert.Equal(t, end.Format(time.RFC3339), r.URL.Query().Get("end"))
		assert.Equal(t, "hour", r.URL.Query().Get("granularity"))
		fmt.Fprint(w, `{"success":true,"data":[
			{"start_at":"2025-06-02T10:00:00Z","end_at":"2025-06-02T11:00:00Z","remaining":12,"capacity":30},
			{"start_at":"2025-06-02T11:00:00Z","end_at":"2025-06-02T12:00:00Z","remaining":9,"capacity":30}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	slices, err := c.CheckAvailability(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, slices, 2)
	assert.Equal(t, 12, slices[0].Remaining)
	assert.Equal(t, 9, slices[1].Remaining)
}

func TestCreateBooking_SurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"success":false,"error":{"code":"CAPACITY_UNAVAILABLE","message":"The car park is full."}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	_, err := c.CreateBooking(context.Background(), BookingSubmission{
		StartAt:  time.Now(),
		EndAt:    time.Now().Add(time.Hour),
		Customer: domain.Customer{FirstName: "Sam", LastName: "Hill", MobileNumber: "+447700900123"},
		Vehicle:  domain.Vehicle{Registration: "AB12CDE"},
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "CAPACITY_UNAVAILABLE", apiErr.Code)
	assert.Equal(t, "The car park is full.", apiErr.Message)
}

func TestCreateBooking_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/parking/bookings", r.URL.Path)
		fmt.Fprint(w, `{"success":true,"data":{"reference":"ANC-AB12CD34","status":"pending_payment",
			"start_at":"2025-06-02T10:00:00Z","end_at":"2025-06-02T14:00:00Z","estimated_amount":20,
			"paypal_approval_url":"https://paypal.example/approve/1"}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	result, err := c.CreateBooking(context.Background(), BookingSubmission{
		StartAt:  time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		Customer: domain.Customer{FirstName: "Sam", LastName: "Hill", MobileNumber: "+447700900123"},
		Vehicle:  domain.Vehicle{Registration: "AB12CDE"},
	})

	require.NoError(t, err)
	assert.Equal(t, "ANC-AB12CD34", result.Reference)
	require.NotNil(t, result.PayPalApprovalURL)
}
