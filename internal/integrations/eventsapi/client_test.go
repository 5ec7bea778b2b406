package eventsapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Info(format string, v ...interface{})  {}
func (quietLogger) Warn(format string, v ...interface{})  {}
func (quietLogger) Error(format string, v ...interface{}) {}

func newTestClient(baseURL string) *Client {
	c := NewClient(baseURL, 5*time.Second, quietLogger{})
	c.policy.BaseDelay = time.Millisecond
	return c
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&StatusError{StatusCode: 500}))
	assert.True(t, IsRetryable(&StatusError{StatusCode: 503}))
	assert.True(t, IsRetryable(fmt.Errorf("%w: connection refused", ErrInternal)))

	assert.False(t, IsRetryable(&StatusError{StatusCode: 400}))
	assert.False(t, IsRetryable(ErrEventNotFound))
	assert.False(t, IsRetryable(ErrEventSoldOut))
	assert.False(t, IsRetryable(errors.New("something else")))
}

func TestInitiateBooking_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/events/evt-123/bookings", r.URL.Path)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"reference":"EVT-REF-1","event_id":"evt-123","sms_sent":true}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	confirmation, err := c.InitiateBooking(context.Background(), "evt-123", "+447700900123")

	require.NoError(t, err)
	assert.Equal(t, "EVT-REF-1", confirmation.Reference)
	assert.True(t, confirmation.SMSSent)
}

func TestInitiateBooking_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"reference":"EVT-REF-2","event_id":"evt-123","sms_sent":true}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	confirmation, err := c.InitiateBooking(context.Background(), "evt-123", "+447700900123")

	require.NoError(t, err)
	assert.Equal(t, "EVT-REF-2", confirmation.Reference)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestInitiateBooking_GivesUpAfterThreeAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.InitiateBooking(context.Background(), "evt-123", "+447700900123")

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestInitiateBooking_TerminalFailuresNotRetried(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrEventNotFound},
		{"sold out", http.StatusConflict, ErrEventSoldOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := newTestClient(srv.URL)

			_, err := c.InitiateBooking(context.Background(), "evt-404", "+447700900123")

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}
