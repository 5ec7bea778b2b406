package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietLogger struct{}

func (quietLogger) Info(format string, v ...interface{})  {}
func (quietLogger) Warn(format string, v ...interface{})  {}
func (quietLogger) Error(format string, v ...interface{}) {}

func orderRequest() CreateOrderRequest {
	return CreateOrderRequest{
		Reference: "ANC-AB12CD34",
		Amount:    45.0,
		Currency:  "GBP",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)

		var req CreateOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ANC-AB12CD34", req.Reference)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"ORD-1","reference":"ANC-AB12CD34","approval_url":"https://paypal.example/approve/ORD-1","status":"created"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	order, err := c.CreateOrder(context.Background(), orderRequest())

	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.ID)
	assert.Equal(t, "https://paypal.example/approve/ORD-1", order.ApprovalURL)
}

func TestCreateOrder_MissingApprovalURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"ORD-2","status":"created"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	_, err := c.CreateOrder(context.Background(), orderRequest())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateOrder_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"code":"INVALID_AMOUNT","message":"amount must be positive"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	_, err := c.CreateOrder(context.Background(), orderRequest())

	assert.ErrorIs(t, err, ErrOrderRejected)
	assert.Contains(t, err.Error(), "amount must be positive")
}

func TestCreateOrderWithGracefulDegradation_RejectionPassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	_, err := c.CreateOrderWithGracefulDegradation(context.Background(), orderRequest())

	assert.ErrorIs(t, err, ErrOrderRejected)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}

func TestCreateOrderWithGracefulDegradation_OutageDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, quietLogger{})

	_, err := c.CreateOrderWithGracefulDegradation(context.Background(), orderRequest())

	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestCreateOrderWithGracefulDegradation_NetworkFailureDegrades(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second, quietLogger{})

	_, err := c.CreateOrderWithGracefulDegradation(context.Background(), orderRequest())

	assert.ErrorIs(t, err, ErrServiceDegraded)
}
