package eventsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/pkg/retry"
)

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client client for the events booking API.
// Unlike the parking availability check, event booking initiation is
// retried automatically: up to 3 attempts with exponential backoff
// (1s, 2s, 4s) on 5xx, network and timeout errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	policy     retry.Policy
	log        Logger
}

// NewClient creates an events API client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		policy: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   time.Second,
			IsRetryable: IsRetryable,
		},
		log: log,
	}
}

// InitiateBooking starts a phone-confirmed booking for an event,
// retrying transient upstream failures per the client's policy.
func (c *Client) InitiateBooking(ctx context.Context, eventID, mobileNumber string) (*BookingConfirmation, error) {
	var confirmation *BookingConfirmation

	attempt := 0
	err := c.policy.Do(ctx, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			c.log.Warn("InitiateBooking: retrying event_id=%s (attempt %d)", eventID, attempt)
		}

		result, err := c.initiateBooking(ctx, eventID, mobileNumber)
		if err != nil {
			return err
		}
		confirmation = result
		return nil
	})

	if err != nil {
		return nil, err
	}

	return confirmation, nil
}

func (c *Client) initiateBooking(ctx context.Context, eventID, mobileNumber string) (*BookingConfirmation, error) {
	url := fmt.Sprintf("%s/v1/events/%s/bookings", c.baseURL, eventID)

	body, err := json.Marshal(InitiateBookingRequest{
		EventID:      eventID,
		MobileNumber: mobileNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Continue processing
	case http.StatusNotFound:
		return nil, ErrEventNotFound
	case http.StatusConflict:
		return nil, ErrEventSoldOut
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var confirmation BookingConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &confirmation, nil
}
