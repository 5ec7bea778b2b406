package anchorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client client for the parking API consumed by the booking wizard
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a parking API client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRates fetches the current rate card
func (c *Client) GetRates(ctx context.Context) (*domain.RateCard, error) {
	var resp ratesResponse
	if err := c.get(ctx, c.baseURL+"/api/parking/rates", &resp); err != nil {
		return nil, err
	}

	return &domain.RateCard{
		HourlyRate:  resp.HourlyRate,
		DailyRate:   resp.DailyRate,
		WeeklyRate:  resp.WeeklyRate,
		MonthlyRate: resp.MonthlyRate,
	}, nil
}

// CheckAvailability fetches remaining capacity slices for a window
func (c *Client) CheckAvailability(ctx context.Context, start, end time.Time) ([]domain.AvailabilitySlice, error) {
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339))
	query.Set("end", end.Format(time.RFC3339))
	query.Set("granularity", "hour")

	var resp []sliceResponse
	if err := c.get(ctx, c.baseURL+"/api/parking/availability?"+query.Encode(), &resp); err != nil {
		return nil, err
	}

	slices := make([]domain.AvailabilitySlice, 0, len(resp))
	for _, s := range resp {
		slices = append(slices, domain.AvailabilitySlice{
			StartAt:   s.StartAt,
			EndAt:     s.EndAt,
			Remaining: s.Remaining,
			Capacity:  s.Capacity,
		})
	}
	return slices, nil
}

// CreateBooking submits the collected booking details
func (c *Client) CreateBooking(ctx context.Context, sub BookingSubmission) (*BookingResult, error) {
	body, err := json.Marshal(toBookingRequest(sub))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/parking/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result BookingResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	return c.do(req, out)
}

// do executes the request and unwraps the response envelope
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}

	if !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Code: "INTERNAL_ERROR", Message: "unknown error"}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		c.log.Warn("anchorapi: %s %s failed: %v", req.Method, req.URL.Path, apiErr)
		return apiErr
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}
	return nil
}
