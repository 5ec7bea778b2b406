package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client client for the payments service (PayPal proxy)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a payments client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder creates a payment order and returns the approval URL the
// customer is redirected to.
func (c *Client) CreateOrder(ctx context.Context, orderReq CreateOrderRequest) (*Order, error) {
	url := fmt.Sprintf("%s/v1/orders", c.baseURL)

	body, err := json.Marshal(orderReq)
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
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrOrderRejected, errResp.Message)
		}
		return nil, ErrOrderRejected
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if order.ApprovalURL == "" {
		return nil, fmt.Errorf("%w: order %s has no approval URL", ErrInvalidResponse, order.ID)
	}

	return &order, nil
}

// CreateOrderWithGracefulDegradation creates a payment order, degrading
// gracefully when the payments service is unavailable. A rejected order
// is a business error and is passed through; any other failure becomes
// ErrServiceDegraded so the booking is kept and returned reference-only.
func (c *Client) CreateOrderWithGracefulDegradation(ctx context.Context, orderReq CreateOrderRequest) (*Order, error) {
	c.log.Info("Creating payment order for booking reference=%s amount=%.2f", orderReq.Reference, orderReq.Amount)

	order, err := c.CreateOrder(ctx, orderReq)
	if err != nil {
		if errors.Is(err, ErrOrderRejected) {
			c.log.Warn("Payment order rejected for reference=%s: %v", orderReq.Reference, err)
			return nil, err
		}

		// Raised to ERROR so a payments outage is noticed quickly
		c.log.Error("Payments service unavailable, applying graceful degradation for reference=%s: %v", orderReq.Reference, err)
		return nil, fmt.Errorf("%w: reference=%s, error=%v", ErrServiceDegraded, orderReq.Reference, err)
	}

	c.log.Info("Payment order created for reference=%s, order_id=%s", orderReq.Reference, order.ID)
	return order, nil
}
