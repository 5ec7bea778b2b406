package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/integrations/anchorapi"
)

const (
	defaultRedirectDelay = time.Second

	msgSubmissionError = "We could not complete your booking. Please try again or call 01753 682707."
)

// Controller owns the wizard state. All mutations go through dispatch
// behind one mutex; network calls run in goroutines and feed their
// results back as events, so readers always see a consistent snapshot.
type Controller struct {
	mu     sync.Mutex
	state  State
	closed bool

	api      ParkingAPI
	navigate Navigator
	logger   Logger

	// Pause between announcing the redirect and navigating, so the
	// customer sees the confirmation before leaving the page
	redirectDelay time.Duration
}

// NewController creates a wizard controller in its initial state
func NewController(api ParkingAPI, navigate Navigator, timeProvider TimeProvider, logger Logger) *Controller {
	return &Controller{
		state:         NewState(timeProvider.Now()),
		api:           api,
		navigate:      navigate,
		logger:        logger,
		redirectDelay: defaultRedirectDelay,
	}
}

// Start loads the rate card in the background. A failed load is logged
// and the wizard carries on without an estimate.
func (c *Controller) Start(ctx context.Context) {
	go func() {
		rates, err := c.api.GetRates(ctx)
		if err != nil {
			c.logger.Warn("wizard: rate card load failed, continuing without estimate: %v", err)
			return
		}
		c.dispatch(RatesLoaded{Rates: rates})
	}()
}

// State returns a snapshot of the current wizard state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops the controller. Responses and timers that land after
// Close are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// SetStart moves the start of the stay
func (c *Controller) SetStart(at time.Time) {
	c.dispatch(StartChanged{At: at})
}

// SetEnd moves the end of the stay
func (c *Controller) SetEnd(at time.Time) {
	c.dispatch(EndChanged{At: at})
}

// SetCustomer replaces the contact details
func (c *Controller) SetCustomer(customer CustomerInput) {
	c.dispatch(CustomerEdited{Customer: customer.toDomain()})
}

// SetVehicle replaces the vehicle details
func (c *Controller) SetVehicle(vehicle VehicleInput) {
	c.dispatch(VehicleEdited{Vehicle: vehicle.toDomain()})
}

// SetNotes replaces the free-text notes
func (c *Controller) SetNotes(notes string) {
	c.dispatch(NotesEdited{Notes: notes})
}

// Next advances to the following step if the current gate passes
func (c *Controller) Next() {
	c.dispatch(Advanced{})
}

// Back returns to the previous step
func (c *Controller) Back() {
	c.dispatch(SteppedBack{})
}

// CheckAvailability checks the currently selected window. The result
// is applied asynchronously; a result for a window the user has since
// edited is dropped by the reducer.
func (c *Controller) CheckAvailability(ctx context.Context) {
	c.mu.Lock()
	start, end := c.state.StartAt, c.state.EndAt
	c.state = Apply(c.state, AvailabilityRequested{Start: start, End: end})
	c.mu.Unlock()

	go func() {
		slices, err := c.api.CheckAvailability(ctx, start, end)
		if err != nil {
			c.logger.Warn("wizard: availability check failed for %s..%s: %v",
				start.Format(time.RFC3339), end.Format(time.RFC3339), err)
			c.dispatch(AvailabilityCheckFailed{Start: start, End: end, Message: serverMessage(err, msgAvailabilityError)})
			return
		}
		c.dispatch(AvailabilityResolved{Start: start, End: end, Slices: slices})
	}()
}

// Submit sends the booking. On success with an approval URL the
// customer is navigated to PayPal after a short pause; without one the
// reference is presented and payment happens over the phone.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Step != StepReview {
		c.mu.Unlock()
		return ErrNotReady
	}
	if c.state.Submission.Status == SubmissionInFlight {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	submission := anchorapi.BookingSubmission{
		StartAt:  c.state.StartAt,
		EndAt:    c.state.EndAt,
		Customer: c.state.Customer,
		Vehicle:  c.state.Vehicle,
	}
	if c.state.Notes != "" {
		notes := c.state.Notes
		submission.Notes = &notes
	}

	c.state = Apply(c.state, SubmissionStarted{})
	c.mu.Unlock()

	go func() {
		result, err := c.api.CreateBooking(ctx, submission)
		if err != nil {
			c.logger.Error("wizard: booking submission failed: %v", err)
			c.dispatch(SubmissionErrored{Message: serverMessage(err, msgSubmissionError)})
			return
		}

		c.logger.Info("wizard: booking created reference=%s", result.Reference)
		c.dispatch(SubmissionCompleted{Reference: result.Reference, ApprovalURL: result.PayPalApprovalURL})

		if result.PayPalApprovalURL != nil {
			c.scheduleRedirect(*result.PayPalApprovalURL)
		}
	}()

	return nil
}

// scheduleRedirect navigates after the redirect delay unless the
// controller was closed in the meantime
func (c *Controller) scheduleRedirect(url string) {
	time.AfterFunc(c.redirectDelay, func() {
		c.mu.Lock()
		closed := c.closed
		c.mu.Unlock()
		if closed {
			return
		}
		c.navigate(url)
	})
}

func (c *Controller) dispatch(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.state = Apply(c.state, e)
}

// serverMessage prefers the server's own wording when the failure
// carries one
func serverMessage(err error, fallback string) string {
	var apiErr *anchorapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
