package wizard

import (
	"strings"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// Step one of the four wizard screens
type Step int

const (
	StepTimes Step = iota + 1
	StepCustomer
	StepVehicle
	StepReview
)

// AvailabilityStatus outcome of the availability check for the
// currently selected window
type AvailabilityStatus string

const (
	// AvailabilityIdle no check has run for the current window
	AvailabilityIdle AvailabilityStatus = "idle"
	// AvailabilityChecking a check is in flight
	AvailabilityChecking AvailabilityStatus = "checking"
	// AvailabilityAvailable every slice of the window has a space left
	AvailabilityAvailable AvailabilityStatus = "available"
	// AvailabilityUnavailable at least one slice of the window is full
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	// AvailabilityFailed the check itself failed; the user may retry
	AvailabilityFailed AvailabilityStatus = "failed"
)

// Availability availability state for the window it was checked against
type Availability struct {
	Status AvailabilityStatus

	// Window the check was issued for; results for any other window
	// are stale and dropped.
	Start time.Time
	End   time.Time

	// Fewest remaining spaces across the checked slices. Nil when no
	// check has completed or the check returned no slices.
	Remaining *int

	// User-facing message for unavailable and failed states
	Message string
}

// SubmissionStatus outcome of the booking submission
type SubmissionStatus string

const (
	SubmissionIdle      SubmissionStatus = "idle"
	SubmissionInFlight  SubmissionStatus = "in_flight"
	SubmissionSucceeded SubmissionStatus = "succeeded"
	SubmissionFailed    SubmissionStatus = "failed"
)

// Submission result of submitting the booking
type Submission struct {
	Status    SubmissionStatus
	Reference string

	// Set when the customer should be redirected to PayPal; absent
	// when payment is completed over the phone.
	ApprovalURL *string

	// User-facing message for the failed state
	Message string
}

// State the whole wizard state. Values are copied on every transition,
// so a State handed out to a reader never changes under it.
type State struct {
	Step Step

	StartAt time.Time
	EndAt   time.Time

	// Nil until the rate card loads; the estimate is simply absent and
	// the wizard still works.
	Rates    *domain.RateCard
	Estimate *domain.Estimate

	Availability Availability

	Customer domain.Customer
	Vehicle  domain.Vehicle
	Notes    string

	Submission Submission
}

// NewState creates the initial wizard state: a stay starting in an
// hour and lasting three.
func NewState(now time.Time) State {
	return State{
		Step:         StepTimes,
		StartAt:      now.Add(time.Hour),
		EndAt:        now.Add(4 * time.Hour),
		Availability: Availability{Status: AvailabilityIdle},
		Submission:   Submission{Status: SubmissionIdle},
	}
}

// CanAdvance reports whether the current step's gate is satisfied
func (s State) CanAdvance() bool {
	switch s.Step {
	case StepTimes:
		return s.Availability.Status == AvailabilityAvailable
	case StepCustomer:
		return s.Customer.FirstName != "" &&
			s.Customer.LastName != "" &&
			s.Customer.MobileNumber != ""
	case StepVehicle:
		registration := strings.ReplaceAll(s.Vehicle.Registration, " ", "")
		return len(registration) >= domain.MinRegistrationLength
	default:
		return false
	}
}
