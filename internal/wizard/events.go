package wizard

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

// Event a wizard state transition input. Events come from user actions
// and from completed network calls; the reducer is the only code that
// turns them into state.
type Event interface {
	isEvent()
}

// RatesLoaded the rate card arrived
type RatesLoaded struct {
	Rates *domain.RateCard
}

// StartChanged the user picked a new start time
type StartChanged struct {
	At time.Time
}

// EndChanged the user picked a new end time
type EndChanged struct {
	At time.Time
}

// CustomerEdited the user edited the contact details
type CustomerEdited struct {
	Customer domain.Customer
}

// VehicleEdited the user edited the vehicle details
type VehicleEdited struct {
	Vehicle domain.Vehicle
}

// NotesEdited the user edited the free-text notes
type NotesEdited struct {
	Notes string
}

// AvailabilityRequested a check started for the given window
type AvailabilityRequested struct {
	Start time.Time
	End   time.Time
}

// AvailabilityResolved a check finished. The window it was issued for
// rides along so responses for a superseded window can be dropped.
type AvailabilityResolved struct {
	Start  time.Time
	End    time.Time
	Slices []domain.AvailabilitySlice
}

// AvailabilityCheckFailed a check failed outright
type AvailabilityCheckFailed struct {
	Start   time.Time
	End     time.Time
	Message string
}

// Advanced the user pressed next
type Advanced struct{}

// SteppedBack the user pressed back
type SteppedBack struct{}

// SubmissionStarted the booking submission went out
type SubmissionStarted struct{}

// SubmissionCompleted the booking was created
type SubmissionCompleted struct {
	Reference   string
	ApprovalURL *string
}

// SubmissionErrored the booking submission failed
type SubmissionErrored struct {
	Message string
}

func (RatesLoaded) isEvent()             {}
func (StartChanged) isEvent()            {}
func (EndChanged) isEvent()              {}
func (CustomerEdited) isEvent()          {}
func (VehicleEdited) isEvent()           {}
func (NotesEdited) isEvent()             {}
func (AvailabilityRequested) isEvent()   {}
func (AvailabilityResolved) isEvent()    {}
func (AvailabilityCheckFailed) isEvent() {}
func (Advanced) isEvent()                {}
func (SteppedBack) isEvent()             {}
func (SubmissionStarted) isEvent()       {}
func (SubmissionCompleted) isEvent()     {}
func (SubmissionErrored) isEvent()       {}
