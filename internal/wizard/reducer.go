package wizard

import (
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

const (
	msgWindowFull        = "The car park is full for part of your stay. Please pick different times."
	msgAvailabilityError = "We could not check availability. Please try again."
)

// Apply computes the next state from the current one and an event.
// It is pure: no I/O, no clocks, no mutation of the input.
func Apply(s State, e Event) State {
	switch event := e.(type) {
	case RatesLoaded:
		s.Rates = event.Rates
		s.Estimate = domain.EstimateCost(s.Rates, s.StartAt, s.EndAt)

	case StartChanged:
		s.StartAt = event.At
		if !s.EndAt.After(s.StartAt) {
			s.EndAt = s.StartAt.Add(domain.DefaultStayHours * time.Hour)
		}
		// Any previous availability answer refers to the old window
		s.Availability = Availability{Status: AvailabilityIdle}
		s.Estimate = domain.EstimateCost(s.Rates, s.StartAt, s.EndAt)

	case EndChanged:
		s.EndAt = event.At
		s.Availability = Availability{Status: AvailabilityIdle}
		s.Estimate = domain.EstimateCost(s.Rates, s.StartAt, s.EndAt)

	case CustomerEdited:
		s.Customer = event.Customer

	case VehicleEdited:
		s.Vehicle = event.Vehicle

	case NotesEdited:
		s.Notes = event.Notes

	case AvailabilityRequested:
		s.Availability = Availability{
			Status: AvailabilityChecking,
			Start:  event.Start,
			End:    event.End,
		}

	case AvailabilityResolved:
		if stale(s, event.Start, event.End) {
			return s
		}
		s.Availability = evaluateSlices(event)

	case AvailabilityCheckFailed:
		if stale(s, event.Start, event.End) {
			return s
		}
		message := event.Message
		if message == "" {
			message = msgAvailabilityError
		}
		s.Availability = Availability{
			Status:  AvailabilityFailed,
			Start:   event.Start,
			End:     event.End,
			Message: message,
		}

	case Advanced:
		if s.Step < StepReview && s.CanAdvance() {
			s.Step++
		}

	case SteppedBack:
		if s.Step > StepTimes {
			s.Step--
			// A failed submission is abandoned when the user steps back
			if s.Submission.Status == SubmissionFailed {
				s.Submission = Submission{Status: SubmissionIdle}
			}
		}

	case SubmissionStarted:
		s.Submission = Submission{Status: SubmissionInFlight}

	case SubmissionCompleted:
		s.Submission = Submission{
			Status:      SubmissionSucceeded,
			Reference:   event.Reference,
			ApprovalURL: event.ApprovalURL,
		}

	case SubmissionErrored:
		s.Submission = Submission{
			Status:  SubmissionFailed,
			Message: event.Message,
		}
	}

	return s
}

// stale reports whether a network result refers to a window the user
// has since moved away from
func stale(s State, start, end time.Time) bool {
	return !start.Equal(s.StartAt) || !end.Equal(s.EndAt)
}

// evaluateSlices turns raw availability slices into a verdict: the
// window is available only when every slice has a space left, and the
// quoted count is the scarcest slice. No slices means nothing is booked
// and the window is free.
func evaluateSlices(event AvailabilityResolved) Availability {
	availability := Availability{
		Status: AvailabilityAvailable,
		Start:  event.Start,
		End:    event.End,
	}

	if len(event.Slices) == 0 {
		return availability
	}

	minRemaining := event.Slices[0].Remaining
	for _, slice := range event.Slices {
		if slice.IsFull() {
			availability.Status = AvailabilityUnavailable
			availability.Message = msgWindowFull
			return availability
		}
		if slice.Remaining < minRemaining {
			minRemaining = slice.Remaining
		}
	}

	availability.Remaining = &minRemaining
	return availability
}
