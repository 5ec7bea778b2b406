package check_availability

import (
	"fmt"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

func validateRequest(req *Request) error {
	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}
	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return ErrInvalidRange
	}

	switch req.Granularity {
	case domain.GranularityHour, domain.GranularityDay:
		return nil
	case "":
		req.Granularity = domain.GranularityHour
		return nil
	default:
		return fmt.Errorf("%w: unknown granularity %q", ErrInvalidInput, req.Granularity)
	}
}
