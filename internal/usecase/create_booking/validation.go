package create_booking

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
)

var phoneCleanupPattern = regexp.MustCompile(`[\s\-()]`)

// validateRequest checks the submission and normalises phone and
// registration in place. Validation failures are wrapped in
// ErrInvalidInput with a field-level message.
func validateRequest(req *Request) error {
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: start_at and end_at are required", ErrInvalidInput)
	}
	if !req.EndAt.After(req.StartAt) {
		return ErrInvalidRange
	}

	if strings.TrimSpace(req.Customer.FirstName) == "" {
		return fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Customer.LastName) == "" {
		return fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Customer.MobileNumber) == "" {
		return fmt.Errorf("%w: mobile_number is required", ErrInvalidInput)
	}

	req.Customer.MobileNumber = normalizeUKPhone(req.Customer.MobileNumber)

	req.Vehicle.Registration = normalizeRegistration(req.Vehicle.Registration)
	if len(req.Vehicle.Registration) < domain.MinRegistrationLength {
		return fmt.Errorf("%w: registration must be at least %d characters", ErrInvalidInput, domain.MinRegistrationLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = deriveIdempotencyKey(req)
	}

	return nil
}

// normalizeUKPhone converts a UK mobile number to its +44 form.
// Numbers already in international form (or foreign) pass through.
func normalizeUKPhone(phone string) string {
	cleaned := phoneCleanupPattern.ReplaceAllString(phone, "")

	switch {
	case strings.HasPrefix(cleaned, "+44"):
		return cleaned
	case strings.HasPrefix(cleaned, "0044"):
		return "+44" + cleaned[4:]
	case strings.HasPrefix(cleaned, "07"):
		return "+44" + cleaned[1:]
	default:
		return cleaned
	}
}

// normalizeRegistration strips spaces and upper-cases a number plate
func normalizeRegistration(registration string) string {
	return strings.ToUpper(strings.Join(strings.Fields(registration), ""))
}

// deriveIdempotencyKey builds a deterministic key from the booking
// details, so an identical resubmission (double click, page reload)
// maps to the same booking even without an explicit header key.
func deriveIdempotencyKey(req *Request) string {
	safe := fmt.Sprintf("%s|%s|%s|%s",
		req.StartAt.UTC().Format(time.RFC3339),
		req.EndAt.UTC().Format(time.RFC3339),
		req.Customer.MobileNumber,
		req.Vehicle.Registration,
	)
	return "parking-" + base64.StdEncoding.EncodeToString([]byte(safe))
}
