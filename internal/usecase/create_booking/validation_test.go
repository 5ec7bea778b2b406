package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterjohnpitcher/anchor-parking/internal/domain"
	"github.com/peterjohnpitcher/anchor-parking/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		StartAt: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
		Customer: domain.Customer{
			FirstName:    "Sam",
			LastName:     "Hill",
			MobileNumber: "07700 900123",
		},
		Vehicle: domain.Vehicle{
			Registration: "ab12 cde",
		},
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	req := validRequest()

	require.NoError(t, validateRequest(req))

	assert.Equal(t, "+447700900123", req.Customer.MobileNumber)
	assert.Equal(t, "AB12CDE", req.Vehicle.Registration)
	assert.NotEmpty(t, req.IdempotencyKey)
}

func TestValidateRequest_InvalidRange(t *testing.T) {
	req := validRequest()
	req.EndAt = req.StartAt

	assert.ErrorIs(t, validateRequest(req), ErrInvalidRange)
}

func TestValidateRequest_MissingNames(t *testing.T) {
	req := validRequest()
	req.Customer.FirstName = "   "
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Customer.LastName = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Customer.MobileNumber = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_ShortRegistration(t *testing.T) {
	req := validRequest()
	req.Vehicle.Registration = "AB 1"

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_NotesTooLong(t *testing.T) {
	req := validRequest()
	req.Notes = ptr.Ptr(strings.Repeat("x", domain.MaxNotesLength+1))

	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_ExplicitIdempotencyKeyKept(t *testing.T) {
	req := validRequest()
	req.IdempotencyKey = "client-supplied-key"

	require.NoError(t, validateRequest(req))

	assert.Equal(t, "client-supplied-key", req.IdempotencyKey)
}

func TestNormalizeUKPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local mobile", "07700900123", "+447700900123"},
		{"local with spaces", "07700 900 123", "+447700900123"},
		{"local with dashes", "07700-900-123", "+447700900123"},
		{"already international", "+447700900123", "+447700900123"},
		{"international with spaces", "+44 7700 900123", "+447700900123"},
		{"double zero prefix", "00447700900123", "+447700900123"},
		{"parentheses", "(07700) 900123", "+447700900123"},
		{"foreign passes through", "+33612345678", "+33612345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeUKPhone(tt.input))
		})
	}
}

func TestNormalizeRegistration(t *testing.T) {
	assert.Equal(t, "AB12CDE", normalizeRegistration("ab12 cde"))
	assert.Equal(t, "AB12CDE", normalizeRegistration("  AB12   CDE  "))
	assert.Equal(t, "X123YZ", normalizeRegistration("x123yz"))
}

func TestDeriveIdempotencyKey_Deterministic(t *testing.T) {
	first := validRequest()
	second := validRequest()

	require.NoError(t, validateRequest(first))
	require.NoError(t, validateRequest(second))

	assert.Equal(t, first.IdempotencyKey, second.IdempotencyKey,
		"identical submissions must map to the same key")
	assert.True(t, strings.HasPrefix(first.IdempotencyKey, "parking-"))

	// A different window produces a different key
	third := validRequest()
	third.EndAt = third.EndAt.Add(time.Hour)
	require.NoError(t, validateRequest(third))
	assert.NotEqual(t, first.IdempotencyKey, third.IdempotencyKey)
}
