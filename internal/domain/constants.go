package domain

// Billing unit sizes in hours. A month is the flat 30-day commercial
// month used by the rate card, not a calendar month.
const (
	HoursInDay   = 24.0
	HoursInWeek  = 24.0 * 7
	HoursInMonth = 24.0 * 30
)

// Business validation constants
const (
	MinRegistrationLength = 5
	MaxNotesLength        = 500

	// Window applied when the start time is moved past the end time
	DefaultStayHours = 2
)

// InactiveStatuses bookings in these states do not occupy a space
// and are excluded from capacity counting.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}
