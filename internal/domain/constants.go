package domain

// Business validation constants
const (
	MinBookingDurationMinutes = 60
	MinutesPerDay             = 24 * 60

	MaxPositionIDLength   = 16
	MaxPositionNameLength = 100
	MaxDescriptionLength  = 500
)

// Cleanup defaults
const (
	// DefaultRetentionDays is how long completed bookings are kept before the
	// sweeper purges them.
	DefaultRetentionDays = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
