package domain

import "time"

// UserStats is the per-member usage aggregate. ControllingPerMonth is always
// recomputed from completed bookings at read time; the lifetime counters are
// supplied externally via stat-sync calls.
type UserStats struct {
	UserID              string
	ControllingHours    float64
	BookingHours        float64
	ControllingPerMonth float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
