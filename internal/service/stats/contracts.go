package stats

import (
	"context"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// StatsRepository is the storage surface for user aggregates.
type StatsRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.UserStats, error)
	SetMonthly(ctx context.Context, userID string, hours float64) error
	UpsertLifetime(ctx context.Context, userID string, controllingHours, bookingHours *float64) (*domain.UserStats, error)
}

// BookingRepository supplies the completed bookings the monthly rollup is
// derived from.
type BookingRepository interface {
	FindCompletedForUser(ctx context.Context, userID string, from, to time.Time) ([]*domain.Booking, error)
}

// TimeProvider abstracts the clock for testing.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
