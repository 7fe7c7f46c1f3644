package create_booking

import (
	"context"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// BookingRepository is the booking storage surface the use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindForSchedule(ctx context.Context, position string, date time.Time) ([]*domain.Booking, error)
}

// PositionRepository resolves the booked position.
type PositionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Position, error)
}

// AuditRepository records the creation in the trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditLogEntry) error
}

// Notifier announces the new booking. Delivery is best-effort.
type Notifier interface {
	Enabled() bool
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error
}

// TransactionManager runs the check-then-insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface the use case needs.
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
