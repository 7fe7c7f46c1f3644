package update_booking

import (
	"context"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// BookingRepository is the booking storage surface the use case needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindForSchedule(ctx context.Context, position string, date time.Time) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, update domain.BookingUpdate) (*domain.Booking, error)
}

// PositionRepository resolves the target position of a move.
type PositionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Position, error)
}

// AuditRepository records the edit in the trail.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditLogEntry) error
}

// TransactionManager groups the update with its audit entry. Serializable
// isolation is used when the edit moves the booked interval.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
