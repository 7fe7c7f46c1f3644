package bookings

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// BookingRepository is the storage surface the service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// AuditRepository records the trail entry for every mutation.
type AuditRepository interface {
	Append(ctx context.Context, e *domain.AuditLogEntry) error
}

// TransactionManager makes a mutation and its audit entry commit together.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
