package positions

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// PositionRepository is the storage surface the service needs.
type PositionRepository interface {
	Create(ctx context.Context, p *domain.Position) (*domain.Position, error)
	GetByID(ctx context.Context, id string) (*domain.Position, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Position, error)
	Update(ctx context.Context, id string, update domain.PositionUpdate) (*domain.Position, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository is consulted before a position may be deleted.
type BookingRepository interface {
	CountActiveByPosition(ctx context.Context, position string) (int64, error)
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
