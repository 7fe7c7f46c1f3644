package audit

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// AuditRepository is the read surface over the trail.
type AuditRepository interface {
	List(ctx context.Context) ([]*domain.AuditLogEntry, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
