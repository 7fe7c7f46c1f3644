package list_audit_logs

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/audit/models"
)

type AuditService interface {
	List(ctx context.Context) (*models.AuditListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
