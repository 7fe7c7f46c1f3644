package list_positions

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/positions/models"
)

type PositionsService interface {
	List(ctx context.Context, activeOnly bool) (*models.PositionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
