package create_position

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/positions/models"
)

type PositionsService interface {
	Create(ctx context.Context, req *models.CreatePositionRequest) (*models.PositionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
