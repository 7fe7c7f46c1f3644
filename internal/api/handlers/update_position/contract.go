package update_position

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/positions/models"
)

type PositionsService interface {
	Update(ctx context.Context, id string, req *models.UpdatePositionRequest) (*models.PositionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
