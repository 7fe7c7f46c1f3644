package set_user_stats

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/stats/models"
)

type StatsService interface {
	SetUserStats(ctx context.Context, userID string, req *models.SetUserStatsRequest) (*models.UserStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
