package get_user_stats

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/stats/models"
)

type StatsService interface {
	GetUserStats(ctx context.Context, userID string) (*models.UserStatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
