package run_cleanup

import (
	"context"

	runCleanup "github.com/xm-division/ATC-BookingService/internal/usecase/run_cleanup"
)

type RunCleanupUseCase interface {
	Execute(ctx context.Context) (*runCleanup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
