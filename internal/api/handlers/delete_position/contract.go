package delete_position

import "context"

type PositionsService interface {
	Delete(ctx context.Context, id string, actorID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
