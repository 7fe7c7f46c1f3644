package delete_booking

import (
	"context"

	"github.com/xm-division/ATC-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	Delete(ctx context.Context, id int64, req *models.DeleteBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
