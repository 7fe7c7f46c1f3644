package create_booking

import (
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	createBooking "github.com/xm-division/ATC-BookingService/internal/usecase/create_booking"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Position  string `json:"position"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Type      string `json:"type"`
}

// ToUseCaseRequest parses the wire fields into the use case request.
func (r *CreateBookingRequest) ToUseCaseRequest(actorID string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    actorID,
		Position:  r.Position,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Type:      domain.BookingType(r.Type),
	}, nil
}
