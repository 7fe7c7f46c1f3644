package update_booking

import (
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	updateBooking "github.com/xm-division/ATC-BookingService/internal/usecase/update_booking"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model. Omitted fields are left untouched.
type UpdateBookingRequest struct {
	Position  *string `json:"position,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Type      *string `json:"type,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// ToUseCaseRequest parses the wire fields into the use case request.
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64, actorID string, isStaff bool) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		IsStaff:   isStaff,
		Position:  r.Position,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	if r.Type != nil {
		bookingType := domain.BookingType(*r.Type)
		req.Type = &bookingType
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}
