package models

import (
	"fmt"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// Request models

// ListBookingsRequest narrows the booking list. Month and Year must be given
// together; they select a calendar month of booking dates.
type ListBookingsRequest struct {
	Position *string
	Month    *int // 1-12
	Year     *int
}

// ToDomainFilter converts the request into the repository filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Position: r.Position,
	}

	if (r.Month == nil) != (r.Year == nil) {
		return filter, fmt.Errorf("month and year must be provided together")
	}

	if r.Month != nil {
		if *r.Month < 1 || *r.Month > 12 {
			return filter, fmt.Errorf("month must be between 1 and 12")
		}
		first := time.Date(*r.Year, time.Month(*r.Month), 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		filter.DateFrom = &first
		filter.DateTo = &last
	}

	return filter, nil
}

// DeleteBookingRequest identifies the booking and the acting member.
type DeleteBookingRequest struct {
	ActorID string
	IsStaff bool
}

// Response models

// BookingResponse is the wire form of a booking.
type BookingResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Position  string    `json:"position"`
	Date      string    `json:"date"`      // "2024-01-15"
	StartTime string    `json:"startTime"` // "10:00"
	EndTime   string    `json:"endTime"`   // "12:00"
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a domain booking into its wire form.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Position:  b.Position,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Type:      string(b.Type),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}
	return resp
}
