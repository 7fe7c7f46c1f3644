package update_booking

import (
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// Request carries a partial booking edit. Nil fields are left untouched.
type Request struct {
	BookingID int64
	ActorID   string // acting member VID, taken from the auth context
	IsStaff   bool

	Position  *string
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
	Type      *domain.BookingType
	Status    *domain.BookingStatus
}

// toDomainUpdate converts the request into the repository update.
func (r *Request) toDomainUpdate() domain.BookingUpdate {
	return domain.BookingUpdate{
		Position:  r.Position,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Type:      r.Type,
		Status:    r.Status,
	}
}

// Response is the updated booking in wire form.
type Response struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Position  string    `json:"position"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
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
