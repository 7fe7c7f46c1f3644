package models

import (
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// SetUserStatsRequest upserts the externally supplied lifetime counters.
// Nil fields keep their stored value.
type SetUserStatsRequest struct {
	ControllingHours *float64 `json:"controllingHours,omitempty"`
	BookingHours     *float64 `json:"bookingHours,omitempty"`
}

// UserStatsResponse is the wire form of a user's aggregates.
type UserStatsResponse struct {
	UserID              string    `json:"userId"`
	ControllingHours    float64   `json:"controllingHours"`
	BookingHours        float64   `json:"bookingHours"`
	ControllingPerMonth float64   `json:"controllingPerMonth"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FromDomainStats converts domain stats into the wire form.
func FromDomainStats(s *domain.UserStats) *UserStatsResponse {
	if s == nil {
		return nil
	}
	return &UserStatsResponse{
		UserID:              s.UserID,
		ControllingHours:    s.ControllingHours,
		BookingHours:        s.BookingHours,
		ControllingPerMonth: s.ControllingPerMonth,
		UpdatedAt:           s.UpdatedAt,
	}
}
