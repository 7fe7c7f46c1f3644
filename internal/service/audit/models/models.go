package models

import (
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// AuditEntryResponse is the wire form of one trail entry.
type AuditEntryResponse struct {
	ID         int64                          `json:"id"`
	Action     string                         `json:"action"`
	UserID     string                         `json:"userId"`
	BookingID  *int64                         `json:"bookingId,omitempty"`
	PositionID *string                        `json:"positionId,omitempty"`
	Details    string                         `json:"details"`
	Changes    map[string]domain.FieldChange  `json:"changes,omitempty"`
	Timestamp  time.Time                      `json:"timestamp"`
}

// AuditListResponse is the trail, newest first.
type AuditListResponse struct {
	Logs []AuditEntryResponse `json:"logs"`
}

// FromDomainEntry converts a domain entry into its wire form.
func FromDomainEntry(e *domain.AuditLogEntry) *AuditEntryResponse {
	if e == nil {
		return nil
	}
	return &AuditEntryResponse{
		ID:         e.ID,
		Action:     string(e.Action),
		UserID:     e.UserID,
		BookingID:  e.BookingID,
		PositionID: e.PositionID,
		Details:    e.Details,
		Changes:    e.Changes,
		Timestamp:  e.Timestamp,
	}
}

// FromDomainEntryList converts a list of domain entries.
func FromDomainEntryList(entries []*domain.AuditLogEntry) *AuditListResponse {
	resp := &AuditListResponse{
		Logs: make([]AuditEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		if er := FromDomainEntry(e); er != nil {
			resp.Logs = append(resp.Logs, *er)
		}
	}
	return resp
}
