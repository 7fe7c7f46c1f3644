package models

import (
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// Request models

// CreatePositionRequest is a staff request to register a new position.
type CreatePositionRequest struct {
	ActorID     string `json:"-"` // authenticated staff member, from context
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive,omitempty"` // default true
}

// UpdatePositionRequest is a partial position edit. Only non-nil fields are
// applied.
type UpdatePositionRequest struct {
	ActorID     string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ToDomainUpdate converts the request into the domain update set.
func (r *UpdatePositionRequest) ToDomainUpdate() domain.PositionUpdate {
	return domain.PositionUpdate{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// Response models

// PositionResponse is the wire form of a position.
type PositionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PositionListResponse is a list of positions.
type PositionListResponse struct {
	Positions []PositionResponse `json:"positions"`
}

// FromDomainPosition converts a domain position into its wire form.
func FromDomainPosition(p *domain.Position) *PositionResponse {
	if p == nil {
		return nil
	}
	return &PositionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// FromDomainPositionList converts a list of domain positions.
func FromDomainPositionList(positions []*domain.Position) *PositionListResponse {
	resp := &PositionListResponse{
		Positions: make([]PositionResponse, 0, len(positions)),
	}
	for _, p := range positions {
		if pr := FromDomainPosition(p); pr != nil {
			resp.Positions = append(resp.Positions, *pr)
		}
	}
	return resp
}
