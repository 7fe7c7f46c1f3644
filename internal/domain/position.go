package domain

import "time"

// Position is a bookable ATC position, identified by its station code
// (e.g. "XMMM_APP"). The code is assigned by staff and unique across all
// positions regardless of the active flag.
type Position struct {
	ID          string // station code, primary key
	Name        string
	Description string
	IsActive    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PositionUpdate carries the fields of a partial position edit.
// Nil fields are left untouched.
type PositionUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// IsEmpty reports whether the update changes nothing.
func (u *PositionUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.IsActive == nil
}
