package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/dbmetrics"
	"github.com/xm-division/ATC-BookingService/pkg/psqlbuilder"
)

var auditColumns = []string{
	"id",
	"action",
	"user_id",
	"booking_id",
	"position_id",
	"details",
	"changes",
	"created_at",
}

// Repository persists the append-only audit trail. There are deliberately no
// update or delete methods.
type Repository struct {
	db DBExecutor
}

// NewRepository builds an audit repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append inserts one audit entry. Honors a transaction carried in ctx so a
// mutation and its trail entry commit together.
func (r *Repository) Append(ctx context.Context, e *domain.AuditLogEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var changes interface{}
	if e.Changes != nil {
		raw, err := json.Marshal(e.Changes)
		if err != nil {
			return fmt.Errorf("%w: Append - marshal changes: %v", ErrBuildQuery, err)
		}
		changes = raw
	}

	query, args, err := psqlbuilder.Insert("audit_log").
		Columns("action", "user_id", "booking_id", "position_id", "details", "changes").
		Values(e.Action, e.UserID, e.BookingID, e.PositionID, e.Details, changes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &createdAt); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	e.Timestamp = createdAt.Time

	return nil
}

// List returns audit entries newest first.
func (r *Repository) List(ctx context.Context) ([]*domain.AuditLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(auditColumns...).
		From("audit_log").
		OrderBy("created_at DESC, id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditLogEntry, 0)
	for rows.Next() {
		var e domain.AuditLogEntry
		var createdAt sql.NullTime
		var changes []byte

		err := rows.Scan(
			&e.ID,
			&e.Action,
			&e.UserID,
			&e.BookingID,
			&e.PositionID,
			&e.Details,
			&changes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		if len(changes) > 0 {
			if err := json.Unmarshal(changes, &e.Changes); err != nil {
				return nil, fmt.Errorf("%w: List - unmarshal changes: %v", ErrScanRow, err)
			}
		}

		e.Timestamp = createdAt.Time
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
