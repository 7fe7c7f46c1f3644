package userstats

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/dbmetrics"
	"github.com/xm-division/ATC-BookingService/pkg/psqlbuilder"
)

var statsColumns = []string{
	"user_id",
	"controlling_hours",
	"booking_hours",
	"controlling_per_month",
	"created_at",
	"updated_at",
}

// Repository persists per-user usage aggregates.
type Repository struct {
	db DBExecutor
}

// NewRepository builds a user stats repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the stats row for the user, inserting a zeroed row on
// first touch. The ON CONFLICT clause keeps concurrent first touches safe.
func (r *Repository) GetOrCreate(ctx context.Context, userID string) (*domain.UserStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert, insertArgs, err := psqlbuilder.Insert("user_stats").
		Columns("user_id", "controlling_hours", "booking_hours", "controlling_per_month").
		Values(userID, 0, 0, 0).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insert, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	return r.Get(ctx, userID)
}

// Get returns the stats row for the user.
func (r *Repository) Get(ctx context.Context, userID string) (*domain.UserStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(statsColumns...).
		From("user_stats").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.UserStats
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.UserID,
		&s.ControllingHours,
		&s.BookingHours,
		&s.ControllingPerMonth,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan stats: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// SetMonthly stores the freshly recomputed current-month figure.
func (r *Repository) SetMonthly(ctx context.Context, userID string, hours float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("user_stats").
		Set("controlling_per_month", hours).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetMonthly - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetMonthly - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetMonthly - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatsNotFound
	}

	return nil
}

// UpsertLifetime writes the externally supplied lifetime counters. Nil fields
// keep their stored value; controlling_per_month is never touched here.
func (r *Repository) UpsertLifetime(ctx context.Context, userID string, controllingHours, bookingHours *float64) (*domain.UserStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query := `
		INSERT INTO user_stats (user_id, controlling_hours, booking_hours, controlling_per_month)
		VALUES ($1, COALESCE($2, 0), COALESCE($3, 0), 0)
		ON CONFLICT (user_id) DO UPDATE SET
			controlling_hours = COALESCE($2, user_stats.controlling_hours),
			booking_hours     = COALESCE($3, user_stats.booking_hours),
			updated_at        = NOW()
		RETURNING user_id, controlling_hours, booking_hours, controlling_per_month, created_at, updated_at`

	var s domain.UserStats
	var createdAt, updatedAt sql.NullTime

	err := executor.QueryRowContext(ctx, query, userID, controllingHours, bookingHours).Scan(
		&s.UserID,
		&s.ControllingHours,
		&s.BookingHours,
		&s.ControllingPerMonth,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertLifetime - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
