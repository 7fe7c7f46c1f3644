package position

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/ptr"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return db, mock, func() { db.Close() }
}

func positionRows(positions ...*domain.Position) *sqlmock.Rows {
	rows := sqlmock.NewRows(positionColumns)
	for _, p := range positions {
		rows.AddRow(p.ID, p.Name, p.Description, p.IsActive, p.CreatedAt, p.UpdatedAt)
	}
	return rows
}

func samplePosition() *domain.Position {
	return &domain.Position{
		ID:          "EDDM_TWR",
		Name:        "Munich Tower",
		Description: "Tower position at Munich",
		IsActive:    true,
		CreatedAt:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	now := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO positions \(id,name,description,is_active\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING created_at, updated_at`).
		WithArgs("EDDM_TWR", "Munich Tower", "Tower position at Munich", true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	p := samplePosition()
	created, err := repo.Create(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKey(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO positions`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), samplePosition())
	assert.ErrorIs(t, err, ErrPositionExists)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM positions WHERE id = \$1`).
		WithArgs("ZZZZ_TWR").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ZZZZ_TWR")
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestList_ActiveOnly(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM positions WHERE is_active = \$1 ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(positionRows(samplePosition()))

	positions, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, positions, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_All(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	inactive := samplePosition()
	inactive.ID = "EDDF_GND"
	inactive.IsActive = false

	mock.ExpectQuery(`SELECT .* FROM positions ORDER BY name ASC`).
		WillReturnRows(positionRows(samplePosition(), inactive))

	positions, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, positions, 2)
}

func TestUpdate_Partial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	updated := samplePosition()
	updated.IsActive = false

	mock.ExpectQuery(`UPDATE positions SET updated_at = NOW\(\), is_active = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(false, "EDDM_TWR").
		WillReturnRows(positionRows(updated))

	p, err := repo.Update(context.Background(), "EDDM_TWR", domain.PositionUpdate{
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.False(t, p.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM positions WHERE id = \$1`).
		WithArgs("ZZZZ_TWR").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ZZZZ_TWR")
	assert.ErrorIs(t, err, ErrPositionNotFound)
}
