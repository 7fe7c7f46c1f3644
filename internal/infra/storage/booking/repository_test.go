package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	"github.com/xm-division/ATC-BookingService/pkg/ptr"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return db, mock, func() { db.Close() }
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		rows.AddRow(b.ID, b.UserID, b.Position, b.Date, string(b.StartTime), string(b.EndTime),
			string(b.Type), string(b.Status), b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:        1,
		UserID:    "540147",
		Position:  "EDDM_TWR",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Type:      domain.TypeControlling,
		Status:    domain.StatusActive,
		CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO bookings .* RETURNING id, created_at, updated_at`).
		WithArgs("540147", "EDDM_TWR", sqlmock.AnyArg(), "10:00", "12:00", "controlling", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	b := sampleBooking()
	b.ID = 0
	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(bookingRows(sampleBooking()))

	b, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "EDDM_TWR", b.Position)
	assert.Equal(t, types.TimeString("10:00"), b.StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_WithFilter(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE position = \$1 AND date >= \$2 AND date <= \$3 ORDER BY created_at DESC`).
		WithArgs("EDDM_TWR", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(bookingRows(sampleBooking()))

	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		Position: ptr.Ptr("EDDM_TWR"),
		DateFrom: &from,
		DateTo:   &to,
	})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindForSchedule_OutsideTransactionSkipsRowLock(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE date = \$1 AND position = \$2 AND status = \$3 ORDER BY start_time ASC$`).
		WithArgs(sqlmock.AnyArg(), "EDDM_TWR", "active").
		WillReturnRows(bookingRows(sampleBooking()))

	bookings, err := repo.FindForSchedule(context.Background(), "EDDM_TWR", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Partial(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	updated := sampleBooking()
	updated.Status = domain.StatusCancelled

	mock.ExpectQuery(`UPDATE bookings SET updated_at = NOW\(\), status = \$1 WHERE id = \$2 RETURNING`).
		WithArgs("cancelled", int64(1)).
		WillReturnRows(bookingRows(updated))

	b, err := repo.Update(context.Background(), 1, domain.BookingUpdate{
		Status: ptr.Ptr(domain.StatusCancelled),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, b.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCountActiveByPosition(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE position = \$1 AND status = \$2`).
		WithArgs("EDDM_TWR", "active").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

	count, err := repo.CountActiveByPosition(context.Background(), "EDDM_TWR")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestMarkCompleted(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, updated_at = \$2 WHERE status = \$3 AND \(date < \$4 OR \(date = \$5 AND end_time <= \$6\)\)`).
		WithArgs("completed", sqlmock.AnyArg(), "active", sqlmock.AnyArg(), sqlmock.AnyArg(), "18:30").
		WillReturnResult(sqlmock.NewResult(0, 5))

	count, err := repo.MarkCompleted(context.Background(), time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompletedBefore(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM bookings WHERE status = \$1 AND updated_at < \$2`).
		WithArgs("completed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	count, err := repo.DeleteCompletedBefore(context.Background(), time.Date(2025, 10, 8, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestFindCompletedForUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewRepository(db)

	completed := sampleBooking()
	completed.Status = domain.StatusCompleted

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE status = \$1 AND user_id = \$2 AND updated_at >= \$3 AND updated_at <= \$4 ORDER BY date ASC, start_time ASC`).
		WithArgs("completed", "540147", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(bookingRows(completed))

	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 10, 31, 23, 59, 59, 0, time.UTC)
	bookings, err := repo.FindCompletedForUser(context.Background(), "540147", from, to)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
