package run_cleanup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	completed    int64
	completedErr error
	deleted      int64
	deletedErr   error

	markedAt time.Time
	cutoff   time.Time
}

func (f *fakeBookingRepo) MarkCompleted(_ context.Context, now time.Time) (int64, error) {
	f.markedAt = now
	return f.completed, f.completedErr
}

func (f *fakeBookingRepo) DeleteCompletedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.deleted, f.deletedErr
}

type fakeAuditRepo struct {
	entries []*domain.AuditLogEntry
	err     error
}

func (f *fakeAuditRepo) Append(_ context.Context, e *domain.AuditLogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

type fakeLogger struct{}

func (f *fakeLogger) Info(format string, v ...interface{})  {}
func (f *fakeLogger) Warn(format string, v ...interface{})  {}
func (f *fakeLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

var sweepTime = time.Date(2025, 10, 15, 18, 30, 0, 0, time.UTC)

func newTestUseCase(bookings *fakeBookingRepo, audit *fakeAuditRepo) *UseCase {
	uc := NewUseCase(bookings, audit, 7, &fakeLogger{})
	uc.timeProvider = &fixedTime{t: sweepTime}
	return uc
}

func TestExecute_ReportsBothCounts(t *testing.T) {
	bookings := &fakeBookingRepo{completed: 3, deleted: 2}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(bookings, audit)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Completed)
	assert.Equal(t, int64(2), resp.Deleted)
	assert.Equal(t, sweepTime, bookings.markedAt)
	assert.Equal(t, sweepTime.AddDate(0, 0, -7), bookings.cutoff)
}

func TestExecute_WritesOneSystemEntryWhenWorkDone(t *testing.T) {
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(&fakeBookingRepo{completed: 3, deleted: 2}, audit)

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, domain.AuditSystem, entry.Action)
	assert.Equal(t, domain.SystemActor, entry.UserID)
	assert.Equal(t, "Cleanup: completed 3 expired bookings, deleted 2 bookings older than 7 days", entry.Details)
}

func TestExecute_QuietCycleLeavesNoTrace(t *testing.T) {
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(&fakeBookingRepo{}, audit)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Completed)
	assert.Equal(t, int64(0), resp.Deleted)
	assert.Empty(t, audit.entries, "a sweep that touched nothing must not be audited")
}

func TestExecute_CompletionFailureReportsZeroWithoutRaising(t *testing.T) {
	bookings := &fakeBookingRepo{completedErr: errors.New("db down"), deleted: 4}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(bookings, audit)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.Completed)
	assert.Equal(t, int64(4), resp.Deleted)
	require.Len(t, audit.entries, 1)
}

func TestExecute_DeletionFailureReportsZeroWithoutRaising(t *testing.T) {
	bookings := &fakeBookingRepo{completed: 1, deletedErr: errors.New("db down")}
	uc := newTestUseCase(bookings, &fakeAuditRepo{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Completed)
	assert.Equal(t, int64(0), resp.Deleted)
}

func TestExecute_AuditFailureDoesNotFailSweep(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{completed: 1}, &fakeAuditRepo{err: errors.New("disk full")})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Completed)
}

func TestExecute_SecondRunIsIdempotent(t *testing.T) {
	bookings := &fakeBookingRepo{completed: 5, deleted: 1}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(bookings, audit)

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// The bulk statements matched everything on the first pass.
	bookings.completed = 0
	bookings.deleted = 0

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Completed)
	assert.Equal(t, int64(0), resp.Deleted)
	assert.Len(t, audit.entries, 1, "only the first run is audited")
}

func TestNewUseCase_RetentionFallback(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeAuditRepo{}, 0, &fakeLogger{})
	assert.Equal(t, domain.DefaultRetentionDays, uc.retentionDays)
}
