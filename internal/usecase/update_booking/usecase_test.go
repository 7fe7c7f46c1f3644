package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	bookingRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/booking"
	positionRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/position"
	"github.com/xm-division/ATC-BookingService/pkg/ptr"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// --- fakes ---

type fakeBookingRepo struct {
	byID        *domain.Booking
	byIDErr     error
	scheduled   []*domain.Booking
	scheduleErr error
	updated     *domain.Booking
	updateErr   error

	scheduleCalled bool
	appliedUpdate  *domain.BookingUpdate
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.byID, f.byIDErr
}

func (f *fakeBookingRepo) FindForSchedule(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	f.scheduleCalled = true
	return f.scheduled, f.scheduleErr
}

func (f *fakeBookingRepo) Update(_ context.Context, _ int64, update domain.BookingUpdate) (*domain.Booking, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.appliedUpdate = &update

	result := *f.byID
	if update.Position != nil {
		result.Position = *update.Position
	}
	if update.Date != nil {
		result.Date = *update.Date
	}
	if update.StartTime != nil {
		result.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		result.EndTime = *update.EndTime
	}
	if update.Type != nil {
		result.Type = *update.Type
	}
	if update.Status != nil {
		result.Status = *update.Status
	}
	result.UpdatedAt = time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)
	f.updated = &result
	return &result, nil
}

type fakePositionRepo struct {
	position *domain.Position
	err      error
}

func (f *fakePositionRepo) GetByID(_ context.Context, _ string) (*domain.Position, error) {
	return f.position, f.err
}

type fakeAuditRepo struct {
	entries []*domain.AuditLogEntry
}

func (f *fakeAuditRepo) Append(_ context.Context, e *domain.AuditLogEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

type fakeTxManager struct {
	serializableUsed bool
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.serializableUsed = true
	return fn(ctx)
}

type fakeLogger struct{}

func (f *fakeLogger) Info(format string, v ...interface{})  {}
func (f *fakeLogger) Warn(format string, v ...interface{})  {}
func (f *fakeLogger) Error(format string, v ...interface{}) {}

// --- helpers ---

func ownedBooking() *domain.Booking {
	return &domain.Booking{
		ID:        7,
		UserID:    "540147",
		Position:  "EDDM_TWR",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Type:      domain.TypeControlling,
		Status:    domain.StatusActive,
	}
}

func ownerRequest() *Request {
	return &Request{
		BookingID: 7,
		ActorID:   "540147",
	}
}

func newTestSetup(existing *domain.Booking) (*UseCase, *fakeBookingRepo, *fakeAuditRepo, *fakeTxManager) {
	bookings := &fakeBookingRepo{byID: existing}
	audit := &fakeAuditRepo{}
	tx := &fakeTxManager{}
	uc := NewUseCase(bookings, &fakePositionRepo{position: &domain.Position{ID: "EDDF_APP", IsActive: true}}, audit, tx, &fakeLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)}
	return uc, bookings, audit, tx
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

// --- tests ---

func TestExecute_PlainFieldEditSkipsConflictCheck(t *testing.T) {
	uc, bookings, audit, tx := newTestSetup(ownedBooking())

	req := ownerRequest()
	req.Type = ptr.Ptr(domain.TypeTraining)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "training", resp.Type)
	assert.False(t, bookings.scheduleCalled, "type-only edit must not re-check the schedule")
	assert.False(t, tx.serializableUsed, "type-only edit does not need serializable isolation")

	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, domain.AuditUpdate, entry.Action)
	require.Contains(t, entry.Changes, "type")
	assert.Equal(t, "controlling", entry.Changes["type"].Old)
	assert.Equal(t, "training", entry.Changes["type"].New)
}

func TestExecute_IntervalEditRunsConflictCheckSerializable(t *testing.T) {
	uc, bookings, _, tx := newTestSetup(ownedBooking())

	req := ownerRequest()
	req.StartTime = ptr.Ptr(types.TimeString("13:00"))
	req.EndTime = ptr.Ptr(types.TimeString("15:00"))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, bookings.scheduleCalled)
	assert.True(t, tx.serializableUsed)
}

func TestExecute_IntervalEditExcludesSelf(t *testing.T) {
	existing := ownedBooking()
	uc, bookings, _, _ := newTestSetup(existing)
	// The only scheduled booking is the one being edited; moving inside its
	// own old slot must not conflict with itself.
	bookings.scheduled = []*domain.Booking{existing}

	req := ownerRequest()
	req.StartTime = ptr.Ptr(types.TimeString("10:30"))
	req.EndTime = ptr.Ptr(types.TimeString("11:30"))

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_IntervalEditConflictsWithOther(t *testing.T) {
	existing := ownedBooking()
	other := ownedBooking()
	other.ID = 8
	other.UserID = "200001"
	other.StartTime = "13:00"
	other.EndTime = "15:00"

	uc, bookings, _, _ := newTestSetup(existing)
	bookings.scheduled = []*domain.Booking{existing, other}

	req := ownerRequest()
	req.StartTime = ptr.Ptr(types.TimeString("14:00"))
	req.EndTime = ptr.Ptr(types.TimeString("16:00"))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
}

func TestExecute_IntervalEditValidatesEffectiveInterval(t *testing.T) {
	uc, _, _, _ := newTestSetup(ownedBooking())

	// Existing end is 12:00; moving the start past it inverts the interval.
	req := ownerRequest()
	req.StartTime = ptr.Ptr(types.TimeString("13:00"))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_EmptyUpdateRejected(t *testing.T) {
	uc, _, _, _ := newTestSetup(ownedBooking())

	_, err := uc.Execute(context.Background(), ownerRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateRequest_UpdateEmptiness(t *testing.T) {
	empty := &Request{BookingID: 7, ActorID: "540147"}
	assert.ErrorIs(t, validateRequest(empty), ErrInvalidInput)

	populated := &Request{BookingID: 7, ActorID: "540147", Type: ptr.Ptr(domain.TypeExam)}
	assert.NoError(t, validateRequest(populated))
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, bookings, _, _ := newTestSetup(nil)
	bookings.byIDErr = bookingRepo.ErrBookingNotFound

	req := ownerRequest()
	req.Type = ptr.Ptr(domain.TypeExam)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NonOwnerDenied(t *testing.T) {
	uc, _, _, _ := newTestSetup(ownedBooking())

	req := ownerRequest()
	req.ActorID = "999999"
	req.Type = ptr.Ptr(domain.TypeExam)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_StaffMayEditOthersBookings(t *testing.T) {
	uc, _, _, _ := newTestSetup(ownedBooking())

	req := ownerRequest()
	req.ActorID = "999999"
	req.IsStaff = true
	req.Type = ptr.Ptr(domain.TypeExam)

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OwnerMayCancel(t *testing.T) {
	uc, _, audit, _ := newTestSetup(ownedBooking())

	req := ownerRequest()
	req.Status = ptr.Ptr(domain.StatusCancelled)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)

	require.Len(t, audit.entries, 1)
	require.Contains(t, audit.entries[0].Changes, "status")
}

func TestExecute_OwnerMayNotForceOtherStatuses(t *testing.T) {
	uc, _, _, _ := newTestSetup(ownedBooking())

	req := ownerRequest()
	req.Status = ptr.Ptr(domain.StatusCompleted)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_OwnerMayNotEditTerminalBooking(t *testing.T) {
	existing := ownedBooking()
	existing.Status = domain.StatusCompleted
	uc, _, _, _ := newTestSetup(existing)

	req := ownerRequest()
	req.Type = ptr.Ptr(domain.TypeExam)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_MoveToUnknownPosition(t *testing.T) {
	bookings := &fakeBookingRepo{byID: ownedBooking()}
	uc := NewUseCase(bookings, &fakePositionRepo{err: positionRepo.ErrPositionNotFound}, &fakeAuditRepo{}, &fakeTxManager{}, &fakeLogger{})

	req := ownerRequest()
	req.Position = ptr.Ptr("ZZZZ_TWR")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestExecute_MoveToInactivePosition(t *testing.T) {
	bookings := &fakeBookingRepo{byID: ownedBooking()}
	uc := NewUseCase(bookings, &fakePositionRepo{position: &domain.Position{ID: "EDDF_APP", IsActive: false}}, &fakeAuditRepo{}, &fakeTxManager{}, &fakeLogger{})

	req := ownerRequest()
	req.Position = ptr.Ptr("EDDF_APP")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPositionInactive)
}
