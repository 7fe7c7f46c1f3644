package create_booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	positionRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/position"
	"github.com/xm-division/ATC-BookingService/pkg/types"
)

// --- fakes ---

type fakeBookingRepo struct {
	scheduled   []*domain.Booking
	scheduleErr error
	created     *domain.Booking
	createErr   error
}

func (f *fakeBookingRepo) FindForSchedule(_ context.Context, _ string, _ time.Time) ([]*domain.Booking, error) {
	return f.scheduled, f.scheduleErr
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 101
	created.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
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
	err     error
}

func (f *fakeAuditRepo) Append(_ context.Context, e *domain.AuditLogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, e)
	return nil
}

type fakeNotifier struct {
	enabled bool
	err     error
	called  chan *domain.Booking
}

func (f *fakeNotifier) Enabled() bool { return f.enabled }

func (f *fakeNotifier) NotifyBookingCreated(_ context.Context, b *domain.Booking) error {
	if f.called != nil {
		f.called <- b
	}
	return f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLogger struct{}

func (f *fakeLogger) Info(format string, v ...interface{})  {}
func (f *fakeLogger) Warn(format string, v ...interface{})  {}
func (f *fakeLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

// --- helpers ---

func activePosition() *domain.Position {
	return &domain.Position{ID: "EDDM_TWR", Name: "Munich Tower", IsActive: true}
}

func validRequest() *Request {
	return &Request{
		UserID:    "540147",
		Position:  "EDDM_TWR",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "12:00",
		Type:      domain.TypeControlling,
	}
}

func existingBooking(id int64, start, end types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    "200001",
		Position:  "EDDM_TWR",
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
		Type:      domain.TypeControlling,
		Status:    domain.StatusActive,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, positions *fakePositionRepo, audit *fakeAuditRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(bookings, positions, audit, notifier, &fakeTxManager{}, &fakeLogger{})
	uc.timeProvider = &fixedTime{t: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

// --- tests ---

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(bookings, &fakePositionRepo{position: activePosition()}, audit, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "540147", resp.UserID)
	assert.Equal(t, "EDDM_TWR", resp.Position)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
	assert.Equal(t, "active", resp.Status)

	require.Len(t, audit.entries, 1)
	entry := audit.entries[0]
	assert.Equal(t, domain.AuditCreate, entry.Action)
	assert.Equal(t, "540147", entry.UserID)
	assert.Equal(t, "Created booking for EDDM_TWR on 2025-10-15 from 10:00 to 12:00", entry.Details)
	require.NotNil(t, entry.BookingID)
	assert.Equal(t, int64(101), *entry.BookingID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing user", func(r *Request) { r.UserID = " " }},
		{"missing position", func(r *Request) { r.Position = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"bad start time", func(r *Request) { r.StartTime = "25:00" }},
		{"bad end time", func(r *Request) { r.EndTime = "noon" }},
		{"unknown type", func(r *Request) { r.Type = "observing" }},
		{"end before start", func(r *Request) { r.StartTime = "12:00"; r.EndTime = "10:00" }},
		{"end equals start", func(r *Request) { r.StartTime = "10:00"; r.EndTime = "10:00" }},
		{"below minimum duration", func(r *Request) { r.StartTime = "10:00"; r.EndTime = "10:59" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakePositionRepo{position: activePosition()}, &fakeAuditRepo{}, &fakeNotifier{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ExactlyMinimumDuration(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePositionRepo{position: activePosition()}, &fakeAuditRepo{}, &fakeNotifier{})
	req := validRequest()
	req.StartTime = "10:00"
	req.EndTime = "11:00"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_PositionNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePositionRepo{err: positionRepo.ErrPositionNotFound}, &fakeAuditRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPositionNotFound)
}

func TestExecute_PositionInactive(t *testing.T) {
	position := activePosition()
	position.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePositionRepo{position: position}, &fakeAuditRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPositionInactive)
}

func TestExecute_OverlapMatrix(t *testing.T) {
	// Requested interval is 10:00-12:00.
	tests := []struct {
		name     string
		start    types.TimeString
		end      types.TimeString
		conflict bool
	}{
		{"identical", "10:00", "12:00", true},
		{"contained", "10:30", "11:30", true},
		{"containing", "09:00", "13:00", true},
		{"overlaps start", "09:00", "10:01", true},
		{"overlaps end", "11:59", "13:00", true},
		{"touching before", "08:00", "10:00", false},
		{"touching after", "12:00", "14:00", false},
		{"well before", "07:00", "09:00", false},
		{"well after", "13:00", "15:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{scheduled: []*domain.Booking{existingBooking(5, tt.start, tt.end)}}
			uc := newTestUseCase(bookings, &fakePositionRepo{position: activePosition()}, &fakeAuditRepo{}, &fakeNotifier{})

			_, err := uc.Execute(context.Background(), validRequest())
			if tt.conflict {
				assert.ErrorIs(t, err, ErrTimeConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindOverlap_GeneratedIntervals(t *testing.T) {
	// Cross-checks findOverlap against a brute-force minute comparison over
	// randomly generated day schedules. Seeded for reproducibility.
	rng := rand.New(rand.NewSource(1))

	timeFromMinutes := func(m int) types.TimeString {
		return types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
	}

	for round := 0; round < 200; round++ {
		reqStart := rng.Intn(1260)
		reqEnd := reqStart + domain.MinBookingDurationMinutes + rng.Intn(120)

		scheduled := make([]*domain.Booking, 0, 8)
		wantConflict := false
		for i := 0; i < 1+rng.Intn(7); i++ {
			bStart := rng.Intn(1300)
			bEnd := bStart + 15 + rng.Intn(139)
			if bEnd > 1439 {
				bEnd = 1439
			}

			b := existingBooking(int64(i+1), timeFromMinutes(bStart), timeFromMinutes(bEnd))
			if rng.Intn(4) == 0 {
				b.Status = domain.StatusCancelled
			}
			scheduled = append(scheduled, b)

			if b.Status == domain.StatusActive && bStart < reqEnd && reqStart < bEnd {
				wantConflict = true
			}
		}

		got := findOverlap(timeFromMinutes(reqStart), timeFromMinutes(reqEnd), scheduled)
		if wantConflict {
			assert.NotNilf(t, got, "round %d: %s-%s should conflict", round, timeFromMinutes(reqStart), timeFromMinutes(reqEnd))
		} else {
			assert.Nilf(t, got, "round %d: %s-%s should not conflict", round, timeFromMinutes(reqStart), timeFromMinutes(reqEnd))
		}
	}
}

func TestExecute_CancelledBookingDoesNotConflict(t *testing.T) {
	cancelled := existingBooking(5, "10:00", "12:00")
	cancelled.Status = domain.StatusCancelled
	bookings := &fakeBookingRepo{scheduled: []*domain.Booking{cancelled}}
	uc := newTestUseCase(bookings, &fakePositionRepo{position: activePosition()}, &fakeAuditRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_AuditFailureFailsBooking(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakePositionRepo{position: activePosition()},
		&fakeAuditRepo{err: errors.New("disk full")},
		&fakeNotifier{},
	)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_NotificationFailureDoesNotFailBooking(t *testing.T) {
	notifier := &fakeNotifier{
		enabled: true,
		err:     fmt.Errorf("webhook down"),
		called:  make(chan *domain.Booking, 1),
	}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePositionRepo{position: activePosition()}, &fakeAuditRepo{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)

	select {
	case notified := <-notifier.called:
		assert.Equal(t, int64(101), notified.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never sent")
	}
}

func TestExecute_NotifierDisabledSkipsDelivery(t *testing.T) {
	notifier := &fakeNotifier{enabled: false, called: make(chan *domain.Booking, 1)}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePositionRepo{position: activePosition()}, &fakeAuditRepo{}, notifier)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	select {
	case <-notifier.called:
		t.Fatal("disabled notifier must not be invoked")
	case <-time.After(100 * time.Millisecond):
	}
}
