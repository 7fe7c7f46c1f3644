package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	positionRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/position"
)

// notifyTimeout bounds the detached notification delivery.
const notifyTimeout = 10 * time.Second

// UseCase reserves a position for a member.
type UseCase struct {
	bookingRepo  BookingRepository
	positionRepo PositionRepository
	auditRepo    AuditRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase builds the create booking use case.
func NewUseCase(
	bookingRepo BookingRepository,
	positionRepo PositionRepository,
	auditRepo AuditRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		positionRepo: positionRepo,
		auditRepo:    auditRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a booking. The overlap check and the insert run in one
// serializable transaction so two racing requests for the same slot cannot
// both commit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, position=%s, date=%s, time=%s-%s, type=%s",
		req.UserID, req.Position, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Type)

	// 1. Validate the request fields.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. The position must exist and be open for booking.
	position, err := uc.positionRepo.GetByID(ctx, req.Position)
	if err != nil {
		if errors.Is(err, positionRepo.ErrPositionNotFound) {
			uc.logger.Warn("CreateBooking: position %s not found", req.Position)
			return nil, ErrPositionNotFound
		}
		uc.logger.Error("CreateBooking: failed to get position %s: %v", req.Position, err)
		return nil, fmt.Errorf("%w: failed to get position: %v", ErrInternal, err)
	}
	if !position.IsActive {
		uc.logger.Warn("CreateBooking: position %s is inactive", req.Position)
		return nil, ErrPositionInactive
	}

	var result *domain.Booking

	// 3. Conflict check and insert in one serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Load the day's active bookings for the position (FOR UPDATE).
		existing, err := uc.bookingRepo.FindForSchedule(txCtx, req.Position, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load day schedule: %v", err)
			return fmt.Errorf("%w: failed to load day schedule: %v", ErrInternal, err)
		}

		// 3.2. Reject on any [start, end) overlap. Touching intervals pass.
		if conflict := findOverlap(req.StartTime, req.EndTime, existing); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict with booking id=%d (%s-%s)",
				conflict.ID, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: position %s is already booked from %s to %s",
				ErrTimeConflict, req.Position, conflict.StartTime, conflict.EndTime)
		}

		// 3.3. Insert the booking as active.
		booking := &domain.Booking{
			UserID:    req.UserID,
			Position:  req.Position,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Type:      req.Type,
			Status:    domain.StatusActive,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.4. Record the creation in the same transaction, so a booking can
		// never exist without its trail entry.
		entry := &domain.AuditLogEntry{
			Action:     domain.AuditCreate,
			UserID:     req.UserID,
			BookingID:  &created.ID,
			PositionID: &created.Position,
			Details: fmt.Sprintf("Created booking for %s on %s from %s to %s",
				created.Position, created.Date.Format(domain.DateFormat), created.StartTime, created.EndTime),
			Timestamp: uc.timeProvider.Now(),
		}
		if err := uc.auditRepo.Append(txCtx, entry); err != nil {
			uc.logger.Error("CreateBooking: failed to append audit entry: %v", err)
			return fmt.Errorf("%w: failed to append audit entry: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 4. Announce after commit. A webhook failure must never undo or fail the
	// booking, so delivery runs detached with its own deadline.
	if uc.notifier.Enabled() {
		go uc.notify(result)
	}

	return toResponse(result), nil
}

func (uc *UseCase) notify(booking *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	if err := uc.notifier.NotifyBookingCreated(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: notification for booking id=%d failed: %v", booking.ID, err)
	}
}
