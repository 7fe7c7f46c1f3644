package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	bookingRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/booking"
	positionRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/position"
)

// UseCase applies a partial edit to a booking.
type UseCase struct {
	bookingRepo  BookingRepository
	positionRepo PositionRepository
	auditRepo    AuditRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase builds the update booking use case.
func NewUseCase(
	bookingRepo BookingRepository,
	positionRepo PositionRepository,
	auditRepo AuditRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		positionRepo: positionRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute edits a booking. When the edit moves the booked interval (position,
// date or either time), the conflict check is re-run inside a serializable
// transaction against the target day, excluding the booking itself.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%d, actor=%s, staff=%v", req.BookingID, req.ActorID, req.IsStaff)

	// 1. Validate the request fields.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	update := req.toDomainUpdate()

	// 2. Load the booking and check who may edit it.
	existing, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if err := uc.authorize(req, existing); err != nil {
		return nil, err
	}

	// 3. When moving to another position, it must exist and be bookable.
	if update.Position != nil && *update.Position != existing.Position {
		position, err := uc.positionRepo.GetByID(ctx, *update.Position)
		if err != nil {
			if errors.Is(err, positionRepo.ErrPositionNotFound) {
				uc.logger.Warn("UpdateBooking: position %s not found", *update.Position)
				return nil, ErrPositionNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get position %s: %v", *update.Position, err)
			return nil, fmt.Errorf("%w: failed to get position: %v", ErrInternal, err)
		}
		if !position.IsActive {
			uc.logger.Warn("UpdateBooking: position %s is inactive", *update.Position)
			return nil, ErrPositionInactive
		}
	}

	var result *domain.Booking

	apply := func(txCtx context.Context) error {
		if update.ChangesInterval() {
			if err := uc.checkConflicts(txCtx, existing, update); err != nil {
				return err
			}
		}

		updated, err := uc.bookingRepo.Update(txCtx, req.BookingID, update)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		entry := &domain.AuditLogEntry{
			Action:     domain.AuditUpdate,
			UserID:     req.ActorID,
			BookingID:  &updated.ID,
			PositionID: &updated.Position,
			Details: fmt.Sprintf("Updated booking for %s on %s",
				updated.Position, updated.Date.Format(domain.DateFormat)),
			Changes:   buildChanges(existing, updated),
			Timestamp: uc.timeProvider.Now(),
		}
		if err := uc.auditRepo.Append(txCtx, entry); err != nil {
			uc.logger.Error("UpdateBooking: failed to append audit entry: %v", err)
			return fmt.Errorf("%w: failed to append audit entry: %v", ErrInternal, err)
		}

		result = updated
		return nil
	}

	// 4. Interval moves need serializable isolation for the re-check; plain
	// field edits only need the update and the audit entry to commit together.
	if update.ChangesInterval() {
		err = uc.txManager.DoSerializable(ctx, apply)
	} else {
		err = uc.txManager.Do(ctx, apply)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return toResponse(result), nil
}

// authorize enforces who may edit what. Owners edit their own active
// bookings and may cancel them; everything else is staff territory.
func (uc *UseCase) authorize(req *Request, existing *domain.Booking) error {
	if !req.IsStaff {
		if existing.UserID != req.ActorID {
			uc.logger.Warn("UpdateBooking: actor=%s may not edit booking id=%d owned by %s",
				req.ActorID, existing.ID, existing.UserID)
			return ErrAccessDenied
		}
		if existing.IsTerminal() {
			uc.logger.Warn("UpdateBooking: actor=%s may not edit terminal booking id=%d",
				req.ActorID, existing.ID)
			return ErrAccessDenied
		}
		if req.Status != nil && *req.Status != domain.StatusCancelled {
			uc.logger.Warn("UpdateBooking: actor=%s may only cancel booking id=%d, requested status=%s",
				req.ActorID, existing.ID, *req.Status)
			return ErrAccessDenied
		}
	}
	return nil
}

// checkConflicts loads the target day's active bookings for the target
// position (FOR UPDATE inside the transaction) and rejects any overlap.
func (uc *UseCase) checkConflicts(txCtx context.Context, existing *domain.Booking, update domain.BookingUpdate) error {
	position := existing.Position
	if update.Position != nil {
		position = *update.Position
	}
	date := existing.Date
	if update.Date != nil {
		date = *update.Date
	}
	start := existing.StartTime
	if update.StartTime != nil {
		start = *update.StartTime
	}
	end := existing.EndTime
	if update.EndTime != nil {
		end = *update.EndTime
	}

	if err := validateInterval(start, end); err != nil {
		uc.logger.Warn("UpdateBooking: interval validation failed: %v", err)
		return err
	}

	others, err := uc.bookingRepo.FindForSchedule(txCtx, position, date)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to load day schedule: %v", err)
		return fmt.Errorf("%w: failed to load day schedule: %v", ErrInternal, err)
	}

	if conflict := findOverlap(start, end, existing.ID, others); conflict != nil {
		uc.logger.Warn("UpdateBooking: conflict with booking id=%d (%s-%s)",
			conflict.ID, conflict.StartTime, conflict.EndTime)
		return fmt.Errorf("%w: position %s is already booked from %s to %s",
			ErrTimeConflict, position, conflict.StartTime, conflict.EndTime)
	}

	return nil
}
