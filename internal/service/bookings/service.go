package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	bookingRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/booking"
	"github.com/xm-division/ATC-BookingService/internal/service/bookings/models"
	"github.com/xm-division/ATC-BookingService/pkg/ptr"
)

// Service covers the booking read and delete paths. Creation and updates run
// through their own use cases because of the conflict check.
type Service struct {
	bookingRepo BookingRepository
	auditRepo   AuditRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService builds a booking service.
func NewService(
	bookingRepo BookingRepository,
	auditRepo AuditRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		auditRepo:   auditRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID returns one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBooking(booking), nil
}

// List returns bookings matching the filter, newest created first.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Delete removes a booking. Members may delete their own bookings; deleting
// someone else's requires staff rights. The audit entry commits with the
// delete.
func (s *Service) Delete(ctx context.Context, id int64, req *models.DeleteBookingRequest) error {
	s.logger.Info("Delete: deleting booking id=%d by actor=%s", id, req.ActorID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if booking.UserID != req.ActorID && !req.IsStaff {
			return ErrAccessDenied
		}

		if err := s.bookingRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return s.auditRepo.Append(txCtx, &domain.AuditLogEntry{
			Action:    domain.AuditDelete,
			UserID:    req.ActorID,
			BookingID: ptr.Ptr(id),
			Details: fmt.Sprintf("Deleted booking for %s on %s",
				booking.Position, booking.Date.Format(domain.DateFormat)),
		})
	})

	switch {
	case err == nil:
		s.logger.Info("Delete: successfully deleted booking id=%d", id)
		return nil
	case errors.Is(err, ErrBookingNotFound):
		s.logger.Warn("Delete: booking id=%d not found", id)
		return ErrBookingNotFound
	case errors.Is(err, ErrAccessDenied):
		s.logger.Warn("Delete: access denied for actor=%s to booking id=%d", req.ActorID, id)
		return ErrAccessDenied
	default:
		s.logger.Error("Delete: failed for booking id=%d: %v", id, err)
		return err
	}
}
