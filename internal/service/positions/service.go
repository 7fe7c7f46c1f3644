package positions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xm-division/ATC-BookingService/internal/domain"
	positionRepo "github.com/xm-division/ATC-BookingService/internal/infra/storage/position"
	"github.com/xm-division/ATC-BookingService/internal/service/positions/models"
	"github.com/xm-division/ATC-BookingService/pkg/ptr"
)

// Service manages the position registry.
type Service struct {
	positionRepo PositionRepository
	bookingRepo  BookingRepository
	auditRepo    AuditRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService builds a position service.
func NewService(
	positionRepo PositionRepository,
	bookingRepo BookingRepository,
	auditRepo AuditRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		positionRepo: positionRepo,
		bookingRepo:  bookingRepo,
		auditRepo:    auditRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// List returns positions ordered by name.
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.PositionListResponse, error) {
	positions, err := s.positionRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPositionList(positions), nil
}

// Create registers a new position and records the audit entry in the same
// transaction.
func (s *Service) Create(ctx context.Context, req *models.CreatePositionRequest) (*models.PositionResponse, error) {
	s.logger.Info("Create: creating position id=%s by actor=%s", req.ID, req.ActorID)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed for id=%s: %v", req.ID, err)
		return nil, err
	}

	position := &domain.Position{
		ID:          strings.TrimSpace(req.ID),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		IsActive:    true,
	}
	if req.IsActive != nil {
		position.IsActive = *req.IsActive
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.positionRepo.Create(txCtx, position)
		if err != nil {
			if errors.Is(err, positionRepo.ErrPositionExists) {
				return ErrPositionExists
			}
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		position = created

		return s.auditRepo.Append(txCtx, &domain.AuditLogEntry{
			Action:     domain.AuditCreate,
			UserID:     req.ActorID,
			PositionID: ptr.Ptr(position.ID),
			Details:    fmt.Sprintf("Created position: %s (%s)", position.Name, position.ID),
		})
	})
	if err != nil {
		if errors.Is(err, ErrPositionExists) {
			s.logger.Warn("Create: position id=%s already exists", req.ID)
			return nil, ErrPositionExists
		}
		s.logger.Error("Create: failed for id=%s: %v", req.ID, err)
		return nil, err
	}

	s.logger.Info("Create: successfully created position id=%s", position.ID)
	return models.FromDomainPosition(position), nil
}

// Update applies a partial edit and records the structured diff.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePositionRequest) (*models.PositionResponse, error) {
	s.logger.Info("Update: updating position id=%s by actor=%s", id, req.ActorID)

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	var updated *domain.Position

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		old, err := s.positionRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, positionRepo.ErrPositionNotFound) {
				return ErrPositionNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		updated, err = s.positionRepo.Update(txCtx, id, update)
		if err != nil {
			if errors.Is(err, positionRepo.ErrPositionNotFound) {
				return ErrPositionNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		return s.auditRepo.Append(txCtx, &domain.AuditLogEntry{
			Action:     domain.AuditUpdate,
			UserID:     req.ActorID,
			PositionID: ptr.Ptr(id),
			Details:    fmt.Sprintf("Updated position: %s (%s)", updated.Name, updated.ID),
			Changes:    positionDiff(old, updated),
		})
	})
	if err != nil {
		if errors.Is(err, ErrPositionNotFound) {
			s.logger.Warn("Update: position id=%s not found", id)
			return nil, ErrPositionNotFound
		}
		s.logger.Error("Update: failed for id=%s: %v", id, err)
		return nil, err
	}

	s.logger.Info("Update: successfully updated position id=%s", id)
	return models.FromDomainPosition(updated), nil
}

// Delete removes a position. Deletion is refused while active bookings still
// reference the code; completed and cancelled bookings keep the code as a
// historical reference.
func (s *Service) Delete(ctx context.Context, id string, actorID string) error {
	s.logger.Info("Delete: deleting position id=%s by actor=%s", id, actorID)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		position, err := s.positionRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, positionRepo.ErrPositionNotFound) {
				return ErrPositionNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		activeCount, err := s.bookingRepo.CountActiveByPosition(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Delete - count active bookings: %v", ErrInternal, err)
		}
		if activeCount > 0 {
			return ErrHasActiveBookings
		}

		if err := s.positionRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, positionRepo.ErrPositionNotFound) {
				return ErrPositionNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return s.auditRepo.Append(txCtx, &domain.AuditLogEntry{
			Action:     domain.AuditDelete,
			UserID:     actorID,
			PositionID: ptr.Ptr(id),
			Details:    fmt.Sprintf("Deleted position: %s (%s)", position.Name, position.ID),
		})
	})

	switch {
	case err == nil:
		s.logger.Info("Delete: successfully deleted position id=%s", id)
		return nil
	case errors.Is(err, ErrPositionNotFound):
		s.logger.Warn("Delete: position id=%s not found", id)
		return ErrPositionNotFound
	case errors.Is(err, ErrHasActiveBookings):
		s.logger.Warn("Delete: position id=%s still has active bookings", id)
		return ErrHasActiveBookings
	default:
		s.logger.Error("Delete: failed for id=%s: %v", id, err)
		return err
	}
}

// validateCreate checks the required fields of a create request.
func validateCreate(req *models.CreatePositionRequest) error {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if len(id) > domain.MaxPositionIDLength {
		return fmt.Errorf("%w: id exceeds %d characters", ErrInvalidInput, domain.MaxPositionIDLength)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxPositionNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxPositionNameLength)
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}

// positionDiff builds the structured audit diff between two revisions.
func positionDiff(old, updated *domain.Position) map[string]domain.FieldChange {
	changes := make(map[string]domain.FieldChange)
	if old.Name != updated.Name {
		changes["name"] = domain.FieldChange{Old: old.Name, New: updated.Name}
	}
	if old.Description != updated.Description {
		changes["description"] = domain.FieldChange{Old: old.Description, New: updated.Description}
	}
	if old.IsActive != updated.IsActive {
		changes["isActive"] = domain.FieldChange{Old: old.IsActive, New: updated.IsActive}
	}
	if len(changes) == 0 {
		return nil
	}
	return changes
}
