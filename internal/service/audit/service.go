package audit

import (
	"context"
	"fmt"

	"github.com/xm-division/ATC-BookingService/internal/service/audit/models"
)

// Service exposes the audit trail to staff.
type Service struct {
	auditRepo AuditRepository
	logger    Logger
}

// NewService builds an audit service.
func NewService(auditRepo AuditRepository, logger Logger) *Service {
	return &Service{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// List returns the full trail, newest first.
func (s *Service) List(ctx context.Context) (*models.AuditListResponse, error) {
	entries, err := s.auditRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainEntryList(entries), nil
}
