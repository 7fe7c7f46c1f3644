package run_cleanup

import (
	"context"
	"fmt"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// UseCase runs one lifecycle sweep over the bookings table: expired active
// bookings become completed, and completed bookings past the retention window
// are purged. Both steps are single bulk statements, so a concurrent or
// repeated run simply matches zero rows.
type UseCase struct {
	bookingRepo   BookingRepository
	auditRepo     AuditRepository
	timeProvider  TimeProvider
	retentionDays int
	logger        Logger
}

// NewUseCase builds the cleanup use case. retentionDays bounds how long
// completed bookings are kept; values below 1 fall back to the default.
func NewUseCase(
	bookingRepo BookingRepository,
	auditRepo AuditRepository,
	retentionDays int,
	logger Logger,
) *UseCase {
	if retentionDays < 1 {
		retentionDays = domain.DefaultRetentionDays
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		auditRepo:     auditRepo,
		timeProvider:  &RealTimeProvider{},
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Execute runs both sweep steps. The sweep never fails the caller: a storage
// error in either step is logged and that step reports zero rows.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	completed, err := uc.bookingRepo.MarkCompleted(ctx, now)
	if err != nil {
		uc.logger.Error("RunCleanup: failed to complete expired bookings: %v", err)
		completed = 0
	}

	cutoff := now.AddDate(0, 0, -uc.retentionDays)
	deleted, err := uc.bookingRepo.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		uc.logger.Error("RunCleanup: failed to purge old completed bookings: %v", err)
		deleted = 0
	}

	// One aggregated trail entry, and only when the sweep actually did
	// something. Quiet cycles leave no trace.
	if completed > 0 || deleted > 0 {
		entry := &domain.AuditLogEntry{
			Action: domain.AuditSystem,
			UserID: domain.SystemActor,
			Details: fmt.Sprintf("Cleanup: completed %d expired bookings, deleted %d bookings older than %d days",
				completed, deleted, uc.retentionDays),
			Timestamp: now,
		}
		if err := uc.auditRepo.Append(ctx, entry); err != nil {
			uc.logger.Error("RunCleanup: failed to append audit entry: %v", err)
		}
	}

	uc.logger.Info("RunCleanup: completed=%d deleted=%d", completed, deleted)
	return &Response{Completed: completed, Deleted: deleted}, nil
}

// RunPeriodically drives the sweep on a fixed interval until ctx is
// cancelled. Used when the service owns its own cleanup schedule instead of
// an external cron.
func (uc *UseCase) RunPeriodically(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.logger.Info("RunCleanup: periodic sweep started, interval=%s", interval)

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("RunCleanup: periodic sweep stopped")
			return
		case <-ticker.C:
			if _, err := uc.Execute(ctx); err != nil {
				uc.logger.Error("RunCleanup: sweep cycle failed: %v", err)
			}
		}
	}
}
