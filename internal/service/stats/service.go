package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/service/stats/models"
)

// Service derives per-member usage aggregates.
type Service struct {
	statsRepo    StatsRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService builds a stats service.
func NewService(
	statsRepo StatsRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		statsRepo:    statsRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetUserStats returns the member's aggregates, creating a zeroed row on
// first touch. The current-month controlling figure is recomputed from
// completed bookings on every read, so the persisted value is only a cache.
func (s *Service) GetUserStats(ctx context.Context, userID string) (*models.UserStatsResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserStats: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserStats - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	bookings, err := s.bookingRepo.FindCompletedForUser(ctx, userID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("GetUserStats: failed to load monthly bookings for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserStats - load monthly bookings: %v", ErrInternal, err)
	}

	var monthlyHours float64
	for _, b := range bookings {
		// DurationHours treats inverted spans as zero, so a corrupt row
		// cannot drag the total down.
		monthlyHours += b.DurationHours()
	}

	if err := s.statsRepo.SetMonthly(ctx, userID, monthlyHours); err != nil {
		s.logger.Error("GetUserStats: failed to persist monthly figure for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserStats - persist monthly figure: %v", ErrInternal, err)
	}

	stats.ControllingPerMonth = monthlyHours

	s.logger.Info("GetUserStats: user=%s controllingPerMonth=%.2f from %d bookings",
		userID, monthlyHours, len(bookings))
	return models.FromDomainStats(stats), nil
}

// SetUserStats upserts the lifetime counters supplied by the division's
// external tooling. The monthly figure is untouched.
func (s *Service) SetUserStats(ctx context.Context, userID string, req *models.SetUserStatsRequest) (*models.UserStatsResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.ControllingHours != nil && *req.ControllingHours < 0 {
		return nil, fmt.Errorf("%w: controllingHours must not be negative", ErrInvalidInput)
	}
	if req.BookingHours != nil && *req.BookingHours < 0 {
		return nil, fmt.Errorf("%w: bookingHours must not be negative", ErrInvalidInput)
	}

	stats, err := s.statsRepo.UpsertLifetime(ctx, userID, req.ControllingHours, req.BookingHours)
	if err != nil {
		s.logger.Error("SetUserStats: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: SetUserStats - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetUserStats: updated lifetime counters for user=%s", userID)
	return models.FromDomainStats(stats), nil
}
