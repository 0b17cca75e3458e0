package service

import (
	"context"
	"time"

	"ocs_dashboard/internal/logger"
	"ocs_dashboard/internal/repository"
	"ocs_dashboard/internal/twin"
)

// RetentionService bounds the event log by age and by count.
type RetentionService struct {
	eventRepo  repository.EventRepo
	clock      twin.Clock
	maxAge     time.Duration
	maxEntries int
	log        *logger.Logger
}

func NewRetentionService(eventRepo repository.EventRepo, clock twin.Clock, maxAge time.Duration, maxEntries int, log *logger.Logger) *RetentionService {
	return &RetentionService{
		eventRepo:  eventRepo,
		clock:      clock,
		maxAge:     maxAge,
		maxEntries: maxEntries,
		log:        log,
	}
}

// Prune deletes events past the retention window and beyond the entry cap.
// A zero maxAge or maxEntries disables that rule.
func (s *RetentionService) Prune(ctx context.Context) (int64, error) {
	var before time.Time
	if s.maxAge > 0 {
		before = s.clock().Add(-s.maxAge)
	}
	removed, err := s.eventRepo.Prune(ctx, before, s.maxEntries)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("event_prune_failed", "error", err)
		}
		return removed, err
	}
	if removed > 0 && s.log != nil {
		s.log.Infow("event_pruned", "removed", removed)
	}
	return removed, nil
}
