package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/repository"
)

const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidLevel     = errors.New("invalid level: must be info, success, warning or error")
	ErrInvalidLimit     = errors.New("invalid limit: must be >= 0")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query parameters and validates them.
func normalizeAndValidateFilter(f LogFilter) (repository.EventQuery, error) {
	q := repository.EventQuery{
		From:     normalizeToUTC(f.From),
		To:       normalizeToUTC(f.To),
		Level:    strings.ToLower(strings.TrimSpace(f.Level)),
		AssetKey: strings.TrimSpace(f.AssetKey),
		Limit:    f.Limit,
	}

	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.EventQuery{}, ErrInvalidTimeRange
	}
	if q.Level != "" && !models.Level(q.Level).Valid() {
		return repository.EventQuery{}, fmt.Errorf("%w: %q", ErrInvalidLevel, f.Level)
	}
	switch {
	case q.Limit < 0:
		return repository.EventQuery{}, ErrInvalidLimit
	case q.Limit == 0:
		q.Limit = DefaultLogLimit
	case q.Limit > MaxLogLimit:
		q.Limit = MaxLogLimit
	}
	return q, nil
}

// List returns matching events, most recent first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.AssetEvent, error) {
	q, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q)
}
