package service

import (
	"context"
	"sync"

	"ocs_dashboard/internal/logger"
	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/repository"
	"ocs_dashboard/internal/twin"
)

// fleetState guards the live fleet shared by the ticker and the HTTP handlers.
type fleetState struct {
	mu        sync.Mutex
	fleet     *twin.Fleet
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func newFleetState(fleet *twin.Fleet, eventRepo repository.EventRepo, log *logger.Logger) *fleetState {
	return &fleetState{fleet: fleet, eventRepo: eventRepo, log: log}
}

// record appends events in emission order. Must be called with mu held.
// Append failures are logged, never returned: the simulation has already moved on.
// The caller's cancellation is dropped so a state change always gets its event.
func (s *fleetState) record(ctx context.Context, events ...models.AssetEvent) {
	ctx = context.WithoutCancel(ctx)
	for _, ev := range events {
		if s.log != nil {
			s.log.Infow("asset_event", "asset", ev.AssetKey, "level", ev.Level, "message", ev.Message)
		}
		if err := s.eventRepo.Append(ctx, ev); err != nil && s.log != nil {
			s.log.Errorw("event_append_failed", "asset", ev.AssetKey, "error", err)
		}
	}
}
