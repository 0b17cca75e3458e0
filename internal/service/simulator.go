package service

import (
	"context"
	"time"

	"ocs_dashboard/internal/models"
)

// SimulatorService advances the fleet on a fixed period.
type SimulatorService struct {
	state *fleetState
}

func NewSimulatorService(state *fleetState) *SimulatorService {
	return &SimulatorService{state: state}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Step(ctx)
		}
	}
}

// Step updates every asset once and records what they emitted.
func (s *SimulatorService) Step(ctx context.Context) []models.AssetEvent {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	events := s.state.fleet.Step()
	s.state.record(ctx, events...)
	return events
}
