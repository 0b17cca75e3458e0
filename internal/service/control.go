package service

import (
	"context"
	"fmt"

	"ocs_dashboard/internal/models"
)

type ControlService struct {
	state *fleetState
}

func NewControlService(state *fleetState) *ControlService {
	return &ControlService{state: state}
}

// SetLoadFactor changes the operating load of an asset. No event is emitted;
// the new load shows up in the next simulation step.
func (s *ControlService) SetLoadFactor(ctx context.Context, key string, factor float64) (models.AssetState, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if err := s.state.fleet.SetLoadFactor(key, factor); err != nil {
		return models.AssetState{}, fmt.Errorf("set load factor: %w", err)
	}
	if s.state.log != nil {
		s.state.log.Infow("load_factor_changed", "asset", key, "load_factor", factor)
	}
	return s.state.fleet.Snapshot(key)
}

// PerformMaintenance services the asset and records the success event.
func (s *ControlService) PerformMaintenance(ctx context.Context, key string) (models.AssetState, error) {
	return s.apply(ctx, key, "perform maintenance", s.state.fleet.PerformMaintenance)
}

// TriggerFailure forces a catastrophic failure and records the error event.
func (s *ControlService) TriggerFailure(ctx context.Context, key string) (models.AssetState, error) {
	return s.apply(ctx, key, "trigger failure", s.state.fleet.TriggerFailure)
}

func (s *ControlService) apply(ctx context.Context, key, op string, action func(string) (models.AssetEvent, error)) (models.AssetState, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	ev, err := action(key)
	if err != nil {
		return models.AssetState{}, fmt.Errorf("%s: %w", op, err)
	}
	s.state.record(ctx, ev)
	return s.state.fleet.Snapshot(key)
}

var _ Control = (*ControlService)(nil)
