package service

import (
	"context"

	"ocs_dashboard/internal/models"
)

type AssetService struct {
	state *fleetState
}

func NewAssetService(state *fleetState) *AssetService {
	return &AssetService{state: state}
}

// ListAssets returns a snapshot of every asset in catalogue order.
func (s *AssetService) ListAssets(ctx context.Context) ([]models.AssetState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.fleet.Snapshots(), nil
}

func (s *AssetService) GetAsset(ctx context.Context, key string) (models.AssetState, error) {
	if err := ctx.Err(); err != nil {
		return models.AssetState{}, err
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.fleet.Snapshot(key)
}
