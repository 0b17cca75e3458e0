package service

import (
	"context"
	"sync"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/telemetry"
	"ocs_dashboard/internal/twin"
)

type TelemetryService struct {
	mu    sync.Mutex // guards rng
	clock twin.Clock
	rng   telemetry.Rand
}

func NewTelemetryService(clock twin.Clock, rng telemetry.Rand) *TelemetryService {
	return &TelemetryService{clock: clock, rng: rng}
}

// Energy regenerates the trailing 24h window on every call.
func (s *TelemetryService) Energy(ctx context.Context) (EnergyReport, error) {
	if err := ctx.Err(); err != nil {
		return EnergyReport{}, err
	}
	s.mu.Lock()
	series := telemetry.EnergySeries(s.clock(), s.rng)
	s.mu.Unlock()
	return EnergyReport{Series: series, Summary: telemetry.Summarize(series)}, nil
}

func (s *TelemetryService) MaintenanceAlerts(ctx context.Context) ([]models.MaintenanceAlert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return telemetry.MaintenanceAlerts(s.clock()), nil
}

func (s *TelemetryService) SecurityEvents(ctx context.Context) ([]models.SecurityEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return telemetry.SecurityEvents(s.clock()), nil
}
