package service

import (
	"context"
	"time"

	"ocs_dashboard/internal/logger"
	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/repository"
	"ocs_dashboard/internal/telemetry"
	"ocs_dashboard/internal/twin"
)

// Assets exposes read-only asset snapshots.
type Assets interface {
	ListAssets(ctx context.Context) ([]models.AssetState, error)
	GetAsset(ctx context.Context, key string) (models.AssetState, error)
}

// Control exposes operator actions. Each call records the emitted events
// and returns the asset snapshot taken right after the action.
type Control interface {
	SetLoadFactor(ctx context.Context, key string, factor float64) (models.AssetState, error)
	PerformMaintenance(ctx context.Context, key string) (models.AssetState, error)
	TriggerFailure(ctx context.Context, key string) (models.AssetState, error)
}

// Simulator runs the background loop that advances every asset.
// Stop via context cancellation for graceful shutdown.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
	Step(ctx context.Context) []models.AssetEvent
}

// EventLog exposes the append-only log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.AssetEvent, error)
}

// Telemetry exposes the synthetic building feeds.
type Telemetry interface {
	Energy(ctx context.Context) (EnergyReport, error)
	MaintenanceAlerts(ctx context.Context) ([]models.MaintenanceAlert, error)
	SecurityEvents(ctx context.Context) ([]models.SecurityEvent, error)
}

// Retention trims the event log.
type Retention interface {
	Prune(ctx context.Context) (int64, error)
}

type Service struct {
	Assets
	Control
	Simulator
	EventLog
	Telemetry
	Retention
}

// Options carries the non-repository dependencies of the services.
// Zero values fall back to time.Now, a time-seeded source and no retention limits.
type Options struct {
	Log           *logger.Logger
	Clock         twin.Clock
	TelemetryRand telemetry.Rand
	MaxEventAge   time.Duration
	MaxEvents     int
}

// NewService wires the repository layer and the fleet into concrete services.
// All fleet-facing services share one lock.
func NewService(repos *repository.Repository, fleet *twin.Fleet, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.TelemetryRand == nil {
		opts.TelemetryRand = twin.NewRand(0)
	}
	state := newFleetState(fleet, repos.EventRepo, opts.Log)
	return &Service{
		Assets:    NewAssetService(state),
		Control:   NewControlService(state),
		Simulator: NewSimulatorService(state),
		EventLog:  NewEventLogService(repos.EventRepo),
		Telemetry: NewTelemetryService(opts.Clock, opts.TelemetryRand),
		Retention: NewRetentionService(repos.EventRepo, opts.Clock, opts.MaxEventAge, opts.MaxEvents, opts.Log),
	}
}
