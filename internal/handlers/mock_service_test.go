package handlers

import (
	"context"
	"fmt"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/service"
	"ocs_dashboard/internal/twin"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAssets struct {
	assets []models.AssetState
	err    error
}

func (m *mockAssets) ListAssets(ctx context.Context) ([]models.AssetState, error) {
	return m.assets, m.err
}

func (m *mockAssets) GetAsset(ctx context.Context, key string) (models.AssetState, error) {
	if m.err != nil {
		return models.AssetState{}, m.err
	}
	for _, a := range m.assets {
		if a.Key == key {
			return a, nil
		}
	}
	return models.AssetState{}, errNotFound(key)
}

type mockControl struct {
	state models.AssetState
	err   error

	lastKey    string
	lastFactor float64
	loadCalls  int
	maintCalls int
	failCalls  int
}

func (m *mockControl) SetLoadFactor(ctx context.Context, key string, factor float64) (models.AssetState, error) {
	m.loadCalls++
	m.lastKey = key
	m.lastFactor = factor
	return m.state, m.err
}

func (m *mockControl) PerformMaintenance(ctx context.Context, key string) (models.AssetState, error) {
	m.maintCalls++
	m.lastKey = key
	return m.state, m.err
}

func (m *mockControl) TriggerFailure(ctx context.Context, key string) (models.AssetState, error) {
	m.failCalls++
	m.lastKey = key
	return m.state, m.err
}

type mockEventLog struct {
	resp       []models.AssetEvent
	err        error
	lastFilter service.LogFilter
	calls      int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.AssetEvent, error) {
	m.calls++
	m.lastFilter = f
	return m.resp, m.err
}

type mockTelemetry struct {
	energy   service.EnergyReport
	alerts   []models.MaintenanceAlert
	security []models.SecurityEvent
	err      error
}

func (m *mockTelemetry) Energy(ctx context.Context) (service.EnergyReport, error) {
	return m.energy, m.err
}

func (m *mockTelemetry) MaintenanceAlerts(ctx context.Context) ([]models.MaintenanceAlert, error) {
	return m.alerts, m.err
}

func (m *mockTelemetry) SecurityEvents(ctx context.Context) ([]models.SecurityEvent, error) {
	return m.security, m.err
}

// ---- Shared Test Helpers ----

func errNotFound(key string) error {
	return fmt.Errorf("%w: %q", twin.ErrAssetNotFound, key)
}

func sampleAssets() []models.AssetState {
	return []models.AssetState{
		{Key: "P-101", Name: "Centrifugal Pump P-101", Icon: "fa-oil-can", Health: 90, Status: models.StatusOperational, StatusLabel: "Operational", LoadFactor: 1,
			Bands: models.ComponentBands{Motor: models.BandGood, Bearing: models.BandGood, Impeller: models.BandGood}},
		{Key: "T-310", Name: "Gas Turbine T-310", Icon: "fa-fan", Health: 42, HealthDelta: -0.1, Status: models.StatusMaintenanceRequired, StatusLabel: "Maintenance Required", LoadFactor: 1,
			Bands: models.ComponentBands{Motor: models.BandWarning, Bearing: models.BandGood, Impeller: models.BandWarning},
			ActiveAlerts: []models.ComponentAlert{{Component: "impeller", Severity: models.BandWarning, Message: "Impeller wear", Value: 42}}},
	}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}
