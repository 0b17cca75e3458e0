package twin

import (
	"errors"
	"fmt"
	"math"
	"time"

	"ocs_dashboard/internal/models"
)

// Simulation constants carried over from the twin model.
const (
	DefaultAnomalyChance  = 0.02
	DefaultDegradationMin = 0.05
	DefaultDegradationMax = 0.15

	spikeMinMMS = 5.0
	spikeMaxMMS = 8.0

	baseVibrationMMS   = 2.0
	vibrationPerHealth = 0.1
	vibrationNoise     = 0.5

	baseTempC     = 75.0
	tempPerHealth = 0.5
	tempNoiseC    = 2.0

	failureHealth     = 5.0
	failureVibration  = 15.0
	failureTempC      = 150.0
	serviceHealthMin  = 92
	serviceHealthMax  = 99
	serviceTempMinC   = 75.0
	serviceTempMaxC   = 80.0
	serviceVibMinMMS  = 2.0
	serviceVibMaxMMS  = 3.5
	initialTempMinC   = 75.0
	initialTempMaxC   = 85.0
	initialVibMinMMS  = 2.0
	initialVibMaxMMS  = 4.0
	defaultLoadFactor = 1.0
)

var (
	ErrAssetNotFound     = errors.New("asset not found")
	ErrInvalidLoadFactor = errors.New("invalid load factor: must be a finite value >= 0")
)

// Spec describes one asset of the fleet catalogue.
type Spec struct {
	Key            string
	Name           string
	Icon           string
	InitialHealth  float64
	DegradationMin float64
	DegradationMax float64
	AnomalyChance  float64
}

// Validate checks that s can seed an asset.
func (s Spec) Validate() error {
	switch {
	case s.Key == "":
		return errors.New("key is required")
	case s.Name == "":
		return fmt.Errorf("asset %s: name is required", s.Key)
	case s.InitialHealth < 0 || s.InitialHealth > 100:
		return fmt.Errorf("asset %s: initial health %.1f outside [0,100]", s.Key, s.InitialHealth)
	case s.DegradationMin <= 0 || s.DegradationMax < s.DegradationMin:
		return fmt.Errorf("asset %s: degradation range [%.3f,%.3f] is invalid", s.Key, s.DegradationMin, s.DegradationMax)
	case s.AnomalyChance < 0 || s.AnomalyChance > 1:
		return fmt.Errorf("asset %s: anomaly chance %.3f outside [0,1]", s.Key, s.AnomalyChance)
	}
	return nil
}

// DefaultSpecs is the built-in fleet.
func DefaultSpecs() []Spec {
	mk := func(key, name, icon string, health float64) Spec {
		return Spec{
			Key:            key,
			Name:           name,
			Icon:           icon,
			InitialHealth:  health,
			DegradationMin: DefaultDegradationMin,
			DegradationMax: DefaultDegradationMax,
			AnomalyChance:  DefaultAnomalyChance,
		}
	}
	return []Spec{
		mk("P-101", "Centrifugal Pump P-101", "fa-oil-can", 90),
		mk("C-205", "Compressor C-205", "fa-wind", 75),
		mk("T-310", "Gas Turbine T-310", "fa-fan", 60),
		mk("R-420", "Chemical Reactor R-420", "fa-flask", 98),
	}
}

// Asset is the mutable state of one simulated piece of equipment.
// It is not safe for concurrent use.
type Asset struct {
	Key  string
	Name string
	Icon string

	Health         float64
	PreviousHealth float64
	TemperatureC   float64
	VibrationMMS   float64
	LoadFactor     float64

	Status     models.Status
	LastStatus models.Status

	DegradationRate float64
	AnomalyChance   float64
	ActiveAlerts    []models.ComponentAlert

	degradationMin float64
	degradationMax float64
	updatedAt      time.Time

	rng   Rand
	clock Clock
}

// NewAsset seeds an asset from its spec. The status starts Operational
// whatever the health, so an unhealthy asset reports its state on the first update.
func NewAsset(spec Spec, rng Rand, clock Clock) *Asset {
	if clock == nil {
		clock = time.Now
	}
	return &Asset{
		Key:             spec.Key,
		Name:            spec.Name,
		Icon:            spec.Icon,
		Health:          spec.InitialHealth,
		PreviousHealth:  spec.InitialHealth,
		TemperatureC:    uniform(rng, initialTempMinC, initialTempMaxC),
		VibrationMMS:    uniform(rng, initialVibMinMMS, initialVibMaxMMS),
		LoadFactor:      defaultLoadFactor,
		Status:          models.StatusOperational,
		LastStatus:      models.StatusOperational,
		DegradationRate: uniform(rng, spec.DegradationMin, spec.DegradationMax),
		AnomalyChance:   spec.AnomalyChance,
		ActiveAlerts:    []models.ComponentAlert{},
		degradationMin:  spec.DegradationMin,
		degradationMax:  spec.DegradationMax,
		updatedAt:       clock(),
		rng:             rng,
		clock:           clock,
	}
}

// Update advances the asset by one tick. It returns the transition event, if any.
func (a *Asset) Update() (models.AssetEvent, bool) {
	a.PreviousHealth = a.Health
	a.Health = clampHealth(a.Health - a.DegradationRate*a.LoadFactor)

	if a.rng.Float64() < a.AnomalyChance {
		a.VibrationMMS += uniform(a.rng, spikeMinMMS, spikeMaxMMS)
	} else {
		wear := 100 - a.Health
		a.VibrationMMS = (baseVibrationMMS+wear*vibrationPerHealth)*a.LoadFactor + uniform(a.rng, -vibrationNoise, vibrationNoise)
		a.TemperatureC = (baseTempC+wear*tempPerHealth)*a.LoadFactor + uniform(a.rng, -tempNoiseC, tempNoiseC)
	}

	a.ActiveAlerts = componentAlerts(a.Health, a.TemperatureC, a.VibrationMMS)
	a.updatedAt = a.clock()

	next := StatusFor(a.Health)
	var (
		ev      models.AssetEvent
		emitted bool
	)
	if next != a.LastStatus {
		if level, msg, ok := transitionEvent(a.Name, a.LastStatus, next); ok {
			ev, emitted = a.event(level, msg), true
		}
	}
	a.Status = next
	a.LastStatus = a.Status
	return ev, emitted
}

// TriggerCatastrophicFailure forces the asset into imminent failure.
func (a *Asset) TriggerCatastrophicFailure() models.AssetEvent {
	a.Health = failureHealth
	a.VibrationMMS = failureVibration
	a.TemperatureC = failureTempC
	a.Status = models.StatusImminentFailure
	a.ActiveAlerts = componentAlerts(a.Health, a.TemperatureC, a.VibrationMMS)
	a.updatedAt = a.clock()
	return a.event(models.LevelError, "Catastrophic failure SIMULATED on "+a.Name)
}

// PerformMaintenance restores the asset to a freshly serviced condition.
func (a *Asset) PerformMaintenance() models.AssetEvent {
	a.Health = float64(randInt(a.rng, serviceHealthMin, serviceHealthMax))
	a.TemperatureC = uniform(a.rng, serviceTempMinC, serviceTempMaxC)
	a.VibrationMMS = uniform(a.rng, serviceVibMinMMS, serviceVibMaxMMS)
	a.Status = models.StatusOperationalPostMaintenance
	a.DegradationRate = uniform(a.rng, a.degradationMin, a.degradationMax)
	a.ActiveAlerts = []models.ComponentAlert{}
	a.updatedAt = a.clock()
	return a.event(models.LevelSuccess, "Maintenance successfully performed on "+a.Name)
}

// SetLoadFactor sets the multiplier applied from the next Update on.
func (a *Asset) SetLoadFactor(factor float64) error {
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, factor)
	}
	a.LoadFactor = factor
	return nil
}

// Snapshot copies the asset into its read model.
func (a *Asset) Snapshot() models.AssetState {
	alerts := make([]models.ComponentAlert, len(a.ActiveAlerts))
	copy(alerts, a.ActiveAlerts)
	return models.AssetState{
		Key:             a.Key,
		Name:            a.Name,
		Icon:            a.Icon,
		Health:          a.Health,
		PreviousHealth:  a.PreviousHealth,
		HealthDelta:     a.Health - a.PreviousHealth,
		TemperatureC:    a.TemperatureC,
		VibrationMMS:    a.VibrationMMS,
		LoadFactor:      a.LoadFactor,
		Status:          a.Status,
		StatusLabel:     a.Status.Label(),
		LastStatus:      a.LastStatus,
		DegradationRate: a.DegradationRate,
		AnomalyChance:   a.AnomalyChance,
		Bands: models.ComponentBands{
			Motor:    MotorBand(a.TemperatureC),
			Bearing:  BearingBand(a.VibrationMMS),
			Impeller: ImpellerBand(a.Health),
		},
		ActiveAlerts: alerts,
		UpdatedAt:    a.updatedAt.UTC(),
	}
}

func (a *Asset) event(level models.Level, msg string) models.AssetEvent {
	return models.AssetEvent{
		OccurredAt: a.clock().UTC().Truncate(time.Second),
		Level:      level,
		AssetKey:   a.Key,
		Message:    msg,
	}
}

func clampHealth(h float64) float64 {
	return math.Max(0, math.Min(100, h))
}
