package models

import "time"

// Status is the discrete condition of an asset derived from its health.
type Status string

const (
	StatusOperational                Status = "operational"
	StatusAnomalyDetected            Status = "anomaly_detected"
	StatusMaintenanceRequired        Status = "maintenance_required"
	StatusImminentFailure            Status = "imminent_failure"
	StatusOperationalPostMaintenance Status = "operational_post_maintenance"
)

var statusLabels = map[Status]string{
	StatusOperational:                "Operational",
	StatusAnomalyDetected:            "Anomaly Detected",
	StatusMaintenanceRequired:        "Maintenance Required",
	StatusImminentFailure:            "Imminent Failure",
	StatusOperationalPostMaintenance: "Operational (Post-Maintenance)",
}

// Label returns the human-readable status shown on the dashboard.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Band is a traffic-light grade used to colour components.
type Band string

const (
	BandGood     Band = "good"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
)

// ComponentAlert is raised while a monitored component is outside its healthy band.
type ComponentAlert struct {
	Component string  `json:"component"` // motor | bearing | impeller
	Severity  Band    `json:"severity"`  // warning | critical
	Message   string  `json:"message"`
	Value     float64 `json:"value"`
}

// ComponentBands grades the three components drawn on the twin diagram.
type ComponentBands struct {
	Motor    Band `json:"motor"`
	Bearing  Band `json:"bearing"`
	Impeller Band `json:"impeller"`
}

// AssetState is a read-only snapshot of one simulated asset.
type AssetState struct {
	Key             string           `json:"key"`
	Name            string           `json:"name"`
	Icon            string           `json:"icon"`
	Health          float64          `json:"health"`
	PreviousHealth  float64          `json:"previous_health"`
	HealthDelta     float64          `json:"health_delta"`
	TemperatureC    float64          `json:"temperature_c"`
	VibrationMMS    float64          `json:"vibration_mm_s"`
	LoadFactor      float64          `json:"load_factor"`
	Status          Status           `json:"status"`
	StatusLabel     string           `json:"status_label"`
	LastStatus      Status           `json:"last_status"`
	DegradationRate float64          `json:"degradation_rate"`
	AnomalyChance   float64          `json:"anomaly_chance"`
	Bands           ComponentBands   `json:"bands"`
	ActiveAlerts    []ComponentAlert `json:"active_alerts"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
