package models

import "time"

// EnergyMetric is one point of the consumption curve.
type EnergyMetric struct {
	Timestamp time.Time `json:"timestamp"`
	ValueKWh  float64   `json:"value_kwh"`
}

// EnergySummary aggregates a generated energy window.
type EnergySummary struct {
	TotalKWh   float64   `json:"total_kwh"`
	PeakKWh    float64   `json:"peak_kwh"`
	PeakAt     time.Time `json:"peak_at"`
	AverageKWh float64   `json:"average_kwh"`
}

type MaintenanceAlert struct {
	EquipmentID          string    `json:"equipment_id"`
	AlertType            string    `json:"alert_type"`
	Probability          float64   `json:"probability"`
	Severity             string    `json:"severity"` // Critical | Warning
	Message              string    `json:"message"`
	PredictedFailureDate time.Time `json:"predicted_failure_date"`
}

type SecurityEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	EventType   string    `json:"event_type"`
	Severity    string    `json:"severity"` // High | Medium | Low
	Location    string    `json:"location"`
	Description string    `json:"description"`
}
