package twin

import "ocs_dashboard/internal/models"

// Health thresholds, evaluated top-down.
const (
	operationalAbove = 80.0
	anomalyAbove     = 50.0
	maintenanceAbove = 20.0
)

// Component thresholds used by the twin diagram and the component alerts.
const (
	motorWarnC         = 100.0
	motorCriticalC     = 120.0
	bearingWarnMMS     = 5.0
	bearingCriticalMMS = 8.0
)

// StatusFor maps health to its discrete status.
func StatusFor(health float64) models.Status {
	switch {
	case health > operationalAbove:
		return models.StatusOperational
	case health > anomalyAbove:
		return models.StatusAnomalyDetected
	case health > maintenanceAbove:
		return models.StatusMaintenanceRequired
	default:
		return models.StatusImminentFailure
	}
}

// MotorBand grades motor temperature.
func MotorBand(tempC float64) models.Band {
	switch {
	case tempC < motorWarnC:
		return models.BandGood
	case tempC < motorCriticalC:
		return models.BandWarning
	default:
		return models.BandCritical
	}
}

// BearingBand grades bearing vibration.
func BearingBand(vibration float64) models.Band {
	switch {
	case vibration < bearingWarnMMS:
		return models.BandGood
	case vibration < bearingCriticalMMS:
		return models.BandWarning
	default:
		return models.BandCritical
	}
}

// ImpellerBand grades the impeller from overall health.
func ImpellerBand(health float64) models.Band {
	switch {
	case health > anomalyAbove:
		return models.BandGood
	case health > maintenanceAbove:
		return models.BandWarning
	default:
		return models.BandCritical
	}
}

// componentAlerts lists the components outside their good band.
func componentAlerts(health, tempC, vibration float64) []models.ComponentAlert {
	alerts := make([]models.ComponentAlert, 0, 3)

	switch MotorBand(tempC) {
	case models.BandCritical:
		alerts = append(alerts, models.ComponentAlert{Component: "motor", Severity: models.BandCritical, Message: "Motor overheating", Value: tempC})
	case models.BandWarning:
		alerts = append(alerts, models.ComponentAlert{Component: "motor", Severity: models.BandWarning, Message: "Motor running hot", Value: tempC})
	}

	switch BearingBand(vibration) {
	case models.BandCritical:
		alerts = append(alerts, models.ComponentAlert{Component: "bearing", Severity: models.BandCritical, Message: "Bearing vibration critical", Value: vibration})
	case models.BandWarning:
		alerts = append(alerts, models.ComponentAlert{Component: "bearing", Severity: models.BandWarning, Message: "Bearing vibration elevated", Value: vibration})
	}

	switch ImpellerBand(health) {
	case models.BandCritical:
		alerts = append(alerts, models.ComponentAlert{Component: "impeller", Severity: models.BandCritical, Message: "Impeller degradation critical", Value: health})
	case models.BandWarning:
		alerts = append(alerts, models.ComponentAlert{Component: "impeller", Severity: models.BandWarning, Message: "Impeller wear", Value: health})
	}

	return alerts
}

// transitionEvent returns the level and message for a change into next.
// ok is false when the change does not produce an event.
func transitionEvent(name string, prev, next models.Status) (models.Level, string, bool) {
	switch next {
	case models.StatusImminentFailure:
		return models.LevelError, "Imminent failure predicted for " + name, true
	case models.StatusMaintenanceRequired:
		return models.LevelError, "Critical state reached on " + name, true
	case models.StatusAnomalyDetected:
		return models.LevelWarning, "Performance anomaly detected on " + name, true
	case models.StatusOperational:
		if prev != models.StatusOperational {
			return models.LevelSuccess, name + " is back to operational status", true
		}
	}
	return "", "", false
}
