package service

import (
	"time"

	"ocs_dashboard/internal/models"
)

// LogFilter supports history filtering by time range, level and asset.
type LogFilter struct {
	From     time.Time // inclusive; zero means no lower bound
	To       time.Time // inclusive; zero means no upper bound
	Level    string    // "", "info", "success", "warning", "error"
	AssetKey string    // "" means all assets
	Limit    int       // 0 means DefaultLogLimit
}

// EnergyReport is the trailing energy window with its summary.
type EnergyReport struct {
	Series  []models.EnergyMetric `json:"series"`
	Summary models.EnergySummary  `json:"summary"`
}
