package models

import "time"

// Level is the severity of an event log entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelSuccess, LevelWarning, LevelError:
		return true
	}
	return false
}

// AssetEvent is a single entry of the event log.
type AssetEvent struct {
	EventID    string    `json:"event_id"`
	OccurredAt time.Time `json:"occurred_at"` // second precision, UTC
	Level      Level     `json:"level"`
	AssetKey   string    `json:"asset_key"`
	Message    string    `json:"message"`
}
