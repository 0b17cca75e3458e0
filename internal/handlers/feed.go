package handlers

import (
	"time"

	"ocs_dashboard/internal/models"
)

const (
	feedSnapshot = "snapshot"
	feedUpdate   = "update"

	feedBacklog = 25  // log entries sent with the first snapshot
	feedBatch   = 200 // log entries fetched per poll
)

// feedMessage is one frame of the /ws stream. A snapshot carries every
// watched asset; an update carries only assets that moved and new log entries.
type feedMessage struct {
	Type   string              `json:"type"`
	Assets []models.AssetState `json:"assets,omitempty"`
	Events []models.AssetEvent `json:"events,omitempty"`
}

func (m feedMessage) empty() bool { return len(m.Assets) == 0 && len(m.Events) == 0 }

// fleetFeed remembers what one subscriber has been sent.
type fleetFeed struct {
	asset string // "" watches the whole fleet

	sent   map[string]models.AssetState
	cursor time.Time           // newest event time delivered
	seen   map[string]struct{} // event ids delivered at cursor
}

func newFleetFeed(asset string) *fleetFeed {
	return &fleetFeed{
		asset: asset,
		sent:  make(map[string]models.AssetState),
		seen:  make(map[string]struct{}),
	}
}

// watched drops assets outside the subscription.
func (f *fleetFeed) watched(assets []models.AssetState) []models.AssetState {
	if f.asset == "" {
		return assets
	}
	for _, a := range assets {
		if a.Key == f.asset {
			return []models.AssetState{a}
		}
	}
	return nil
}

// changed returns the watched assets whose readings differ from the last
// frame and remembers them as sent.
func (f *fleetFeed) changed(assets []models.AssetState) []models.AssetState {
	var out []models.AssetState
	for _, a := range f.watched(assets) {
		if prev, ok := f.sent[a.Key]; ok && sameReading(prev, a) {
			continue
		}
		f.sent[a.Key] = a
		out = append(out, a)
	}
	return out
}

// fresh filters out log entries already delivered and advances the cursor.
// Entries sharing a second with the cursor are told apart by id.
func (f *fleetFeed) fresh(events []models.AssetEvent) []models.AssetEvent {
	var out []models.AssetEvent
	for _, ev := range events {
		if ev.OccurredAt.Before(f.cursor) {
			continue
		}
		if _, dup := f.seen[ev.EventID]; dup {
			continue
		}
		out = append(out, ev)
	}
	for _, ev := range out {
		switch {
		case ev.OccurredAt.After(f.cursor):
			f.cursor = ev.OccurredAt
			f.seen = map[string]struct{}{ev.EventID: {}}
		case ev.OccurredAt.Equal(f.cursor):
			f.seen[ev.EventID] = struct{}{}
		}
	}
	return out
}

func sameReading(a, b models.AssetState) bool {
	return a.Health == b.Health &&
		a.TemperatureC == b.TemperatureC &&
		a.VibrationMMS == b.VibrationMMS &&
		a.LoadFactor == b.LoadFactor &&
		a.Status == b.Status &&
		a.UpdatedAt.Equal(b.UpdatedAt)
}
