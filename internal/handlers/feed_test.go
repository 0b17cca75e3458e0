package handlers

import (
	"testing"
	"time"

	"ocs_dashboard/internal/models"
)

func TestFleetFeed_Changed(t *testing.T) {
	f := newFleetFeed("")
	assets := sampleAssets()

	if got := f.changed(assets); len(got) != 2 {
		t.Fatalf("first pass should send everything, got %d", len(got))
	}
	if got := f.changed(assets); len(got) != 0 {
		t.Fatalf("unchanged fleet should send nothing, got %+v", got)
	}

	assets[1].Health = 41.9
	got := f.changed(assets)
	if len(got) != 1 || got[0].Key != "T-310" {
		t.Fatalf("want only T-310, got %+v", got)
	}

	assets[0].LoadFactor = 2.5
	if got := f.changed(assets); len(got) != 1 || got[0].Key != "P-101" {
		t.Fatalf("load change not picked up: %+v", got)
	}
}

func TestFleetFeed_Watched(t *testing.T) {
	f := newFleetFeed("T-310")
	got := f.changed(sampleAssets())
	if len(got) != 1 || got[0].Key != "T-310" {
		t.Fatalf("filter leaked other assets: %+v", got)
	}
	if got := newFleetFeed("NOPE").watched(sampleAssets()); got != nil {
		t.Fatalf("unknown asset should watch nothing, got %+v", got)
	}
}

func TestFleetFeed_Fresh(t *testing.T) {
	t0 := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	t1 := t0.Add(time.Second)
	ev := func(id string, at time.Time) models.AssetEvent {
		return models.AssetEvent{EventID: id, OccurredAt: at, Level: models.LevelInfo, AssetKey: "P-101"}
	}

	f := newFleetFeed("")
	if got := f.fresh([]models.AssetEvent{ev("b", t0), ev("a", t0)}); len(got) != 2 {
		t.Fatalf("first batch should pass, got %+v", got)
	}

	// Same second as the cursor: only the unseen id gets through.
	got := f.fresh([]models.AssetEvent{ev("c", t0), ev("b", t0), ev("a", t0)})
	if len(got) != 1 || got[0].EventID != "c" {
		t.Fatalf("want only c, got %+v", got)
	}

	got = f.fresh([]models.AssetEvent{ev("d", t1), ev("c", t0), ev("b", t0)})
	if len(got) != 1 || got[0].EventID != "d" {
		t.Fatalf("want only d, got %+v", got)
	}
	if !f.cursor.Equal(t1) {
		t.Fatalf("cursor = %v", f.cursor)
	}

	if got := f.fresh([]models.AssetEvent{ev("old", t0.Add(-time.Minute))}); len(got) != 0 {
		t.Fatalf("entries before the cursor must be dropped, got %+v", got)
	}
}
