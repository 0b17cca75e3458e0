package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"ocs_dashboard/internal/twin"
)

func TestRunHeadless_FailureTimeline(t *testing.T) {
	var buf bytes.Buffer
	err := runHeadless(&buf, twin.DefaultSpecs(), headlessOptions{
		Ticks:  3,
		Asset:  "P-101",
		Load:   1,
		Seed:   42,
		FailAt: 2,
		Step:   3 * time.Second,
		Start:  time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"TICK",
		"09:00:03",
		"09:00:09",
		"Catastrophic failure SIMULATED on Centrifugal Pump P-101",
		"Imminent failure predicted for Centrifugal Pump P-101",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	// only the selected asset is reported
	if strings.Contains(out, "C-205") || strings.Count(out, "P-101  ") < 3 {
		t.Fatalf("unexpected rows:\n%s", out)
	}
}

func TestRunHeadless_FailureAndMaintenanceSameTick(t *testing.T) {
	var buf bytes.Buffer
	err := runHeadless(&buf, twin.DefaultSpecs(), headlessOptions{
		Ticks:      2,
		Asset:      "P-101",
		Load:       1,
		Seed:       7,
		FailAt:     2,
		MaintainAt: 2,
		Step:       3 * time.Second,
		Start:      time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	out := buf.String()

	failed := strings.Index(out, "Catastrophic failure SIMULATED on Centrifugal Pump P-101")
	serviced := strings.Index(out, "Maintenance successfully performed on Centrifugal Pump P-101")
	if failed < 0 || serviced < 0 || serviced < failed {
		t.Fatalf("want failure then maintenance in timeline:\n%s", out)
	}
	if strings.Contains(out, "Imminent failure predicted") {
		t.Fatalf("serviced asset should not report imminent failure:\n%s", out)
	}
}

func TestRunHeadless_Errors(t *testing.T) {
	specs := twin.DefaultSpecs()
	cases := []struct {
		name string
		opts headlessOptions
		want error
	}{
		{"unknown asset", headlessOptions{Ticks: 1, Asset: "X-1", Load: 1}, twin.ErrAssetNotFound},
		{"negative load", headlessOptions{Ticks: 1, Load: -1}, twin.ErrInvalidLoadFactor},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := runHeadless(&bytes.Buffer{}, specs, c.opts); !errors.Is(err, c.want) {
				t.Fatalf("want %v, got %v", c.want, err)
			}
		})
	}

	if err := runHeadless(&bytes.Buffer{}, specs, headlessOptions{Ticks: 0}); err == nil {
		t.Fatalf("expected error for zero ticks")
	}
}
