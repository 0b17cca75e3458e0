package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/service"
)

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestOverviewPage(t *testing.T) {
	r := newTestRouter(&service.Service{
		Assets:    &mockAssets{assets: sampleAssets()},
		Telemetry: sampleTelemetry(),
	})

	w := doRequest(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"<polyline", "AHU-ROOF-01", "Door Forced Open", "Gas Turbine T-310", "650 kWh"} {
		if !strings.Contains(body, want) {
			t.Fatalf("overview missing %q", want)
		}
	}
}

func TestOverviewPage_TelemetryError(t *testing.T) {
	r := newTestRouter(&service.Service{
		Assets:    &mockAssets{assets: sampleAssets()},
		Telemetry: &mockTelemetry{err: errors.New("boom")},
	})
	if w := doRequest(t, r, http.MethodGet, "/", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestTwinPage(t *testing.T) {
	logs := &mockEventLog{resp: []models.AssetEvent{
		{OccurredAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), Level: models.LevelError, AssetKey: "T-310", Message: "Critical state reached on Gas Turbine T-310"},
	}}
	r := newTestRouter(&service.Service{
		Assets:   &mockAssets{assets: sampleAssets()},
		EventLog: logs,
	})

	t.Run("defaults to first asset", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/twin", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "<title>Centrifugal Pump P-101 - Digital Twin</title>") {
			t.Fatalf("wrong asset selected")
		}
		if !strings.Contains(body, `http-equiv="refresh"`) {
			t.Fatalf("missing auto refresh")
		}
		if logs.lastFilter.Limit != twinEventLimit {
			t.Fatalf("event limit = %d", logs.lastFilter.Limit)
		}
	})

	t.Run("selected asset with bands and log", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/twin?asset=T-310", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d", w.Code)
		}
		body := w.Body.String()
		for _, want := range []string{
			"Maintenance Required",
			"Impeller wear",
			"Critical state reached on Gas Turbine T-310",
			bandColor(models.BandWarning),
			"-0.10",
			`action="/twin/T-310/failure"`,
		} {
			if !strings.Contains(body, want) {
				t.Fatalf("twin page missing %q", want)
			}
		}
		if strings.Contains(body, `class="notice"`) {
			t.Fatalf("notice shown without a failure")
		}
	})

	t.Run("failure notice", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/twin?asset=T-310&notice=failure", nil)
		if !strings.Contains(w.Body.String(), "Catastrophic failure simulated on Gas Turbine T-310") {
			t.Fatalf("missing notice banner")
		}
	})

	t.Run("overload shown on slider", func(t *testing.T) {
		assets := sampleAssets()
		assets[1].LoadFactor = 2.5
		r := newTestRouter(&service.Service{
			Assets:   &mockAssets{assets: assets},
			EventLog: &mockEventLog{},
		})
		body := doRequest(t, r, http.MethodGet, "/twin?asset=T-310", nil).Body.String()
		for _, want := range []string{`max="3"`, `value="2.5"`, "<output>2.5</output>"} {
			if !strings.Contains(body, want) {
				t.Fatalf("load control missing %q", want)
			}
		}
	})

	t.Run("unknown asset", func(t *testing.T) {
		if w := doRequest(t, r, http.MethodGet, "/twin?asset=NOPE", nil); w.Code != http.StatusNotFound {
			t.Fatalf("status=%d", w.Code)
		}
	})
}

func TestTwinForms(t *testing.T) {
	ctl := &mockControl{}
	r := newTestRouter(&service.Service{Control: ctl})

	w := postForm(t, r, "/twin/P-101/load", url.Values{"load_factor": {"1.3"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/twin?asset=P-101" {
		t.Fatalf("load: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}
	if ctl.lastFactor != 1.3 {
		t.Fatalf("factor=%v", ctl.lastFactor)
	}

	w = postForm(t, r, "/twin/P-101/load", url.Values{"load_factor": {"abc"}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad load: status=%d", w.Code)
	}

	w = postForm(t, r, "/twin/P-101/maintenance", nil)
	if w.Code != http.StatusSeeOther || ctl.maintCalls != 1 {
		t.Fatalf("maintenance: status=%d calls=%d", w.Code, ctl.maintCalls)
	}

	w = postForm(t, r, "/twin/P-101/failure", nil)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/twin?asset=P-101&notice=failure" {
		t.Fatalf("failure: status=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	ctl.err = errNotFound("X")
	if w := postForm(t, r, "/twin/X/maintenance", nil); w.Code != http.StatusNotFound {
		t.Fatalf("unknown asset: status=%d", w.Code)
	}
}

func TestBuildEnergyChart(t *testing.T) {
	if ch := buildEnergyChart(nil); ch.Points != "" {
		t.Fatalf("empty series should have no points")
	}
	series := sampleTelemetry().energy.Series
	ch := buildEnergyChart(series)
	pts := strings.Fields(ch.Points)
	if len(pts) != len(series) {
		t.Fatalf("points=%d", len(pts))
	}
	// the peak sits on the top padding line, the first point on the left padding
	if pts[1] != "400.0,30.0" || !strings.HasPrefix(pts[0], "30.0,") {
		t.Fatalf("unexpected geometry %v", pts)
	}
	if ch.MaxKWh != 300 {
		t.Fatalf("max=%v", ch.MaxKWh)
	}
}
