package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ocs_dashboard/internal/models"
	"ocs_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	pageRefreshSeconds = 3
	twinEventLimit     = 25

	noticeFailure = "failure"

	chartWidth   = 800.0
	chartHeight  = 240.0
	chartPadding = 30.0
)

var templateFuncs = template.FuncMap{
	"bandColor":  bandColor,
	"levelClass": levelClass,
	"signed":     func(v float64) string { return fmt.Sprintf("%+.2f", v) },
	"clock":      func(t time.Time) string { return t.UTC().Format("15:04:05") },
	"date":       func(t time.Time) string { return t.UTC().Format("2006-01-02") },
	"percent":    func(p float64) string { return fmt.Sprintf("%.0f%%", p*100) },
}

func bandColor(b models.Band) string {
	switch b {
	case models.BandCritical:
		return "#e74c3c"
	case models.BandWarning:
		return "#f1c40f"
	default:
		return "#2ecc71"
	}
}

func levelClass(l models.Level) string {
	switch l {
	case models.LevelError:
		return "ev-error"
	case models.LevelWarning:
		return "ev-warning"
	case models.LevelSuccess:
		return "ev-success"
	default:
		return "ev-info"
	}
}

// energyChart is the pre-computed SVG geometry of the energy curve.
type energyChart struct {
	Width, Height float64
	Points        string
	StartLabel    string
	EndLabel      string
	MaxKWh        float64
}

func buildEnergyChart(series []models.EnergyMetric) energyChart {
	ch := energyChart{Width: chartWidth, Height: chartHeight}
	if len(series) == 0 {
		return ch
	}
	peak := 0.0
	for _, p := range series {
		if p.ValueKWh > peak {
			peak = p.ValueKWh
		}
	}
	if peak <= 0 {
		peak = 1
	}
	ch.MaxKWh = peak

	step := 0.0
	if len(series) > 1 {
		step = (chartWidth - 2*chartPadding) / float64(len(series)-1)
	}
	var b strings.Builder
	for i, p := range series {
		x := chartPadding + float64(i)*step
		y := chartHeight - chartPadding - p.ValueKWh/peak*(chartHeight-2*chartPadding)
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	ch.Points = b.String()
	ch.StartLabel = series[0].Timestamp.UTC().Format("Jan 2 15:04")
	ch.EndLabel = series[len(series)-1].Timestamp.UTC().Format("Jan 2 15:04")
	return ch
}

type overviewView struct {
	Energy   service.EnergyReport
	Chart    energyChart
	Alerts   []models.MaintenanceAlert
	Security []models.SecurityEvent
	Assets   []models.AssetState
}

type twinView struct {
	Assets  []models.AssetState
	Asset   models.AssetState
	Events  []models.AssetEvent
	Notice  string
	Refresh int
}

func (h *Handler) renderError(c *gin.Context, code int, logKey string, err error) {
	if h.log != nil && code >= http.StatusInternalServerError {
		h.log.Errorw(logKey, "err", err)
	}
	c.String(code, http.StatusText(code))
}

// overviewPage renders the building operations summary.
func (h *Handler) overviewPage(c *gin.Context) {
	ctx := c.Request.Context()

	energy, err := h.services.Telemetry.Energy(ctx)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "overview_energy_failed", err)
		return
	}
	alerts, err := h.services.Telemetry.MaintenanceAlerts(ctx)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "overview_alerts_failed", err)
		return
	}
	security, err := h.services.Telemetry.SecurityEvents(ctx)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "overview_security_failed", err)
		return
	}
	assets, err := h.services.Assets.ListAssets(ctx)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "overview_assets_failed", err)
		return
	}

	c.HTML(http.StatusOK, "overview.html", overviewView{
		Energy:   energy,
		Chart:    buildEnergyChart(energy.Series),
		Alerts:   alerts,
		Security: security,
		Assets:   assets,
	})
}

// twinPage renders the digital twin of the selected asset, the first one by default.
func (h *Handler) twinPage(c *gin.Context) {
	ctx := c.Request.Context()

	assets, err := h.services.Assets.ListAssets(ctx)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "twin_assets_failed", err)
		return
	}
	if len(assets) == 0 {
		h.renderError(c, http.StatusNotFound, "twin_no_assets", nil)
		return
	}

	selected := assets[0]
	if key := c.Query("asset"); key != "" {
		st, err := h.services.Assets.GetAsset(ctx, key)
		if err != nil {
			h.renderError(c, statusForError(err), "twin_asset_failed", err)
			return
		}
		selected = st
	}

	events, err := h.services.EventLog.List(ctx, service.LogFilter{Limit: twinEventLimit})
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "twin_events_failed", err)
		return
	}

	view := twinView{
		Assets:  assets,
		Asset:   selected,
		Events:  events,
		Refresh: pageRefreshSeconds,
	}
	if c.Query("notice") == noticeFailure {
		view.Notice = "Catastrophic failure simulated on " + selected.Name
	}
	c.HTML(http.StatusOK, "twin.html", view)
}

func twinURL(key string, notice string) string {
	q := url.Values{"asset": {key}}
	if notice != "" {
		q.Set("notice", notice)
	}
	return "/twin?" + q.Encode()
}

func (h *Handler) submitLoad(c *gin.Context) {
	key := c.Param("key")
	factor, err := strconv.ParseFloat(c.PostForm("load_factor"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid load_factor")
		return
	}
	if _, err := h.services.Control.SetLoadFactor(c.Request.Context(), key, factor); err != nil {
		h.renderError(c, statusForError(err), "twin_set_load_failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, twinURL(key, ""))
}

func (h *Handler) submitMaintenance(c *gin.Context) {
	key := c.Param("key")
	if _, err := h.services.Control.PerformMaintenance(c.Request.Context(), key); err != nil {
		h.renderError(c, statusForError(err), "twin_maintenance_failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, twinURL(key, ""))
}

func (h *Handler) submitFailure(c *gin.Context) {
	key := c.Param("key")
	if _, err := h.services.Control.TriggerFailure(c.Request.Context(), key); err != nil {
		h.renderError(c, statusForError(err), "twin_failure_failed", err)
		return
	}
	c.Redirect(http.StatusSeeOther, twinURL(key, noticeFailure))
}
