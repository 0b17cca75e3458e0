package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Energy consumption
// @Description  Trailing 24h at 15 minute resolution, with total, peak and average
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  service.EnergyReport
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/telemetry/energy [get]
func (h *Handler) getEnergy(c *gin.Context) {
	rep, err := h.services.Telemetry.Energy(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load energy data", "energy_failed", err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// @Summary      Predictive maintenance alerts
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, alerts"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/telemetry/maintenance-alerts [get]
func (h *Handler) getMaintenanceAlerts(c *gin.Context) {
	alerts, err := h.services.Telemetry.MaintenanceAlerts(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load alerts", "maintenance_alerts_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(alerts), "alerts": alerts})
}

// @Summary      Security events
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, events"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/telemetry/security-events [get]
func (h *Handler) getSecurityEvents(c *gin.Context) {
	events, err := h.services.Telemetry.SecurityEvents(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load security events", "security_events_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(events), "events": events})
}
