package handlers

import (
	"errors"
	"net/http"

	"ocs_dashboard/internal/service"
	"ocs_dashboard/internal/twin"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errListAssets      = "failed to load assets"
	errAssetNotFound   = "asset not found"
	errControlFailed   = "failed to apply action"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusForError maps domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, twin.ErrAssetNotFound):
		return http.StatusNotFound
	case errors.Is(err, twin.ErrInvalidLoadFactor),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInvalidLevel),
		errors.Is(err, service.ErrInvalidLimit):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondControlError answers a failed control action. Client errors carry the
// error text; anything else is logged and hidden.
func (h *Handler) respondControlError(c *gin.Context, logKey, key string, err error) {
	code := statusForError(err)
	switch code {
	case http.StatusNotFound:
		c.JSON(code, gin.H{"error": errAssetNotFound})
	case http.StatusBadRequest:
		c.JSON(code, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, code, errControlFailed, logKey, err, "asset", key)
	}
}

// SetLoadRequest is the payload for changing an asset's load factor.
type SetLoadRequest struct {
	// Load multiplier applied to degradation, vibration and temperature. Must be >= 0.
	LoadFactor *float64 `json:"load_factor" binding:"required" example:"1.2"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, assets"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets [get]
func (h *Handler) listAssets(c *gin.Context) {
	assets, err := h.services.Assets.ListAssets(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListAssets, "assets_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(assets),
		"assets": assets,
	})
}

// @Summary      Get asset
// @Tags         assets
// @Produce      json
// @Param        key  path  string  true  "Asset key"  example(P-101)
// @Success      200  {object}  models.AssetState
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets/{key} [get]
func (h *Handler) getAsset(c *gin.Context) {
	key := c.Param("key")
	st, err := h.services.Assets.GetAsset(c.Request.Context(), key)
	if err != nil {
		h.respondControlError(c, "asset_get_failed", key, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Set load factor
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        key   path  string          true  "Asset key"
// @Param        body  body  SetLoadRequest  true  "Load payload"
// @Success      200   {object}  models.AssetState
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/assets/{key}/load [post]
func (h *Handler) setLoadFactor(c *gin.Context) {
	var req SetLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	key := c.Param("key")
	st, err := h.services.Control.SetLoadFactor(c.Request.Context(), key, *req.LoadFactor)
	if err != nil {
		h.respondControlError(c, "asset_set_load_failed", key, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Perform maintenance
// @Description  Restores health to 92-99 and records a success event
// @Tags         assets
// @Produce      json
// @Param        key  path  string  true  "Asset key"
// @Success      200  {object}  models.AssetState
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets/{key}/maintenance [post]
func (h *Handler) performMaintenance(c *gin.Context) {
	key := c.Param("key")
	st, err := h.services.Control.PerformMaintenance(c.Request.Context(), key)
	if err != nil {
		h.respondControlError(c, "asset_maintenance_failed", key, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Trigger catastrophic failure
// @Description  Forces health 5, vibration 15 mm/s, temperature 150 C and records an error event
// @Tags         assets
// @Produce      json
// @Param        key  path  string  true  "Asset key"
// @Success      200  {object}  models.AssetState
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assets/{key}/failure [post]
func (h *Handler) triggerFailure(c *gin.Context) {
	key := c.Param("key")
	st, err := h.services.Control.TriggerFailure(c.Request.Context(), key)
	if err != nil {
		h.respondControlError(c, "asset_failure_failed", key, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
