package handlers

import (
	"errors"
	"net/http"

	"poultry_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errNotSeeded      = "farm state not initialized yet"
	errGetTelemetry   = "failed to load telemetry"
	errDeviceNotFound = "device not found"
)

// respondState maps the errors shared by every farm-state read.
func (h *Handler) respondState(c *gin.Context, v any, err error, logKey string) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, v)
	case errors.Is(err, service.ErrNoSnapshot):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": errNotSeeded})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errGetTelemetry, logKey, err)
	}
}

// @Summary      Current farm snapshot
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.FarmState
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/telemetry [get]
// @Security     BearerAuth
func (h *Handler) getTelemetry(c *gin.Context) {
	st, err := h.services.Snapshot(c.Request.Context())
	h.respondState(c, st, err, "telemetry_get_failed")
}

// @Summary      Chart history
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  service.History
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/telemetry/history [get]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	hist, err := h.services.History(c.Request.Context())
	h.respondState(c, hist, err, "history_get_failed")
}

// @Summary      Climate readings with trends
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  service.ClimateSummary
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/climate [get]
// @Security     BearerAuth
func (h *Handler) getClimate(c *gin.Context) {
	sum, err := h.services.ClimateSummary(c.Request.Context())
	h.respondState(c, sum, err, "climate_get_failed")
}

// @Summary      Water and feed levels
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  service.SupplySummary
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/supply [get]
// @Security     BearerAuth
func (h *Handler) getSupply(c *gin.Context) {
	sum, err := h.services.SupplySummary(c.Request.Context())
	h.respondState(c, sum, err, "supply_get_failed")
}

// @Summary      Animal activity and noise
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  service.MotionSummary
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/motion [get]
// @Security     BearerAuth
func (h *Handler) getMotion(c *gin.Context) {
	sum, err := h.services.MotionSummary(c.Request.Context())
	h.respondState(c, sum, err, "motion_get_failed")
}

// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.services.ListDevices(c.Request.Context())
	h.respondState(c, gin.H{"count": len(devices), "devices": devices}, err, "devices_list_failed")
}

// @Summary      Device counts by status
// @Tags         devices
// @Produce      json
// @Success      200  {object}  service.DeviceCounts
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/devices/counts [get]
// @Security     BearerAuth
func (h *Handler) deviceCounts(c *gin.Context) {
	counts, err := h.services.DeviceCounts(c.Request.Context())
	h.respondState(c, counts, err, "devices_count_failed")
}

// @Summary      Get device
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  models.Device
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/devices/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDevice(c *gin.Context) {
	id := c.Param("id")
	d, err := h.services.GetDevice(c.Request.Context(), id)
	if errors.Is(err, service.ErrDeviceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errDeviceNotFound})
		return
	}
	h.respondState(c, d, err, "device_get_failed")
}
