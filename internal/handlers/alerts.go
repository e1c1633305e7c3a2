package handlers

import (
	"errors"
	"net/http"

	"poultry_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListAlerts    = "failed to load alerts"
	errUpdateAlert   = "failed to update alert"
	errAlertNotFound = "alert not found"
)

// @Summary      List alerts
// @Description  Newest first. filter is one of all, unread, critical, warning, info.
// @Tags         alerts
// @Produce      json
// @Param        filter  query  string  false  "Alert filter"  Enums(all,unread,critical,warning,info)
// @Success      200  {object}  map[string]interface{}  "count, alerts"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts [get]
// @Security     BearerAuth
func (h *Handler) listAlerts(c *gin.Context) {
	filter := c.DefaultQuery("filter", service.FilterAll)
	alerts, err := h.services.ListAlerts(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errListAlerts, "alerts_list_failed", err, "filter", filter)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(alerts),
		"alerts": alerts,
	})
}

// @Summary      Alert counts
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  service.AlertCounts
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/counts [get]
// @Security     BearerAuth
func (h *Handler) alertCounts(c *gin.Context) {
	counts, err := h.services.AlertCounts(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListAlerts, "alerts_count_failed", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary      Mark alert read
// @Description  Idempotent.
// @Tags         alerts
// @Produce      json
// @Param        id   path      string  true  "Alert id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/{id}/read [post]
// @Security     BearerAuth
func (h *Handler) markAlertRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errAlertNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateAlert, "alert_mark_read_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read", "id": id})
}

// @Summary      Mark every alert read
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, changed"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/read-all [post]
// @Security     BearerAuth
func (h *Handler) markAllAlertsRead(c *gin.Context) {
	changed, err := h.services.MarkAllRead(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateAlert, "alert_mark_all_read_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read", "changed": changed})
}

// @Summary      Dismiss alert
// @Description  Removing an unknown id is a no-op and still returns 200.
// @Tags         alerts
// @Produce      json
// @Param        id   path      string  true  "Alert id"
// @Success      200  {object}  map[string]interface{}  "status, removed"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) dismissAlert(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.services.Dismiss(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdateAlert, "alert_dismiss_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "dismissed", "removed": removed})
}
