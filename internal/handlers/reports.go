package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"poultry_monitor/internal/report"
	"poultry_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"

	errRenderReport   = "failed to render report"
	errReportNotFound = "report not found"
	errReportNotReady = "report is not ready for download"
)

// @Summary      View section report
// @Description  Unknown sections fall back to the general report.
// @Tags         reports
// @Produce      html
// @Param        section  path  string  true  "Report section"  Enums(climate,supply,motion,devices,alerts,general)
// @Success      200  {string}  string
// @Failure      500  {object}  map[string]string
// @Router       /reports/{section} [get]
func (h *Handler) viewReport(c *gin.Context) {
	h.renderReport(c, report.ModeView)
}

// @Summary      Export section report
// @Description  Returns the print document; the browser opens its print dialog on load.
// @Tags         reports
// @Produce      html
// @Param        section  path  string  true  "Report section"
// @Success      200  {string}  string
// @Failure      500  {object}  map[string]string
// @Router       /reports/{section}/export [get]
func (h *Handler) exportReport(c *gin.Context) {
	h.renderReport(c, report.ModePrint)
}

func (h *Handler) renderReport(c *gin.Context, mode report.Mode) {
	section := c.Param("section")
	doc, err := h.services.RenderReport(c.Request.Context(), section, string(mode))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderReport, "report_render_failed", err,
			"section", section, "mode", mode)
		return
	}
	c.Data(http.StatusOK, contentTypeHTML, []byte(doc))
}

// @Summary      List report sections
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "sections"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/reports [get]
// @Security     BearerAuth
func (h *Handler) listReportSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": report.Sections()})
}

// @Summary      Report content
// @Tags         reports
// @Produce      json
// @Param        section  path  string  true  "Report section"
// @Success      200  {object}  models.Report
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/reports/{section} [get]
// @Security     BearerAuth
func (h *Handler) getReportContent(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.ReportContent(c.Param("section")))
}

// @Summary      List generated reports
// @Tags         reports
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, reports"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/catalog [get]
// @Security     BearerAuth
func (h *Handler) listCatalog(c *gin.Context) {
	entries := h.services.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"reports": entries,
	})
}

// @Summary      Download generated report
// @Description  Only reports in the ready state can be downloaded.
// @Tags         reports
// @Produce      html
// @Param        id   path      string  true  "Catalog entry id"
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/catalog/{id}/download [get]
// @Security     BearerAuth
func (h *Handler) downloadCatalogReport(c *gin.Context) {
	id := c.Param("id")
	entry, doc, err := h.services.CatalogDocument(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrUnknownReport):
		c.JSON(http.StatusNotFound, gin.H{"error": errReportNotFound})
		return
	case errors.Is(err, service.ErrReportNotReady):
		c.JSON(http.StatusConflict, gin.H{"error": errReportNotReady, "status": entry.Status})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errRenderReport, "catalog_render_failed", err, "id", id)
		return
	}
	name := report.Filename(h.services.ReportContent(entry.Section))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, contentTypeHTML, []byte(doc))
}
