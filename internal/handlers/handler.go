package handlers

import (
	"net/http"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/metrics"
	"poultry_monitor/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options tunes the HTTP layer. Zero values disable the feature.
type Options struct {
	RateLimit float64 // requests per second per client on /api/v1
	RateBurst int
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	limiter  *RateLimiter
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	h := &Handler{services: services, log: log}
	if opts.RateLimit > 0 {
		h.limiter = NewRateLimiter(opts.RateLimit, opts.RateBurst)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), metrics.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Dashboard and health
	router.GET("/", h.dashboard)
	router.GET("/health", h.health)

	// Printable report pages
	h.registerReportPages(router)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live farm stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerReportPages(r *gin.Engine) {
	reports := r.Group("/reports")
	{
		reports.GET("/:section", h.viewReport)
		reports.GET("/:section/export", h.exportReport)
	}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	middleware := []gin.HandlerFunc{h.userIdMiddleware}
	if h.limiter != nil {
		middleware = append(middleware, h.limiter.Middleware())
	}
	api := r.Group("/api/v1", middleware...)
	{
		h.registerFarmRoutes(api)
		h.registerDeviceRoutes(api)
		h.registerAlertRoutes(api)
		h.registerReportRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerFarmRoutes(api *gin.RouterGroup) {
	api.GET("/telemetry", h.getTelemetry)
	api.GET("/telemetry/history", h.getHistory)
	api.GET("/climate", h.getClimate)
	api.GET("/supply", h.getSupply)
	api.GET("/motion", h.getMotion)
}

func (h *Handler) registerDeviceRoutes(api *gin.RouterGroup) {
	devices := api.Group("/devices")
	{
		devices.GET("", h.listDevices)
		devices.GET("/counts", h.deviceCounts)
		devices.GET("/:id", h.getDevice)
	}
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/counts", h.alertCounts)
		alerts.POST("/read-all", h.markAllAlertsRead)
		alerts.POST("/:id/read", h.markAlertRead)
		alerts.DELETE("/:id", h.dismissAlert)
	}
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	api.GET("/reports", h.listReportSections)
	api.GET("/reports/:section", h.getReportContent)

	catalog := api.Group("/catalog")
	{
		catalog.GET("", h.listCatalog)
		catalog.GET("/:id/download", h.downloadCatalogReport)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
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

// @Summary      Dashboard page
// @Tags         system
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardHTML))
}
