// Package metrics exposes farm telemetry and HTTP traffic as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"poultry_monitor/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "poultry"

var (
	// Telemetry
	TemperatureC = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "temperature_celsius",
		Help:      "Current shed temperature",
	})

	HumidityPct = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "humidity_percent",
		Help:      "Current relative humidity",
	})

	AirQualityPct = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "air_quality_percent",
		Help:      "Current air quality index",
	})

	ActivityPct = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_percent",
		Help:      "Current animal activity",
	})

	NoiseDB = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "noise_decibels",
		Help:      "Current noise level",
	})

	Levels = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "level",
			Help:      "Current reading of a light sensor, water tank or feed silo",
		},
		[]string{"kind", "id"},
	)

	SimulationTicks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "simulation_ticks_total",
		Help:      "Telemetry ticks applied",
	})

	// Devices
	Devices = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "devices",
			Help:      "Number of devices per status",
		},
		[]string{"status"},
	)

	DeviceStatusChanges = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "device_status_changes_total",
		Help:      "Device status reassignments",
	})

	// Alerts
	AlertsRaised = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_raised_total",
			Help:      "Synthetic alerts raised",
		},
		[]string{"severity"},
	)

	AlertsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alerts_stored",
		Help:      "Alerts currently in the store",
	})

	AlertsUnread = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "alerts_unread",
		Help:      "Unread alerts currently in the store",
	})

	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordFarmState mirrors a snapshot into the telemetry and device gauges.
func RecordFarmState(st models.FarmState) {
	TemperatureC.Set(st.Climate.TemperatureC)
	HumidityPct.Set(st.Climate.HumidityPct)
	AirQualityPct.Set(st.Climate.AirQualityPct)
	ActivityPct.Set(st.Motion.ActivityPct)
	NoiseDB.Set(st.Motion.NoiseDB)

	for _, r := range st.Climate.LightSensors {
		Levels.WithLabelValues("light", r.ID).Set(r.Value)
	}
	for _, r := range st.Supply.WaterTanks {
		Levels.WithLabelValues("water", r.ID).Set(r.Value)
	}
	for _, r := range st.Supply.FeedSilos {
		Levels.WithLabelValues("feed", r.ID).Set(r.Value)
	}

	counts := make(map[models.DeviceStatus]int, len(models.DeviceStatuses))
	for _, d := range st.Devices {
		counts[d.Status]++
	}
	for _, s := range models.DeviceStatuses {
		Devices.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
}

// RecordTick counts one applied tick and its device changes.
func RecordTick(deviceChanges int) {
	SimulationTicks.Inc()
	DeviceStatusChanges.Add(float64(deviceChanges))
}

// RecordAlertRaised counts a new alert by severity.
func RecordAlertRaised(sev models.Severity) {
	AlertsRaised.WithLabelValues(string(sev)).Inc()
}

// RecordAlertStore sets the stored and unread alert gauges.
func RecordAlertStore(total, unread int) {
	AlertsStored.Set(float64(total))
	AlertsUnread.Set(float64(unread))
}

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Middleware records every request under its route template, so ids in the
// path do not explode label cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
