package service

import (
	"time"

	"poultry_monitor/internal/models"
	"poultry_monitor/internal/simulation"
)

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "DEVICE_STATUS", "ALERT_RAISED", "ALERT_READ", "ALERT_DISMISSED", "REPORT_EXPORTED"
}

// Alert list filters.
const (
	FilterAll      = "all"
	FilterUnread   = "unread"
	FilterCritical = "critical"
	FilterWarning  = "warning"
	FilterInfo     = "info"
)

// LevelView is a reading with its fill percentage and band.
type LevelView struct {
	models.Reading
	Percent float64 `json:"percent"`
	Band    string  `json:"band"`
}

type ClimateSummary struct {
	TemperatureC     float64          `json:"temperature_c"`
	HumidityPct      float64          `json:"humidity_pct"`
	AirQualityPct    float64          `json:"air_quality_pct"`
	TemperatureTrend simulation.Trend `json:"temperature_trend"`
	HumidityTrend    simulation.Trend `json:"humidity_trend"`
	AirQualityTrend  simulation.Trend `json:"air_quality_trend"`
	LightSensors     []LevelView      `json:"light_sensors"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type SupplySummary struct {
	WaterTanks    []LevelView `json:"water_tanks"`
	FeedSilos     []LevelView `json:"feed_silos"`
	WaterAvgPct   float64     `json:"water_avg_pct"`
	FeedAvgPct    float64     `json:"feed_avg_pct"`
	WaterTotal    float64     `json:"water_total"`
	WaterCapacity float64     `json:"water_capacity"`
	FeedTotal     float64     `json:"feed_total"`
	FeedCapacity  float64     `json:"feed_capacity"`
	LowLevels     int         `json:"low_levels"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type MotionSummary struct {
	ActivityPct           float64            `json:"activity_pct"`
	ActivityBand          string             `json:"activity_band"`
	ActiveZones           int                `json:"active_zones"`
	NoiseDB               float64            `json:"noise_db"`
	LastDetection         time.Time          `json:"last_detection"`
	SecondsSinceDetection int64              `json:"seconds_since_detection"`
	Zones                 []models.Zone      `json:"zones"`
	ActivityWindow        []models.TimePoint `json:"activity_window"`
	NoiseWindow           []models.TimePoint `json:"noise_window"`
	ActivityHistory       []models.TimePoint `json:"activity_history"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// History holds the chart series seeded at startup.
type History struct {
	TemperatureHistory []models.TimePoint `json:"temperature_history"`
	AirQualityHistory  []models.TimePoint `json:"air_quality_history"`
	ActivityHistory    []models.TimePoint `json:"activity_history"`
}

type DeviceCounts struct {
	Online    int     `json:"online"`
	Offline   int     `json:"offline"`
	Warning   int     `json:"warning"`
	Total     int     `json:"total"`
	UptimePct float64 `json:"uptime_pct"`
}

type AlertCounts struct {
	Total    int `json:"total"`
	Unread   int `json:"unread"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Info     int `json:"info"`
}
