package service

import (
	"context"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/models"
	"poultry_monitor/internal/repository"
	"poultry_monitor/internal/simulation"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Monitoring exposes read-only views of the simulated farm.
type Monitoring interface {
	Snapshot(ctx context.Context) (models.FarmState, error)
	ClimateSummary(ctx context.Context) (ClimateSummary, error)
	SupplySummary(ctx context.Context) (SupplySummary, error)
	MotionSummary(ctx context.Context) (MotionSummary, error)
	History(ctx context.Context) (History, error)
}

// Devices exposes the simulated device registry.
type Devices interface {
	ListDevices(ctx context.Context) ([]models.Device, error)
	GetDevice(ctx context.Context, id string) (models.Device, error)
	DeviceCounts(ctx context.Context) (DeviceCounts, error)
}

// Alerts exposes the operator alert list.
type Alerts interface {
	SeedAlerts(ctx context.Context, now time.Time) error
	Raise(ctx context.Context, a models.Alert) error
	ListAlerts(ctx context.Context, filter string) ([]models.Alert, error)
	AlertCounts(ctx context.Context) (AlertCounts, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int, error)
	Dismiss(ctx context.Context, id string) (bool, error)
}

// Reports builds, renders and lists section reports.
type Reports interface {
	ReportContent(section string) models.Report
	RenderReport(ctx context.Context, section, mode string) (string, error)
	Catalog() []models.ReportEntry
	CatalogDocument(ctx context.Context, id string) (models.ReportEntry, string, error)
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.FarmEvent, error)
}

// Simulator owns the farm state and advances it on a ticker.
// Stop via context cancellation in main() for graceful shutdown.
type Simulator interface {
	Seed(ctx context.Context) error
	Run(ctx context.Context, tick time.Duration)
}

// AlertFeed raises synthetic alerts on its own ticker.
type AlertFeed interface {
	Run(ctx context.Context, tick time.Duration)
}

// Publisher forwards telemetry and alerts to an external channel such as MQTT.
type Publisher interface {
	PublishTelemetry(st models.FarmState) error
	PublishAlert(a models.Alert) error
}

type nopPublisher struct{}

func (nopPublisher) PublishTelemetry(models.FarmState) error { return nil }
func (nopPublisher) PublishAlert(models.Alert) error         { return nil }

// Config carries the knobs NewService needs beyond the repositories.
type Config struct {
	Seed       uint64 // 0 picks a time-based seed
	SigningKey string
	TokenTTL   time.Duration
	Publisher  Publisher // nil disables publishing
	Log        *logger.Logger
}

type Service struct {
	Authorization
	Monitoring
	Devices
	Alerts
	Reports
	EventLog
	Simulator Simulator
	AlertFeed AlertFeed
}

// NewService wires the repository layer into concrete services. The
// simulator and the alert feed each get their own random engine since
// they run on separate goroutines.
func NewService(repos *repository.Repository, cfg Config) *Service {
	pub := cfg.Publisher
	if pub == nil {
		pub = nopPublisher{}
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	alerts := NewAlertService(repos.AlertRepo, repos.EventRepo, pub, log.Named("alerts"))
	simEngine := simulation.NewEngine(cfg.Seed)
	feedEngine := simulation.NewEngine(cfg.Seed + 1)
	if cfg.Seed == 0 {
		feedEngine = simulation.NewEngine(0)
	}

	return &Service{
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL),
		Monitoring:    NewMonitoringService(repos.StateRepo),
		Devices:       NewDeviceService(repos.StateRepo),
		Alerts:        alerts,
		Reports:       NewReportService(repos.EventRepo, time.Now, log.Named("reports")),
		EventLog:      NewEventLogService(repos.EventRepo),
		Simulator:     NewSimulatorService(repos.StateRepo, repos.EventRepo, simEngine, pub, log.Named("simulator")),
		AlertFeed:     NewAlertFeedService(alerts, feedEngine, log.Named("alert_feed")),
	}
}
