package simulation

import (
	"time"

	"poultry_monitor/internal/models"

	"github.com/google/uuid"
)

const (
	AlertChance         = 0.3 // per alert tick
	CriticalAlertChance = 0.2
	MaxAlerts           = 20
)

// SeedAlerts returns the starting alert list, newest first.
func SeedAlerts(now time.Time) []models.Alert {
	now = now.UTC()
	return []models.Alert{
		{
			ID:          uuid.NewString(),
			Severity:    models.SeverityCritical,
			Title:       "Critical water level",
			Description: "The main tank is below 20% of its capacity",
			Timestamp:   now.Add(-5 * time.Minute),
			Source:      "Water Sensor - Tank 1",
		},
		{
			ID:          uuid.NewString(),
			Severity:    models.SeverityWarning,
			Title:       "High temperature",
			Description: "Temperature in Shed 2 is above 28°C",
			Timestamp:   now.Add(-15 * time.Minute),
			Source:      "Temperature Sensor - Shed 2",
		},
		{
			ID:          uuid.NewString(),
			Severity:    models.SeverityWarning,
			Title:       "Light sensor disconnected",
			Description: "Light sensor 2 has not responded for 10 minutes",
			Timestamp:   now.Add(-30 * time.Minute),
			Read:        true,
			Source:      "Light Sensor - Shed 3",
		},
		{
			ID:          uuid.NewString(),
			Severity:    models.SeverityInfo,
			Title:       "Scheduled maintenance",
			Description: "Reminder: air filter maintenance is scheduled for tomorrow",
			Timestamp:   now.Add(-time.Hour),
			Read:        true,
			Source:      "Maintenance System",
		},
		{
			ID:          uuid.NewString(),
			Severity:    models.SeverityCritical,
			Title:       "Connectivity lost",
			Description: "Several sensors lost their connection. Check the network.",
			Timestamp:   now.Add(-2 * time.Hour),
			Source:      "Network Monitor",
		},
	}
}

// NextAlert rolls the alert tick. ok is false when no alert is raised.
func (e *Engine) NextAlert(now time.Time) (a models.Alert, ok bool) {
	if !e.Chance(AlertChance) {
		return models.Alert{}, false
	}
	return models.Alert{
		ID:          uuid.NewString(),
		Severity:    e.pickSeverity(),
		Title:       "Anomaly detected",
		Description: "An unusual variation in the system parameters was detected",
		Timestamp:   now.UTC(),
		Source:      "Monitoring System",
	}, true
}

func (e *Engine) pickSeverity() models.Severity {
	if e.Chance(CriticalAlertChance) {
		return models.SeverityCritical
	}
	if e.Chance(0.5) {
		return models.SeverityWarning
	}
	return models.SeverityInfo
}
