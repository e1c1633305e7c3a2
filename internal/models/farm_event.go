package models

import "time"

// Journal event types.
const (
	EventDeviceStatus   = "DEVICE_STATUS"
	EventAlertRaised    = "ALERT_RAISED"
	EventAlertRead      = "ALERT_READ"
	EventAlertDismissed = "ALERT_DISMISSED"
	EventReportExported = "REPORT_EXPORTED"
)

// FarmEvent is a single journal entry.
type FarmEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // DEVICE_STATUS | ALERT_RAISED | ALERT_READ | ALERT_DISMISSED | REPORT_EXPORTED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
