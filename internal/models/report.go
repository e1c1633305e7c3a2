package models

import "time"

// MetricRow is one label/value/status line of a section report.
type MetricRow struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

// Report is the content of a section report before rendering.
type Report struct {
	Section      string      `json:"section"`
	Title        string      `json:"title"`
	Metrics      []MetricRow `json:"metrics"`
	Narrative    []string    `json:"narrative"`
	Observations []string    `json:"observations"`
	GeneratedAt  time.Time   `json:"generated_at"`
}

// Catalog entry kinds and states.
const (
	ReportDaily   = "daily"
	ReportWeekly  = "weekly"
	ReportMonthly = "monthly"
	ReportCustom  = "custom"

	ReportReady      = "ready"
	ReportGenerating = "generating"
	ReportError      = "error"
)

// ReportEntry is a pre-generated report listed in the reports catalog.
type ReportEntry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Section       string    `json:"section"`
	Type          string    `json:"type"`
	Size          string    `json:"size"`
	LastGenerated time.Time `json:"last_generated"`
	Status        string    `json:"status"`
}
