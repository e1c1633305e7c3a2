// Package report builds the static section reports and renders them to HTML.
package report

import (
	"strings"
	"time"

	"poultry_monitor/internal/models"
)

// Report sections.
const (
	SectionClimate = "climate"
	SectionSupply  = "supply"
	SectionMotion  = "motion"
	SectionDevices = "devices"
	SectionAlerts  = "alerts"
	SectionGeneral = "general"
)

// aliases maps the dashboard's Spanish page keys onto section names.
var aliases = map[string]string{
	"climatizacion":  SectionClimate,
	"abastecimiento": SectionSupply,
	"movimiento":     SectionMotion,
	"dispositivos":   SectionDevices,
	"alertas":        SectionAlerts,
}

type sectionData struct {
	title   string
	metrics []models.MetricRow
}

// The figures are illustrative and not derived from live telemetry.
var sections = map[string]sectionData{
	SectionClimate: {
		title: "Climate Report",
		metrics: []models.MetricRow{
			{Label: "Average Temperature", Value: "24.5°C", Status: "Normal"},
			{Label: "Average Humidity", Value: "68%", Status: "Optimal"},
			{Label: "Air Quality", Value: "85%", Status: "Good"},
			{Label: "Active Sensors", Value: "12/12", Status: "Operational"},
			{Label: "Alerts Raised", Value: "3", Status: "Resolved"},
		},
	},
	SectionSupply: {
		title: "Supply Report",
		metrics: []models.MetricRow{
			{Label: "Total Water Level", Value: "875 L", Status: "Adequate"},
			{Label: "Daily Consumption", Value: "245 L", Status: "Normal"},
			{Label: "Feed Available", Value: "1,250 kg", Status: "Sufficient"},
			{Label: "Feed Consumption", Value: "85 kg/day", Status: "Normal"},
			{Label: "Drinkers Operational", Value: "18/20", Status: "Review"},
		},
	},
	SectionMotion: {
		title: "Animal Activity Report",
		metrics: []models.MetricRow{
			{Label: "Average Activity", Value: "52%", Status: "Normal"},
			{Label: "Noise Level", Value: "72 dB", Status: "Typical"},
			{Label: "Detections per Hour", Value: "847", Status: "Regular"},
			{Label: "Most Active Zone", Value: "Shed 1", Status: "Monitoring"},
			{Label: "Anomalous Patterns", Value: "0", Status: "Normal"},
		},
	},
	SectionDevices: {
		title: "Devices Report",
		metrics: []models.MetricRow{
			{Label: "Sensors Operational", Value: "45/48", Status: "Functional"},
			{Label: "Average Uptime", Value: "99.2%", Status: "Excellent"},
			{Label: "Faulty Devices", Value: "3", Status: "Attention"},
			{Label: "Pending Updates", Value: "2", Status: "Scheduled"},
			{Label: "Average Battery", Value: "87%", Status: "Good"},
		},
	},
	SectionAlerts: {
		title: "Alerts Report",
		metrics: []models.MetricRow{
			{Label: "Total Alerts", Value: "24", Status: "Period"},
			{Label: "Critical", Value: "2", Status: "Resolved"},
			{Label: "Warnings", Value: "15", Status: "In Progress"},
			{Label: "Informational", Value: "7", Status: "Reviewed"},
			{Label: "Average Response Time", Value: "12 min", Status: "Efficient"},
		},
	},
	SectionGeneral: {
		title: "General System Report",
		metrics: []models.MetricRow{
			{Label: "Overall Status", Value: "Operational", Status: "Normal"},
			{Label: "System Efficiency", Value: "94%", Status: "Excellent"},
			{Label: "Uptime", Value: "99.8%", Status: "Optimal"},
			{Label: "Birds Monitored", Value: "2,450", Status: "Total"},
			{Label: "Daily Production", Value: "2,180 eggs", Status: "Target Met"},
		},
	},
}

var narrative = []string{
	"This report covers data collected by the poultry monitoring system over the last 24 hours.",
	"All values are within the normal parameters set for operation.",
}

var observations = []string{
	"System running correctly with no significant interruptions",
	"Environmental parameters within the optimal range",
	"Animal activity normal and healthy",
	"Monitoring devices operational and up to date",
}

// Sections lists every canonical section name.
func Sections() []string {
	return []string{SectionClimate, SectionSupply, SectionMotion, SectionDevices, SectionAlerts, SectionGeneral}
}

// Normalize resolves a section keyword or alias. Unknown keywords fall back to general.
func Normalize(section string) string {
	key := strings.ToLower(strings.TrimSpace(section))
	if alias, ok := aliases[key]; ok {
		return alias
	}
	if _, ok := sections[key]; ok {
		return key
	}
	return SectionGeneral
}

// Content builds the report for section stamped with now.
func Content(section string, now time.Time) models.Report {
	name := Normalize(section)
	data := sections[name]
	return models.Report{
		Section:      name,
		Title:        data.title,
		Metrics:      append([]models.MetricRow(nil), data.metrics...),
		Narrative:    append([]string(nil), narrative...),
		Observations: append([]string(nil), observations...),
		GeneratedAt:  now,
	}
}
