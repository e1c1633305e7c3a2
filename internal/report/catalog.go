package report

import (
	"time"

	"poultry_monitor/internal/models"
)

// Catalog returns the pre-generated reports listed on the reports page,
// with generation times relative to now.
func Catalog(now time.Time) []models.ReportEntry {
	return []models.ReportEntry{
		{
			ID:            "1",
			Name:          "Daily Report - Climate",
			Description:   "Full summary of temperature, humidity and air quality",
			Section:       SectionClimate,
			Type:          models.ReportDaily,
			Size:          "2.3 MB",
			LastGenerated: now.Add(-time.Hour),
			Status:        models.ReportReady,
		},
		{
			ID:            "2",
			Name:          "Weekly Report - Supply",
			Description:   "Water and feed consumption over the week",
			Section:       SectionSupply,
			Type:          models.ReportWeekly,
			Size:          "5.7 MB",
			LastGenerated: now.Add(-24 * time.Hour),
			Status:        models.ReportReady,
		},
		{
			ID:            "3",
			Name:          "Monthly Report - General",
			Description:   "Complete report on every system and metric",
			Section:       SectionGeneral,
			Type:          models.ReportMonthly,
			Size:          "12.4 MB",
			LastGenerated: now.Add(-7 * 24 * time.Hour),
			Status:        models.ReportReady,
		},
		{
			ID:            "4",
			Name:          "Alerts Report",
			Description:   "History of system alerts and events",
			Section:       SectionAlerts,
			Type:          models.ReportCustom,
			Size:          "1.8 MB",
			LastGenerated: now.Add(-30 * time.Minute),
			Status:        models.ReportGenerating,
		},
	}
}
