package service

import (
	"context"
	"errors"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/models"
	"poultry_monitor/internal/report"
	"poultry_monitor/internal/repository"
)

var (
	ErrUnknownReport  = errors.New("report not found")
	ErrReportNotReady = errors.New("report is not ready for download")
)

// ReportService builds section reports against an injectable clock.
type ReportService struct {
	eventRepo repository.EventRepo
	now       func() time.Time
	log       *logger.Logger
}

func NewReportService(eventRepo repository.EventRepo, now func() time.Time, log *logger.Logger) *ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportService{eventRepo: eventRepo, now: now, log: log}
}

// ReportContent returns the report of section; unknown sections map to general.
func (s *ReportService) ReportContent(section string) models.Report {
	return report.Content(section, s.now())
}

// RenderReport renders section as a standalone document. Print renders are
// journaled as exports.
func (s *ReportService) RenderReport(ctx context.Context, section, mode string) (string, error) {
	r := s.ReportContent(section)
	m := report.ParseMode(mode)
	doc, err := report.RenderDocument(r, m)
	if err != nil {
		return "", err
	}
	if m == report.ModePrint {
		s.journalExport(ctx, r, "")
	}
	return doc, nil
}

// Catalog lists the pre-generated reports.
func (s *ReportService) Catalog() []models.ReportEntry {
	return report.Catalog(s.now())
}

// CatalogDocument renders the print document of catalog entry id.
func (s *ReportService) CatalogDocument(ctx context.Context, id string) (models.ReportEntry, string, error) {
	for _, e := range s.Catalog() {
		if e.ID != id {
			continue
		}
		if e.Status != models.ReportReady {
			return e, "", ErrReportNotReady
		}
		r := s.ReportContent(e.Section)
		doc, err := report.RenderDocument(r, report.ModePrint)
		if err != nil {
			return e, "", err
		}
		s.journalExport(ctx, r, e.ID)
		return e, doc, nil
	}
	return models.ReportEntry{}, "", ErrUnknownReport
}

func (s *ReportService) journalExport(ctx context.Context, r models.Report, catalogID string) {
	meta := map[string]any{"section": r.Section, "file": report.Filename(r)}
	if catalogID != "" {
		meta["catalog_id"] = catalogID
	}
	err := s.eventRepo.Append(ctx, models.FarmEvent{
		OccurredAt:  r.GeneratedAt,
		Type:        models.EventReportExported,
		Description: r.Title + " exported",
		Metadata:    meta,
	})
	if err != nil {
		s.log.Errorw("report_journal_failed", "section", r.Section, "err", err)
	}
}
