package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/metrics"
	"poultry_monitor/internal/models"
	"poultry_monitor/internal/repository"
	"poultry_monitor/internal/simulation"
)

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrInvalidFilter = errors.New("invalid filter: must be all, unread, critical, warning or info")
)

// AlertService owns the alert list. Raised, read and dismissed alerts are
// journaled; journal failures are logged and never fail the operation.
type AlertService struct {
	alertRepo repository.AlertRepo
	eventRepo repository.EventRepo
	publisher Publisher
	log       *logger.Logger
}

func NewAlertService(alertRepo repository.AlertRepo, eventRepo repository.EventRepo, pub Publisher, log *logger.Logger) *AlertService {
	return &AlertService{alertRepo: alertRepo, eventRepo: eventRepo, publisher: pub, log: log}
}

// SeedAlerts loads the starting alerts if the store is empty.
func (s *AlertService) SeedAlerts(ctx context.Context, now time.Time) error {
	current, err := s.alertRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(current) > 0 {
		return nil
	}
	if err := s.alertRepo.Replace(ctx, simulation.SeedAlerts(now)); err != nil {
		return err
	}
	s.recordStore(ctx)
	return nil
}

// Raise prepends a and keeps only the most recent simulation.MaxAlerts.
func (s *AlertService) Raise(ctx context.Context, a models.Alert) error {
	dropped, err := s.alertRepo.Prepend(ctx, a, simulation.MaxAlerts)
	if err != nil {
		return fmt.Errorf("store alert %s: %w", a.ID, err)
	}
	metrics.RecordAlertRaised(a.Severity)
	s.recordStore(ctx)

	s.journal(ctx, models.FarmEvent{
		OccurredAt:  a.Timestamp,
		Type:        models.EventAlertRaised,
		Description: a.Title,
		Metadata:    map[string]any{"id": a.ID, "severity": a.Severity, "source": a.Source, "dropped": dropped},
	})
	if err := s.publisher.PublishAlert(a); err != nil {
		s.log.Warnw("alert_publish_failed", "id", a.ID, "err", err)
	}
	return nil
}

// ListAlerts returns the alerts matching filter, newest first. Empty means all.
func (s *AlertService) ListAlerts(ctx context.Context, filter string) ([]models.Alert, error) {
	keep, err := alertPredicate(filter)
	if err != nil {
		return nil, err
	}
	all, err := s.alertRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Alert, 0, len(all))
	for _, a := range all {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *AlertService) AlertCounts(ctx context.Context) (AlertCounts, error) {
	all, err := s.alertRepo.List(ctx)
	if err != nil {
		return AlertCounts{}, err
	}
	return countAlerts(all), nil
}

// MarkRead is idempotent; only unknown ids fail.
func (s *AlertService) MarkRead(ctx context.Context, id string) error {
	found, err := s.alertRepo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrAlertNotFound
	}
	s.recordStore(ctx)
	s.journal(ctx, models.FarmEvent{
		Type:        models.EventAlertRead,
		Description: "Alert marked as read",
		Metadata:    map[string]any{"id": id},
	})
	return nil
}

// MarkAllRead returns how many alerts changed from unread to read.
func (s *AlertService) MarkAllRead(ctx context.Context) (int, error) {
	changed, err := s.alertRepo.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	if changed > 0 {
		s.recordStore(ctx)
		s.journal(ctx, models.FarmEvent{
			Type:        models.EventAlertRead,
			Description: "All alerts marked as read",
			Metadata:    map[string]any{"count": changed},
		})
	}
	return changed, nil
}

// Dismiss removes the alert with id. Dismissing an unknown id is a no-op.
func (s *AlertService) Dismiss(ctx context.Context, id string) (bool, error) {
	removed, err := s.alertRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.recordStore(ctx)
		s.journal(ctx, models.FarmEvent{
			Type:        models.EventAlertDismissed,
			Description: "Alert dismissed",
			Metadata:    map[string]any{"id": id},
		})
	}
	return removed, nil
}

func (s *AlertService) journal(ctx context.Context, e models.FarmEvent) {
	if err := s.eventRepo.Append(ctx, e); err != nil {
		s.log.Errorw("alert_journal_failed", "type", e.Type, "err", err)
	}
}

func (s *AlertService) recordStore(ctx context.Context) {
	all, err := s.alertRepo.List(ctx)
	if err != nil {
		return
	}
	c := countAlerts(all)
	metrics.RecordAlertStore(c.Total, c.Unread)
}

func alertPredicate(filter string) (func(models.Alert) bool, error) {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", FilterAll:
		return func(models.Alert) bool { return true }, nil
	case FilterUnread:
		return func(a models.Alert) bool { return !a.Read }, nil
	case FilterCritical:
		return bySeverity(models.SeverityCritical), nil
	case FilterWarning:
		return bySeverity(models.SeverityWarning), nil
	case FilterInfo:
		return bySeverity(models.SeverityInfo), nil
	default:
		return nil, ErrInvalidFilter
	}
}

func bySeverity(sev models.Severity) func(models.Alert) bool {
	return func(a models.Alert) bool { return a.Severity == sev }
}

func countAlerts(all []models.Alert) AlertCounts {
	c := AlertCounts{Total: len(all)}
	for _, a := range all {
		if !a.Read {
			c.Unread++
		}
		switch a.Severity {
		case models.SeverityCritical:
			c.Critical++
		case models.SeverityWarning:
			c.Warning++
		case models.SeverityInfo:
			c.Info++
		}
	}
	return c
}
