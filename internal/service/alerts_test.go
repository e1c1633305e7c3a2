package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/models"
	"poultry_monitor/internal/repository"
	"poultry_monitor/internal/simulation"
)

// recordingPublisher captures everything published.
type recordingPublisher struct {
	states []models.FarmState
	alerts []models.Alert
	err    error
}

func (p *recordingPublisher) PublishTelemetry(st models.FarmState) error {
	p.states = append(p.states, st)
	return p.err
}

func (p *recordingPublisher) PublishAlert(a models.Alert) error {
	p.alerts = append(p.alerts, a)
	return p.err
}

var alertsNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func newAlertFixture(t *testing.T) (*AlertService, *fakeEventRepo, *recordingPublisher) {
	t.Helper()
	events := &fakeEventRepo{}
	pub := &recordingPublisher{}
	svc := NewAlertService(repository.NewAlertMemory(), events, pub, logger.Nop())
	if err := svc.SeedAlerts(context.Background(), alertsNow); err != nil {
		t.Fatalf("SeedAlerts: %v", err)
	}
	return svc, events, pub
}

func TestAlertService_SeedOnlyOnce(t *testing.T) {
	svc, _, _ := newAlertFixture(t)
	ctx := context.Background()

	first, _ := svc.ListAlerts(ctx, FilterAll)
	if len(first) != 5 {
		t.Fatalf("expected 5 seed alerts, got %d", len(first))
	}
	if err := svc.SeedAlerts(ctx, alertsNow); err != nil {
		t.Fatalf("second SeedAlerts: %v", err)
	}
	again, _ := svc.ListAlerts(ctx, FilterAll)
	if len(again) != 5 || again[0].ID != first[0].ID {
		t.Fatal("seeding a non-empty store must be a no-op")
	}
}

func TestAlertService_Filters(t *testing.T) {
	svc, _, _ := newAlertFixture(t)
	ctx := context.Background()

	cases := map[string]int{
		"":             5,
		FilterAll:      5,
		FilterUnread:   3,
		FilterCritical: 2,
		FilterWarning:  2,
		FilterInfo:     1,
		" UNREAD ":     3,
	}
	for filter, want := range cases {
		got, err := svc.ListAlerts(ctx, filter)
		if err != nil {
			t.Fatalf("filter %q: %v", filter, err)
		}
		if len(got) != want {
			t.Errorf("filter %q: want %d, got %d", filter, want, len(got))
		}
	}

	unread, _ := svc.ListAlerts(ctx, FilterUnread)
	for _, a := range unread {
		if a.Read {
			t.Fatalf("unread filter returned a read alert: %+v", a)
		}
	}

	if _, err := svc.ListAlerts(ctx, "urgent"); !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestAlertService_Counts(t *testing.T) {
	svc, _, _ := newAlertFixture(t)
	c, err := svc.AlertCounts(context.Background())
	if err != nil {
		t.Fatalf("AlertCounts: %v", err)
	}
	want := AlertCounts{Total: 5, Unread: 3, Critical: 2, Warning: 2, Info: 1}
	if c != want {
		t.Fatalf("got %+v, want %+v", c, want)
	}
}

func TestAlertService_MarkReadIdempotent(t *testing.T) {
	svc, events, _ := newAlertFixture(t)
	ctx := context.Background()
	all, _ := svc.ListAlerts(ctx, FilterUnread)
	id := all[0].ID

	for i := 0; i < 2; i++ {
		if err := svc.MarkRead(ctx, id); err != nil {
			t.Fatalf("MarkRead #%d: %v", i, err)
		}
	}
	c, _ := svc.AlertCounts(ctx)
	if c.Unread != 2 {
		t.Fatalf("expected 2 unread, got %d", c.Unread)
	}
	if len(events.appended) != 2 || events.appended[0].Type != models.EventAlertRead {
		t.Fatalf("unexpected journal: %+v", events.appended)
	}

	if err := svc.MarkRead(ctx, "missing"); !errors.Is(err, ErrAlertNotFound) {
		t.Fatalf("expected ErrAlertNotFound, got %v", err)
	}
}

func TestAlertService_MarkAllRead(t *testing.T) {
	svc, events, _ := newAlertFixture(t)
	ctx := context.Background()

	n, err := svc.MarkAllRead(ctx)
	if err != nil || n != 3 {
		t.Fatalf("MarkAllRead: n=%d err=%v", n, err)
	}
	n, _ = svc.MarkAllRead(ctx)
	if n != 0 {
		t.Fatalf("second MarkAllRead changed %d", n)
	}
	if len(events.appended) != 1 {
		t.Fatalf("only the first call should be journaled, got %d", len(events.appended))
	}
}

func TestAlertService_Dismiss(t *testing.T) {
	svc, events, _ := newAlertFixture(t)
	ctx := context.Background()
	all, _ := svc.ListAlerts(ctx, FilterAll)

	removed, err := svc.Dismiss(ctx, all[2].ID)
	if err != nil || !removed {
		t.Fatalf("Dismiss: removed=%v err=%v", removed, err)
	}
	removed, err = svc.Dismiss(ctx, all[2].ID)
	if err != nil || removed {
		t.Fatalf("second Dismiss should be a no-op: removed=%v err=%v", removed, err)
	}
	left, _ := svc.ListAlerts(ctx, FilterAll)
	if len(left) != 4 {
		t.Fatalf("expected 4 alerts, got %d", len(left))
	}
	if len(events.appended) != 1 || events.appended[0].Type != models.EventAlertDismissed {
		t.Fatalf("unexpected journal: %+v", events.appended)
	}
}

func TestAlertService_RaiseCapsAndPublishes(t *testing.T) {
	svc, events, pub := newAlertFixture(t)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		a := models.Alert{
			ID:        fmt.Sprintf("n%d", i),
			Severity:  models.SeverityInfo,
			Title:     "Anomaly detected",
			Timestamp: alertsNow.Add(time.Duration(i) * time.Second),
		}
		if err := svc.Raise(ctx, a); err != nil {
			t.Fatalf("Raise: %v", err)
		}
	}

	all, _ := svc.ListAlerts(ctx, FilterAll)
	if len(all) != simulation.MaxAlerts {
		t.Fatalf("expected %d alerts, got %d", simulation.MaxAlerts, len(all))
	}
	if all[0].ID != "n29" {
		t.Fatalf("newest alert should be first, got %s", all[0].ID)
	}
	if len(pub.alerts) != 30 || len(events.appended) != 30 {
		t.Fatalf("published=%d journaled=%d", len(pub.alerts), len(events.appended))
	}
}

func TestAlertService_JournalAndPublishFailuresDoNotFail(t *testing.T) {
	svc, events, pub := newAlertFixture(t)
	events.appendErr = errors.New("disk full")
	pub.err = errors.New("broker down")

	err := svc.Raise(context.Background(), models.Alert{ID: "x", Severity: models.SeverityCritical})
	if err != nil {
		t.Fatalf("Raise should succeed despite side-channel failures: %v", err)
	}
}
