package simulation

import (
	"testing"

	"poultry_monitor/internal/models"
)

func TestSeedAlerts_NewestFirst(t *testing.T) {
	alerts := SeedAlerts(testNow)
	if len(alerts) != 5 {
		t.Fatalf("want 5 seed alerts, got %d", len(alerts))
	}
	for i := 1; i < len(alerts); i++ {
		if alerts[i].Timestamp.After(alerts[i-1].Timestamp) {
			t.Fatalf("alerts not ordered newest first at %d", i)
		}
	}
	unread := 0
	for _, a := range alerts {
		if !a.Read {
			unread++
		}
	}
	if unread != 3 {
		t.Fatalf("want 3 unread seed alerts, got %d", unread)
	}
}

func TestNextAlert_RateAndSeverities(t *testing.T) {
	e := NewEngine(21)
	raised := 0
	seen := map[models.Severity]int{}
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		a, ok := e.NextAlert(testNow)
		if !ok {
			continue
		}
		raised++
		seen[a.Severity]++
		if a.Read || a.ID == "" || !a.Timestamp.Equal(testNow) {
			t.Fatalf("unexpected alert: %+v", a)
		}
	}
	if raised < 2700 || raised > 3300 {
		t.Fatalf("raised %d of %d, expected about 30%%", raised, rolls)
	}
	for _, sev := range []models.Severity{models.SeverityCritical, models.SeverityWarning, models.SeverityInfo} {
		if seen[sev] == 0 {
			t.Fatalf("severity %s never picked", sev)
		}
	}
}
