package report

import (
	"strings"
	"testing"
	"time"

	"poultry_monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"climate", SectionClimate},
		{" Climatizacion ", SectionClimate},
		{"abastecimiento", SectionSupply},
		{"movimiento", SectionMotion},
		{"dispositivos", SectionDevices},
		{"alertas", SectionAlerts},
		{"ALERTS", SectionAlerts},
		{"general", SectionGeneral},
		{"", SectionGeneral},
		{"does-not-exist", SectionGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestContent_EverySectionHasFiveRows(t *testing.T) {
	for _, s := range Sections() {
		r := Content(s, fixedNow)
		assert.Equal(t, s, r.Section)
		assert.NotEmpty(t, r.Title)
		assert.Len(t, r.Metrics, 5, s)
		assert.NotEmpty(t, r.Narrative)
		assert.NotEmpty(t, r.Observations)
		assert.Equal(t, fixedNow, r.GeneratedAt)
	}
}

func TestContent_UnknownFallsBackToGeneral(t *testing.T) {
	assert.Equal(t, Content("general", fixedNow), Content("nope", fixedNow))
}

func TestContent_DoesNotShareTables(t *testing.T) {
	r := Content(SectionClimate, fixedNow)
	r.Metrics[0].Value = "changed"
	assert.NotEqual(t, "changed", Content(SectionClimate, fixedNow).Metrics[0].Value)
}

func TestRenderFragment_Deterministic(t *testing.T) {
	r := Content(SectionSupply, fixedNow)

	a, err := RenderFragment(r)
	require.NoError(t, err)
	b, err := RenderFragment(r)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	assert.Contains(t, a, "Supply Report")
	assert.Contains(t, a, "2025-06-01 14:30:00 UTC")
	assert.Equal(t, 5, strings.Count(a, `class="metric"`))
	assert.Contains(t, a, `class="footer"`)
}

func TestRenderFragment_EscapesContent(t *testing.T) {
	r := models.Report{
		Section: "x",
		Title:   "<script>alert(1)</script>",
		Metrics: []models.MetricRow{{Label: "a&b", Value: "1", Status: "ok"}},
	}
	out, err := RenderFragment(r)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "a&amp;b")
}

func TestRenderDocument_Modes(t *testing.T) {
	r := Content(SectionMotion, fixedNow)

	view, err := RenderDocument(r, ModeView)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(view, "<!DOCTYPE html>"))
	assert.Contains(t, view, "window.close()")
	assert.NotContains(t, view, "onload=")
	assert.Contains(t, view, "Animal Activity Report")

	print, err := RenderDocument(r, ModePrint)
	require.NoError(t, err)
	assert.Contains(t, print, "onload=")
	assert.Contains(t, print, "window.print()")
	assert.NotContains(t, print, "window.close()")
	assert.Contains(t, print, "<title>report-motion-20250601-143000</title>")
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModePrint, ParseMode("PRINT"))
	assert.Equal(t, ModeView, ParseMode("view"))
	assert.Equal(t, ModeView, ParseMode(""))
}

func TestCatalog(t *testing.T) {
	entries := Catalog(fixedNow)
	require.Len(t, entries, 4)

	ready := 0
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.True(t, e.LastGenerated.Before(fixedNow))
		if e.Status == models.ReportReady {
			ready++
		}
	}
	assert.Equal(t, 3, ready)
	assert.Equal(t, models.ReportGenerating, entries[3].Status)
}
