package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"poultry_monitor/internal/models"
)

// Mode selects the document wrapper.
type Mode string

const (
	// ModeView adds Print and Close buttons.
	ModeView Mode = "view"
	// ModePrint opens the print dialog once the document loads.
	ModePrint Mode = "print"
)

const (
	systemName      = "Poultry Management System"
	footerLine      = "Poultry Management System - Demo Edition"
	timestampLayout = "2006-01-02 15:04:05 MST"
	printDelayMs    = 250
)

const fragmentTmpl = `<div class="header">
  <h1>{{.System}}</h1>
  <h2>{{.Report.Title}}</h2>
  <p>Generated: {{.Stamp}}</p>
</div>

<div class="section">
  <h2>Key Metrics</h2>
{{- range .Report.Metrics}}
  <div class="metric">
    <span><strong>{{.Label}}:</strong></span>
    <span>{{.Value}} <em>({{.Status}})</em></span>
  </div>
{{- end}}
</div>

<div class="section">
  <h2>Period Summary</h2>
{{- range .Report.Narrative}}
  <p>{{.}}</p>
{{- end}}
</div>

<div class="section">
  <h2>Observations</h2>
  <ul>
{{- range .Report.Observations}}
    <li>{{.}}</li>
{{- end}}
  </ul>
</div>

<div class="footer">
  <p>{{.Footer}}</p>
  <p>Report generated automatically on {{.Stamp}}</p>
</div>
`

const documentTmpl = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Inter', Arial, sans-serif; margin: 20px; color: #333; line-height: 1.6; }
.header { text-align: center; border-bottom: 2px solid #8b5cf6; padding-bottom: 20px; margin-bottom: 30px; }
.header h1 { color: #8b5cf6; margin: 0; }
.section { margin-bottom: 30px; padding: 20px; border: 1px solid #e5e7eb; border-radius: 8px; }
.section h2 { color: #2dd4bf; border-bottom: 1px solid #e5e7eb; padding-bottom: 10px; }
.metric { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #f3f4f6; }
.metric:last-child { border-bottom: none; }
.footer { text-align: center; margin-top: 40px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 12px; }
.actions { position: fixed; top: 10px; right: 10px; display: flex; gap: 10px; }
.btn { padding: 8px 16px; background: #8b5cf6; color: white; border: none; border-radius: 4px; cursor: pointer; }
@media print { .actions { display: none; } body { margin: 0; } .section { break-inside: avoid; } }
</style>
</head>
<body{{if .Print}} onload="setTimeout(function () { window.print(); }, {{.PrintDelay}})"{{end}}>
{{- if not .Print}}
<div class="actions">
  <button class="btn" onclick="window.print()">Print / Save as PDF</button>
  <button class="btn" onclick="window.close()">Close</button>
</div>
{{- end}}
{{.Fragment}}
</body>
</html>
`

var (
	fragment = template.Must(template.New("fragment").Parse(fragmentTmpl))
	document = template.Must(template.New("document").Parse(documentTmpl))
)

// ParseMode maps a string onto a Mode; anything but "print" is view.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModePrint)) {
		return ModePrint
	}
	return ModeView
}

// Filename is the suggested name of an exported report.
func Filename(r models.Report) string {
	return fmt.Sprintf("report-%s-%s.html", r.Section, r.GeneratedAt.Format("20060102-150405"))
}

// RenderFragment renders header, sections and footer of r.
func RenderFragment(r models.Report) (string, error) {
	var buf bytes.Buffer
	err := fragment.Execute(&buf, struct {
		System string
		Footer string
		Stamp  string
		Report models.Report
	}{
		System: systemName,
		Footer: footerLine,
		Stamp:  r.GeneratedAt.Format(timestampLayout),
		Report: r,
	})
	if err != nil {
		return "", fmt.Errorf("render %s fragment: %w", r.Section, err)
	}
	return buf.String(), nil
}

// RenderDocument wraps the fragment of r in a standalone HTML page.
func RenderDocument(r models.Report, mode Mode) (string, error) {
	frag, err := RenderFragment(r)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = document.Execute(&buf, struct {
		Title      string
		Print      bool
		PrintDelay int
		Fragment   template.HTML
	}{
		Title:      strings.TrimSuffix(Filename(r), ".html"),
		Print:      mode == ModePrint,
		PrintDelay: printDelayMs,
		Fragment:   template.HTML(frag), // escaped by the fragment template
	})
	if err != nil {
		return "", fmt.Errorf("render %s document: %w", r.Section, err)
	}
	return buf.String(), nil
}
