package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"poultry_monitor/internal/models"
	"poultry_monitor/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockMonitoring struct {
	state   models.FarmState
	climate service.ClimateSummary
	supply  service.SupplySummary
	motion  service.MotionSummary
	history service.History
	err     error
}

func (m *mockMonitoring) Snapshot(ctx context.Context) (models.FarmState, error) {
	return m.state, m.err
}
func (m *mockMonitoring) ClimateSummary(ctx context.Context) (service.ClimateSummary, error) {
	return m.climate, m.err
}
func (m *mockMonitoring) SupplySummary(ctx context.Context) (service.SupplySummary, error) {
	return m.supply, m.err
}
func (m *mockMonitoring) MotionSummary(ctx context.Context) (service.MotionSummary, error) {
	return m.motion, m.err
}
func (m *mockMonitoring) History(ctx context.Context) (service.History, error) {
	return m.history, m.err
}

type mockDevices struct {
	devices []models.Device
	counts  service.DeviceCounts
	err     error
}

func (m *mockDevices) ListDevices(ctx context.Context) ([]models.Device, error) {
	return m.devices, m.err
}
func (m *mockDevices) GetDevice(ctx context.Context, id string) (models.Device, error) {
	if m.err != nil {
		return models.Device{}, m.err
	}
	for _, d := range m.devices {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Device{}, service.ErrDeviceNotFound
}
func (m *mockDevices) DeviceCounts(ctx context.Context) (service.DeviceCounts, error) {
	return m.counts, m.err
}

type mockAlerts struct {
	alerts  []models.Alert
	counts  service.AlertCounts
	listErr error
	readErr error
	changed int
	removed bool

	lastFilter    string
	lastReadID    string
	lastDismissID string
}

func (m *mockAlerts) SeedAlerts(ctx context.Context, now time.Time) error { return nil }
func (m *mockAlerts) Raise(ctx context.Context, a models.Alert) error      { return nil }
func (m *mockAlerts) AlertCounts(ctx context.Context) (service.AlertCounts, error) {
	return m.counts, nil
}
func (m *mockAlerts) ListAlerts(ctx context.Context, filter string) ([]models.Alert, error) {
	m.lastFilter = filter
	return m.alerts, m.listErr
}
func (m *mockAlerts) MarkRead(ctx context.Context, id string) error {
	m.lastReadID = id
	return m.readErr
}
func (m *mockAlerts) MarkAllRead(ctx context.Context) (int, error) {
	return m.changed, nil
}
func (m *mockAlerts) Dismiss(ctx context.Context, id string) (bool, error) {
	m.lastDismissID = id
	return m.removed, nil
}

type mockReports struct {
	doc        string
	renderErr  error
	entries    []models.ReportEntry
	catalogErr error

	lastSection string
	lastMode    string
}

func (m *mockReports) ReportContent(section string) models.Report {
	return models.Report{Section: section, Title: "Report " + section, GeneratedAt: time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)}
}
func (m *mockReports) RenderReport(ctx context.Context, section, mode string) (string, error) {
	m.lastSection = section
	m.lastMode = mode
	return m.doc, m.renderErr
}
func (m *mockReports) Catalog() []models.ReportEntry { return m.entries }
func (m *mockReports) CatalogDocument(ctx context.Context, id string) (models.ReportEntry, string, error) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, m.doc, m.catalogErr
		}
	}
	return models.ReportEntry{}, "", service.ErrUnknownReport
}

type mockEventLog struct {
	resp     []models.FarmEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.FarmEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{})
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doAuthed performs a request carrying a bearer token accepted by mockAuth.
func doAuthed(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}
