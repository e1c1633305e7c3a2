package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"poultry_monitor/internal/models"
	"poultry_monitor/internal/service"
)

func TestFarmHandlers_RequireAuth(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}, Monitoring: &mockMonitoring{}, Devices: &mockDevices{}}
	r := newTestRouter(s)

	for _, path := range []string{
		"/api/v1/telemetry",
		"/api/v1/telemetry/history",
		"/api/v1/climate",
		"/api/v1/supply",
		"/api/v1/motion",
		"/api/v1/devices",
		"/api/v1/devices/1",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without auth: got %d, want 401", path, w.Code)
		}
	}
}

func TestFarmHandlers_Readings(t *testing.T) {
	mon := &mockMonitoring{
		state:   models.FarmState{Tick: 9, Climate: models.Climate{TemperatureC: 25}},
		climate: service.ClimateSummary{TemperatureC: 25, HumidityPct: 70},
		supply:  service.SupplySummary{WaterAvgPct: 80, FeedAvgPct: 71.7},
		motion:  service.MotionSummary{ActiveZones: 3},
	}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Monitoring: mon})

	w := doAuthed(r, http.MethodGet, "/api/v1/telemetry")
	if w.Code != http.StatusOK {
		t.Fatalf("telemetry status=%d body=%s", w.Code, w.Body.String())
	}
	var st models.FarmState
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st.Tick != 9 || st.Climate.TemperatureC != 25 {
		t.Fatalf("unexpected state: %+v", st)
	}

	w = doAuthed(r, http.MethodGet, "/api/v1/supply")
	var sup service.SupplySummary
	_ = json.Unmarshal(w.Body.Bytes(), &sup)
	if w.Code != http.StatusOK || sup.WaterAvgPct != 80 {
		t.Fatalf("supply: status=%d body=%s", w.Code, w.Body.String())
	}

	w = doAuthed(r, http.MethodGet, "/api/v1/climate")
	var cl service.ClimateSummary
	_ = json.Unmarshal(w.Body.Bytes(), &cl)
	if w.Code != http.StatusOK || cl.HumidityPct != 70 {
		t.Fatalf("climate: status=%d body=%s", w.Code, w.Body.String())
	}

	for _, path := range []string{"/api/v1/motion", "/api/v1/telemetry/history"} {
		if w := doAuthed(r, http.MethodGet, path); w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, w.Code)
		}
	}
}

func TestFarmHandlers_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not seeded", service.ErrNoSnapshot, http.StatusServiceUnavailable},
		{"repository failure", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{
				Authorization: &mockAuth{parseID: 1},
				Monitoring:    &mockMonitoring{err: tc.err},
				Devices:       &mockDevices{err: tc.err},
			})
			for _, path := range []string{"/api/v1/telemetry", "/api/v1/supply", "/api/v1/devices"} {
				w := doAuthed(r, http.MethodGet, path)
				if w.Code != tc.code {
					t.Fatalf("%s: got %d, want %d", path, w.Code, tc.code)
				}
				var out map[string]string
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out["error"] == "" {
					t.Fatalf("%s: missing error body: %s", path, w.Body.String())
				}
			}
		})
	}
}

func TestDeviceHandlers(t *testing.T) {
	dev := &mockDevices{
		devices: []models.Device{
			{ID: "1", Name: "Temperature sensor A", Status: models.DeviceOnline, Type: "temperature"},
			{ID: "2", Name: "Humidity sensor A", Status: models.DeviceWarning, Type: "humidity"},
		},
		counts: service.DeviceCounts{Online: 1, Warning: 1, Total: 2},
	}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Devices: dev})

	w := doAuthed(r, http.MethodGet, "/api/v1/devices")
	var list struct {
		Count   int             `json:"count"`
		Devices []models.Device `json:"devices"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || list.Count != 2 || len(list.Devices) != 2 {
		t.Fatalf("list: status=%d body=%s", w.Code, w.Body.String())
	}

	w = doAuthed(r, http.MethodGet, "/api/v1/devices/counts")
	var counts service.DeviceCounts
	_ = json.Unmarshal(w.Body.Bytes(), &counts)
	if w.Code != http.StatusOK || counts.Total != 2 || counts.Warning != 1 {
		t.Fatalf("counts: status=%d body=%s", w.Code, w.Body.String())
	}

	w = doAuthed(r, http.MethodGet, "/api/v1/devices/2")
	var d models.Device
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if w.Code != http.StatusOK || d.Status != models.DeviceWarning {
		t.Fatalf("get: status=%d body=%s", w.Code, w.Body.String())
	}

	if w := doAuthed(r, http.MethodGet, "/api/v1/devices/99"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown device: got %d, want 404", w.Code)
	}
}

func TestHealthAndDashboard(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"ok"}` {
		t.Fatalf("health: status=%d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != contentTypeHTML {
		t.Fatalf("dashboard content type %q", ct)
	}
}
