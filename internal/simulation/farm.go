package simulation

import (
	"time"

	"poultry_monitor/internal/models"
)

// ----------- Simulation constants -----------
const (
	MinTemperatureC = 18.0
	MaxTemperatureC = 30.0
	MinHumidityPct  = 40.0
	MaxHumidityPct  = 90.0
	MinAirQuality   = 60.0
	MaxAirQuality   = 100.0
	MinNoiseDB      = 40.0
	MaxNoiseDB      = 100.0
	MaxActivityPct  = 100.0

	TemperatureSpan = 2.0   // ±1 °C per tick
	HumiditySpan    = 4.0   // ±2 % per tick
	AirQualitySpan  = 6.0   // ±3 % per tick
	LightSpan       = 200.0 // ±100 lux per tick
	ActivitySpan    = 10.0  // ±5 % per tick
	NoiseSpan       = 6.0   // ±3 dB per tick

	MaxWaterDrop = 0.5 // per tick
	MaxFeedDrop  = 0.3 // per tick

	DeviceShuffleChance = 0.1 // per tick
	DeviceFlipChance    = 0.2 // per device, inside a shuffle round
	DetectionChance     = 0.2
	ZoneDetectionChance = 0.3
	MaxActiveZones      = 5

	ActivityWindowLen = 30
	NoiseWindowLen    = 20
)

// DeviceChange records one device status reassignment.
type DeviceChange struct {
	DeviceID string
	From     models.DeviceStatus
	To       models.DeviceStatus
}

// Seed returns the literal starting state plus freshly generated histories.
func (e *Engine) Seed(now time.Time) models.FarmState {
	now = now.UTC()
	st := models.FarmState{
		UpdatedAt: now,
		Climate: models.Climate{
			TemperatureC:  24,
			HumidityPct:   74,
			AirQualityPct: 85,
			LightSensors: []models.Reading{
				{ID: "galpon1", Name: "Shed 1", Value: 3000, Max: 5000},
				{ID: "galpon2", Name: "Shed 2", Value: 4500, Max: 5000},
				{ID: "galpon3", Name: "Shed 3", Value: 3500, Max: 5000},
			},
		},
		Supply: models.Supply{
			WaterTanks: []models.Reading{
				{ID: "tank1", Name: "Main Tank", Value: 85, Max: 100},
				{ID: "tank2", Name: "Reserve Tank", Value: 65, Max: 100},
				{ID: "drinker1", Name: "Drinker A", Value: 90, Max: 100},
			},
			FeedSilos: []models.Reading{
				{ID: "silo1", Name: "Silo 1", Value: 78, Max: 100},
				{ID: "silo2", Name: "Silo 2", Value: 45, Max: 100},
				{ID: "silo3", Name: "Silo 3", Value: 92, Max: 100},
			},
		},
		Motion: models.Motion{
			ActivityPct:   65,
			LastDetection: now,
			ActiveZones:   3,
			NoiseDB:       72,
			Zones: []models.Zone{
				{ID: "zone1", Name: "Zone 1 - Entrance"},
				{ID: "zone2", Name: "Zone 2 - Feeding"},
				{ID: "zone3", Name: "Zone 3 - Resting"},
				{ID: "zone4", Name: "Zone 4 - Drinkers"},
			},
		},
		Devices: []models.Device{
			{ID: "temp_sensor_1", Name: "Temperature Sensor 1", Status: models.DeviceOnline, Type: "temperature"},
			{ID: "temp_sensor_2", Name: "Temperature Sensor 2", Status: models.DeviceOnline, Type: "temperature"},
			{ID: "humidity_sensor", Name: "Humidity Sensor", Status: models.DeviceOnline, Type: "humidity"},
			{ID: "light_sensor_1", Name: "Light Sensor 1", Status: models.DeviceOnline, Type: "light"},
			{ID: "light_sensor_2", Name: "Light Sensor 2", Status: models.DeviceOffline, Type: "light"},
			{ID: "water_level_1", Name: "Water Sensor 1", Status: models.DeviceOnline, Type: "water"},
			{ID: "motion_detector_1", Name: "Motion Detector 1", Status: models.DeviceWarning, Type: "motion"},
		},
	}
	st.TemperatureHistory = e.TemperatureHistory(now)
	st.AirQualityHistory = e.AirQualityHistory(now)
	st.ActivityHistory = e.ActivityHistory(now)
	return st
}

// Step advances st by one tick and returns the device status reassignments it made.
func (e *Engine) Step(st *models.FarmState, now time.Time) []DeviceChange {
	now = now.UTC()

	e.stepClimate(&st.Climate)
	e.stepSupply(&st.Supply)
	e.stepMotion(&st.Motion, now)
	changes := e.stepDevices(st.Devices)

	st.Tick++
	st.UpdatedAt = now
	return changes
}

func (e *Engine) stepClimate(c *models.Climate) {
	c.TemperatureC = Clamp(c.TemperatureC+e.Jitter(TemperatureSpan), MinTemperatureC, MaxTemperatureC)
	c.HumidityPct = Clamp(c.HumidityPct+e.Jitter(HumiditySpan), MinHumidityPct, MaxHumidityPct)
	c.AirQualityPct = Clamp(c.AirQualityPct+e.Jitter(AirQualitySpan), MinAirQuality, MaxAirQuality)
	for i := range c.LightSensors {
		s := &c.LightSensors[i]
		s.Value = Clamp(s.Value+e.Jitter(LightSpan), 0, s.Max)
	}
}

// stepSupply drains tanks and silos; levels only ever go down.
func (e *Engine) stepSupply(s *models.Supply) {
	for i := range s.WaterTanks {
		t := &s.WaterTanks[i]
		t.Value = Clamp(t.Value-e.Float()*MaxWaterDrop, 0, t.Max)
	}
	for i := range s.FeedSilos {
		t := &s.FeedSilos[i]
		t.Value = Clamp(t.Value-e.Float()*MaxFeedDrop, 0, t.Max)
	}
}

func (e *Engine) stepMotion(m *models.Motion, now time.Time) {
	m.ActivityPct = Clamp(m.ActivityPct+e.Jitter(ActivitySpan), 0, MaxActivityPct)
	if e.Chance(DetectionChance) {
		m.LastDetection = now
	}
	m.ActiveZones = 1 + e.IntN(MaxActiveZones)
	m.NoiseDB = Clamp(m.NoiseDB+e.Jitter(NoiseSpan), MinNoiseDB, MaxNoiseDB)

	for i := range m.Zones {
		z := &m.Zones[i]
		z.Activity = e.IntN(100)
		if e.Chance(ZoneDetectionChance) {
			t := now
			z.LastDetection = &t
		}
	}

	label := now.Format("15:04:05")
	m.ActivityWindow = Slide(m.ActivityWindow, models.TimePoint{
		Time:   label,
		Values: map[string]float64{"activity": m.ActivityPct, "active_zones": float64(m.ActiveZones)},
	}, ActivityWindowLen)
	m.NoiseWindow = Slide(m.NoiseWindow, models.TimePoint{
		Time:   label,
		Values: map[string]float64{"noise_db": m.NoiseDB},
	}, NoiseWindowLen)
}

// stepDevices occasionally reassigns statuses uniformly at random. There is no
// transition policy: the new status may equal the old one.
func (e *Engine) stepDevices(devices []models.Device) []DeviceChange {
	if !e.Chance(DeviceShuffleChance) {
		return nil
	}
	var changes []DeviceChange
	for i := range devices {
		if !e.Chance(DeviceFlipChance) {
			continue
		}
		d := &devices[i]
		next := models.DeviceStatuses[e.IntN(len(models.DeviceStatuses))]
		if next != d.Status {
			changes = append(changes, DeviceChange{DeviceID: d.ID, From: d.Status, To: next})
		}
		d.Status = next
	}
	return changes
}
