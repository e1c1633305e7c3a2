package models

import "time"

// Reading is a bounded scalar sensor value in [0, Max].
type Reading struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Max   float64 `json:"max"`
}

// TimePoint is one point of a chart series.
type TimePoint struct {
	Time   string             `json:"time"`
	Values map[string]float64 `json:"values"`
}

// Zone is a motion detection zone inside a shed.
type Zone struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Activity      int        `json:"activity"`
	LastDetection *time.Time `json:"last_detection,omitempty"`
}

// Climate holds the shed climate readings.
type Climate struct {
	TemperatureC  float64   `json:"temperature_c"`
	HumidityPct   float64   `json:"humidity_pct"`
	AirQualityPct float64   `json:"air_quality_pct"`
	LightSensors  []Reading `json:"light_sensors"`
}

// Supply holds water tank and feed silo levels.
type Supply struct {
	WaterTanks []Reading `json:"water_tanks"`
	FeedSilos  []Reading `json:"feed_silos"`
}

// Motion holds animal activity and noise readings.
type Motion struct {
	ActivityPct    float64     `json:"activity_pct"`
	LastDetection  time.Time   `json:"last_detection"`
	ActiveZones    int         `json:"active_zones"`
	NoiseDB        float64     `json:"noise_db"`
	Zones          []Zone      `json:"zones"`
	ActivityWindow []TimePoint `json:"activity_window"`
	NoiseWindow    []TimePoint `json:"noise_window"`
}

// FarmState is the whole simulated farm at one instant.
type FarmState struct {
	Tick      uint64    `json:"tick"`
	UpdatedAt time.Time `json:"updated_at"`
	Climate   Climate   `json:"climate"`
	Supply    Supply    `json:"supply"`
	Motion    Motion    `json:"motion"`
	Devices   []Device  `json:"devices"`

	TemperatureHistory []TimePoint `json:"temperature_history"`
	AirQualityHistory  []TimePoint `json:"air_quality_history"`
	ActivityHistory    []TimePoint `json:"activity_history"`
}

// IsZero reports whether the state was never seeded.
func (s FarmState) IsZero() bool {
	return s.UpdatedAt.IsZero() && s.Tick == 0 && len(s.Devices) == 0
}

// Clone returns a deep copy so callers never share slices with the owner.
func (s FarmState) Clone() FarmState {
	out := s
	out.Climate.LightSensors = cloneReadings(s.Climate.LightSensors)
	out.Supply.WaterTanks = cloneReadings(s.Supply.WaterTanks)
	out.Supply.FeedSilos = cloneReadings(s.Supply.FeedSilos)
	out.Motion.Zones = cloneZones(s.Motion.Zones)
	out.Motion.ActivityWindow = clonePoints(s.Motion.ActivityWindow)
	out.Motion.NoiseWindow = clonePoints(s.Motion.NoiseWindow)
	if s.Devices != nil {
		out.Devices = append([]Device(nil), s.Devices...)
	}
	out.TemperatureHistory = clonePoints(s.TemperatureHistory)
	out.AirQualityHistory = clonePoints(s.AirQualityHistory)
	out.ActivityHistory = clonePoints(s.ActivityHistory)
	return out
}

func cloneReadings(in []Reading) []Reading {
	if in == nil {
		return nil
	}
	return append([]Reading(nil), in...)
}

func cloneZones(in []Zone) []Zone {
	if in == nil {
		return nil
	}
	out := make([]Zone, len(in))
	for i, z := range in {
		out[i] = z
		if z.LastDetection != nil {
			t := *z.LastDetection
			out[i].LastDetection = &t
		}
	}
	return out
}

func clonePoints(in []TimePoint) []TimePoint {
	if in == nil {
		return nil
	}
	out := make([]TimePoint, len(in))
	for i, p := range in {
		vals := make(map[string]float64, len(p.Values))
		for k, v := range p.Values {
			vals[k] = v
		}
		out[i] = TimePoint{Time: p.Time, Values: vals}
	}
	return out
}
