package simulation

import (
	"math"
	"time"

	"poultry_monitor/internal/models"
)

const (
	temperatureHistoryLen = 24
	airQualityHistoryLen  = 20
	activityHistoryLen    = 24

	labelLayout = "15:04"
)

// TemperatureHistory builds 24 hourly points of the current day with light
// sinusoidal shaping.
func (e *Engine) TemperatureHistory(now time.Time) []models.TimePoint {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]models.TimePoint, 0, temperatureHistoryLen)
	for i := 0; i < temperatureHistoryLen; i++ {
		h := float64(i)
		out = append(out, models.TimePoint{
			Time: day.Add(time.Duration(i) * time.Hour).Format(labelLayout),
			Values: map[string]float64{
				"temperature": 20 + e.Float()*10 + math.Sin(h/4)*3,
				"humidity":    60 + e.Float()*20 + math.Cos(h/6)*10,
			},
		})
	}
	return out
}

// AirQualityHistory builds 20 one-minute points ending at now.
func (e *Engine) AirQualityHistory(now time.Time) []models.TimePoint {
	out := make([]models.TimePoint, 0, airQualityHistoryLen)
	for i := 0; i < airQualityHistoryLen; i++ {
		at := now.Add(-time.Duration(airQualityHistoryLen-1-i) * time.Minute)
		out = append(out, models.TimePoint{
			Time: at.Format(labelLayout),
			Values: map[string]float64{
				"quality": 70 + e.Float()*25,
				"co2":     400 + e.Float()*200,
				"nh3":     1 + e.Float()*3,
			},
		})
	}
	return out
}

// ActivityHistory builds 24 hourly activity points ending at now.
func (e *Engine) ActivityHistory(now time.Time) []models.TimePoint {
	out := make([]models.TimePoint, 0, activityHistoryLen)
	for i := activityHistoryLen - 1; i >= 0; i-- {
		at := now.Add(-time.Duration(i) * time.Hour)
		out = append(out, models.TimePoint{
			Time: at.Format(labelLayout),
			Values: map[string]float64{
				"activity":   float64(20 + e.IntN(60)),
				"detections": float64(5 + e.IntN(15)),
				"peaks":      float64(2 + e.IntN(8)),
			},
		})
	}
	return out
}

// Slide appends p to window and drops the oldest points beyond capacity.
func Slide(window []models.TimePoint, p models.TimePoint, capacity int) []models.TimePoint {
	window = append(window, p)
	if over := len(window) - capacity; over > 0 {
		window = append(window[:0:0], window[over:]...)
	}
	return window
}
