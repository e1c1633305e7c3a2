package simulation

import "math"

// Level bands for tanks and silos.
const (
	LevelOptimal = "optimal"
	LevelMedium  = "medium"
	LevelLow     = "low"
)

// Activity bands for motion.
const (
	ActivityHigh    = "high"
	ActivityNormal  = "normal"
	ActivityLow     = "low"
	ActivityVeryLow = "very_low"
)

// Trend directions.
const (
	TrendUp      = "positive"
	TrendDown    = "negative"
	TrendNeutral = "neutral"
)

// Climate reference values the dashboard compares current readings against.
const (
	ReferenceTemperatureC = 23.5
	ReferenceHumidityPct  = 72.0
	ReferenceAirQuality   = 82.0
)

// LevelBand classifies a fill percentage.
func LevelBand(pct float64) string {
	switch {
	case pct > 70:
		return LevelOptimal
	case pct > 30:
		return LevelMedium
	default:
		return LevelLow
	}
}

// ActivityBand classifies an activity percentage.
func ActivityBand(pct float64) string {
	switch {
	case pct > 70:
		return ActivityHigh
	case pct > 40:
		return ActivityNormal
	case pct > 20:
		return ActivityLow
	default:
		return ActivityVeryLow
	}
}

// Trend is the relative change of a reading against its reference.
type Trend struct {
	Percent   float64 `json:"percent"`
	Direction string  `json:"direction"`
}

// TrendOf returns the percent change of current vs previous rounded to one
// decimal. Changes under 1% are reported as neutral.
func TrendOf(current, previous float64) Trend {
	if previous == 0 {
		return Trend{Direction: TrendNeutral}
	}
	diff := (current - previous) / previous * 100
	if math.Abs(diff) < 1 {
		return Trend{Direction: TrendNeutral}
	}
	dir := TrendDown
	if diff > 0 {
		dir = TrendUp
	}
	return Trend{Percent: math.Round(diff*10) / 10, Direction: dir}
}

// Percent returns value as a share of max, 0 when max is not positive.
func Percent(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return value / max * 100
}
