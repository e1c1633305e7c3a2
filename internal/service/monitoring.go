package service

import (
	"context"
	"errors"
	"time"

	"poultry_monitor/internal/models"
	"poultry_monitor/internal/repository"
	"poultry_monitor/internal/simulation"
)

// ErrNoSnapshot is returned before the simulator has seeded the farm state.
var ErrNoSnapshot = errors.New("farm state not initialized yet")

type MonitoringService struct {
	stateRepo repository.StateRepo
	now       func() time.Time
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo, now: time.Now}
}

// Snapshot returns a deep copy of the latest farm state.
func (s *MonitoringService) Snapshot(ctx context.Context) (models.FarmState, error) {
	return loadState(ctx, s.stateRepo)
}

// ClimateSummary returns climate readings with trends against the reference values.
func (s *MonitoringService) ClimateSummary(ctx context.Context) (ClimateSummary, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return ClimateSummary{}, err
	}
	c := st.Climate
	return ClimateSummary{
		TemperatureC:     c.TemperatureC,
		HumidityPct:      c.HumidityPct,
		AirQualityPct:    c.AirQualityPct,
		TemperatureTrend: simulation.TrendOf(c.TemperatureC, simulation.ReferenceTemperatureC),
		HumidityTrend:    simulation.TrendOf(c.HumidityPct, simulation.ReferenceHumidityPct),
		AirQualityTrend:  simulation.TrendOf(c.AirQualityPct, simulation.ReferenceAirQuality),
		LightSensors:     levelViews(c.LightSensors),
		UpdatedAt:        st.UpdatedAt,
	}, nil
}

// SupplySummary returns tank and silo levels with averages and totals.
func (s *MonitoringService) SupplySummary(ctx context.Context) (SupplySummary, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return SupplySummary{}, err
	}
	out := SupplySummary{
		WaterTanks: levelViews(st.Supply.WaterTanks),
		FeedSilos:  levelViews(st.Supply.FeedSilos),
		UpdatedAt:  st.UpdatedAt,
	}
	out.WaterTotal, out.WaterCapacity, out.WaterAvgPct = aggregate(st.Supply.WaterTanks)
	out.FeedTotal, out.FeedCapacity, out.FeedAvgPct = aggregate(st.Supply.FeedSilos)
	out.LowLevels = countLow(out.WaterTanks) + countLow(out.FeedSilos)
	return out, nil
}

// MotionSummary returns activity, noise and detection zone data.
func (s *MonitoringService) MotionSummary(ctx context.Context) (MotionSummary, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return MotionSummary{}, err
	}
	m := st.Motion
	since := int64(0)
	if !m.LastDetection.IsZero() {
		since = int64(s.now().Sub(m.LastDetection) / time.Second)
		if since < 0 {
			since = 0
		}
	}
	return MotionSummary{
		ActivityPct:           m.ActivityPct,
		ActivityBand:          simulation.ActivityBand(m.ActivityPct),
		ActiveZones:           m.ActiveZones,
		NoiseDB:               m.NoiseDB,
		LastDetection:         m.LastDetection,
		SecondsSinceDetection: since,
		Zones:                 m.Zones,
		ActivityWindow:        m.ActivityWindow,
		NoiseWindow:           m.NoiseWindow,
		ActivityHistory:       st.ActivityHistory,
		UpdatedAt:             st.UpdatedAt,
	}, nil
}

// History returns the chart series generated at seed time.
func (s *MonitoringService) History(ctx context.Context) (History, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return History{}, err
	}
	return History{
		TemperatureHistory: st.TemperatureHistory,
		AirQualityHistory:  st.AirQualityHistory,
		ActivityHistory:    st.ActivityHistory,
	}, nil
}

func loadState(ctx context.Context, repo repository.StateRepo) (models.FarmState, error) {
	st, err := repo.Load(ctx)
	if err != nil {
		return models.FarmState{}, err
	}
	if st.IsZero() {
		return models.FarmState{}, ErrNoSnapshot
	}
	return st, nil
}

func levelViews(in []models.Reading) []LevelView {
	out := make([]LevelView, 0, len(in))
	for _, r := range in {
		pct := simulation.Percent(r.Value, r.Max)
		out = append(out, LevelView{Reading: r, Percent: pct, Band: simulation.LevelBand(pct)})
	}
	return out
}

func countLow(views []LevelView) int {
	n := 0
	for _, v := range views {
		if v.Band == simulation.LevelLow {
			n++
		}
	}
	return n
}

// aggregate returns the summed value and capacity and the mean fill percentage.
func aggregate(in []models.Reading) (total, capacity, avgPct float64) {
	if len(in) == 0 {
		return 0, 0, 0
	}
	var pctSum float64
	for _, r := range in {
		total += r.Value
		capacity += r.Max
		pctSum += simulation.Percent(r.Value, r.Max)
	}
	return total, capacity, pctSum / float64(len(in))
}
