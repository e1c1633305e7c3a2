package service

import (
	"context"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/simulation"
)

// DefaultAlertTick is used when Run is given a non-positive interval.
const DefaultAlertTick = 10 * time.Second

// AlertFeedService raises a synthetic alert on some ticks.
type AlertFeedService struct {
	alerts Alerts
	engine *simulation.Engine
	log    *logger.Logger
}

func NewAlertFeedService(alerts Alerts, engine *simulation.Engine, log *logger.Logger) *AlertFeedService {
	return &AlertFeedService{alerts: alerts, engine: engine, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *AlertFeedService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultAlertTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if _, err := s.Tick(ctx, now); err != nil {
				s.log.Errorw("alert_feed_tick_failed", "err", err)
			}
		}
	}
}

// Tick rolls one alert tick and reports whether an alert was raised.
func (s *AlertFeedService) Tick(ctx context.Context, now time.Time) (bool, error) {
	a, ok := s.engine.NextAlert(now)
	if !ok {
		return false, nil
	}
	if err := s.alerts.Raise(ctx, a); err != nil {
		return false, err
	}
	s.log.Debugw("alert_raised", "id", a.ID, "severity", a.Severity)
	return true, nil
}
