package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/metrics"
	"poultry_monitor/internal/models"
	"poultry_monitor/internal/repository"
	"poultry_monitor/internal/simulation"
)

// DefaultTelemetryTick is used when Run is given a non-positive interval.
const DefaultTelemetryTick = 5 * time.Second

// SimulatorService is the single owner of the farm state. Readers only ever
// see copies through the state repository.
type SimulatorService struct {
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	engine    *simulation.Engine
	publisher Publisher
	log       *logger.Logger

	mu sync.Mutex // serializes Seed and Step
}

// NewSimulatorService returns a simulator drawing from engine.
func NewSimulatorService(stateRepo repository.StateRepo, eventRepo repository.EventRepo, engine *simulation.Engine, pub Publisher, log *logger.Logger) *SimulatorService {
	return &SimulatorService{
		stateRepo: stateRepo,
		eventRepo: eventRepo,
		engine:    engine,
		publisher: pub,
		log:       log,
	}
}

// Seed stores the starting farm state unless one exists already.
func (s *SimulatorService) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.loadOrSeed(ctx, time.Now())
	return err
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultTelemetryTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if err := s.Step(ctx, now); err != nil {
				s.log.Errorw("simulation_tick_failed", "err", err)
			}
		}
	}
}

// Step applies one telemetry tick at now.
func (s *SimulatorService) Step(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.loadOrSeed(ctx, now)
	if err != nil {
		return err
	}
	changes := s.engine.Step(&st, now)
	if err := s.stateRepo.Save(ctx, st); err != nil {
		return fmt.Errorf("save farm state: %w", err)
	}

	for _, ch := range changes {
		s.journalDeviceChange(ctx, st.Devices, ch, now)
	}
	metrics.RecordTick(len(changes))
	metrics.RecordFarmState(st)
	if err := s.publisher.PublishTelemetry(st); err != nil {
		s.log.Warnw("telemetry_publish_failed", "tick", st.Tick, "err", err)
	}
	return nil
}

func (s *SimulatorService) loadOrSeed(ctx context.Context, now time.Time) (models.FarmState, error) {
	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.FarmState{}, fmt.Errorf("load farm state: %w", err)
	}
	if !st.IsZero() {
		return st, nil
	}
	st = s.engine.Seed(now)
	if err := s.stateRepo.Save(ctx, st); err != nil {
		return models.FarmState{}, fmt.Errorf("save seed state: %w", err)
	}
	metrics.RecordFarmState(st)
	s.log.Infow("farm_state_seeded", "devices", len(st.Devices))
	return st, nil
}

func (s *SimulatorService) journalDeviceChange(ctx context.Context, devices []models.Device, ch simulation.DeviceChange, now time.Time) {
	name := ch.DeviceID
	for _, d := range devices {
		if d.ID == ch.DeviceID {
			name = d.Name
			break
		}
	}
	err := s.eventRepo.Append(ctx, models.FarmEvent{
		OccurredAt:  now,
		Type:        models.EventDeviceStatus,
		Description: fmt.Sprintf("%s is now %s", name, ch.To),
		Metadata:    map[string]any{"device_id": ch.DeviceID, "from": ch.From, "to": ch.To},
	})
	if err != nil {
		s.log.Errorw("device_journal_failed", "device_id", ch.DeviceID, "err", err)
	}
}
