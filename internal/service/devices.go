package service

import (
	"context"
	"errors"

	"poultry_monitor/internal/models"
	"poultry_monitor/internal/repository"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceService reads the device registry out of the farm state.
type DeviceService struct {
	stateRepo repository.StateRepo
}

func NewDeviceService(stateRepo repository.StateRepo) *DeviceService {
	return &DeviceService{stateRepo: stateRepo}
}

func (s *DeviceService) ListDevices(ctx context.Context) ([]models.Device, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return nil, err
	}
	return st.Devices, nil
}

func (s *DeviceService) GetDevice(ctx context.Context, id string) (models.Device, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return models.Device{}, err
	}
	for _, d := range st.Devices {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Device{}, ErrDeviceNotFound
}

// DeviceCounts counts devices per status. Uptime treats warning devices as up.
func (s *DeviceService) DeviceCounts(ctx context.Context) (DeviceCounts, error) {
	st, err := loadState(ctx, s.stateRepo)
	if err != nil {
		return DeviceCounts{}, err
	}
	return countDevices(st.Devices), nil
}

func countDevices(devices []models.Device) DeviceCounts {
	var c DeviceCounts
	for _, d := range devices {
		switch d.Status {
		case models.DeviceOnline:
			c.Online++
		case models.DeviceOffline:
			c.Offline++
		case models.DeviceWarning:
			c.Warning++
		}
	}
	c.Total = len(devices)
	if c.Total > 0 {
		c.UptimePct = float64(c.Online+c.Warning) / float64(c.Total) * 100
	}
	return c
}
