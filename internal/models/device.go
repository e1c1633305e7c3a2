package models

// DeviceStatus is the flat status enum of a simulated device.
type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "online"
	DeviceOffline DeviceStatus = "offline"
	DeviceWarning DeviceStatus = "warning"
)

// DeviceStatuses lists every status in a stable order.
var DeviceStatuses = []DeviceStatus{DeviceOnline, DeviceOffline, DeviceWarning}

// Device describes one simulated sensor or actuator.
type Device struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Status DeviceStatus `json:"status"`
	Type   string       `json:"type"` // temperature | humidity | light | water | motion
}
