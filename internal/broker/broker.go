// Package broker embeds an MQTT broker that republishes farm telemetry and alerts.
package broker

import (
	"bytes"
	"encoding/json"
	"fmt"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/models"

	mqtt "github.com/mochi-mqtt/server/v2"
	"github.com/mochi-mqtt/server/v2/hooks/auth"
	"github.com/mochi-mqtt/server/v2/listeners"
	"github.com/mochi-mqtt/server/v2/packets"
)

// Topics.
const (
	TopicTelemetry = "farm/telemetry"
	TopicAlerts    = "farm/alerts"
)

const listenerID = "tcp1"

// Broker is an embedded MQTT server. Dashboards and tools subscribe to it;
// only the process itself publishes.
type Broker struct {
	server *mqtt.Server
	log    *logger.Logger
}

// New builds a broker listening on address. An empty address skips the TCP
// listener so only inline subscribers see messages.
func New(address string, log *logger.Logger) (*Broker, error) {
	server := mqtt.New(&mqtt.Options{InlineClient: true})

	if err := server.AddHook(new(auth.AllowHook), nil); err != nil {
		return nil, fmt.Errorf("add auth hook: %w", err)
	}
	if err := server.AddHook(&connectionHook{log: log}, nil); err != nil {
		return nil, fmt.Errorf("add connection hook: %w", err)
	}

	if address != "" {
		tcp := listeners.NewTCP(listeners.Config{ID: listenerID, Address: address})
		if err := server.AddListener(tcp); err != nil {
			return nil, fmt.Errorf("add tcp listener on %s: %w", address, err)
		}
	}

	return &Broker{server: server, log: log}, nil
}

// Start begins serving. It does not block.
func (b *Broker) Start() error {
	if err := b.server.Serve(); err != nil {
		return fmt.Errorf("serve mqtt: %w", err)
	}
	return nil
}

// Close stops all listeners and disconnects clients.
func (b *Broker) Close() error {
	return b.server.Close()
}

// PublishTelemetry publishes st as the retained telemetry snapshot.
func (b *Broker) PublishTelemetry(st models.FarmState) error {
	return b.publish(TopicTelemetry, st, true)
}

// PublishAlert publishes a newly raised alert.
func (b *Broker) PublishAlert(a models.Alert) error {
	return b.publish(TopicAlerts, a, false)
}

func (b *Broker) publish(topic string, v any, retain bool) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	if err := b.server.Publish(topic, payload, retain, 0); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe registers an inline subscriber on filter.
func (b *Broker) Subscribe(filter string, id int, fn func(topic string, payload []byte)) error {
	return b.server.Subscribe(filter, id, func(_ *mqtt.Client, _ packets.Subscription, pk packets.Packet) {
		fn(pk.TopicName, pk.Payload)
	})
}

// connectionHook logs client connects and disconnects.
type connectionHook struct {
	mqtt.HookBase
	log *logger.Logger
}

func (h *connectionHook) ID() string { return "connection-log" }

func (h *connectionHook) Provides(b byte) bool {
	return bytes.Contains([]byte{
		mqtt.OnConnect,
		mqtt.OnDisconnect,
	}, []byte{b})
}

func (h *connectionHook) OnConnect(cl *mqtt.Client, _ packets.Packet) error {
	if h.log != nil {
		h.log.Infow("mqtt_client_connected", "client_id", cl.ID)
	}
	return nil
}

func (h *connectionHook) OnDisconnect(cl *mqtt.Client, err error, expire bool) {
	if h.log != nil {
		h.log.Infow("mqtt_client_disconnected", "client_id", cl.ID, "err", err, "expire", expire)
	}
}
