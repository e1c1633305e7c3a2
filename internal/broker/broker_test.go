package broker

import (
	"encoding/json"
	"testing"
	"time"

	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	topic   string
	payload []byte
}

func TestBroker_PublishesToInlineSubscribers(t *testing.T) {
	b, err := New("", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, b.Start())
	t.Cleanup(func() { _ = b.Close() })

	got := make(chan message, 4)
	require.NoError(t, b.Subscribe("farm/#", 1, func(topic string, payload []byte) {
		got <- message{topic: topic, payload: payload}
	}))

	require.NoError(t, b.PublishTelemetry(models.FarmState{Tick: 7}))
	require.NoError(t, b.PublishAlert(models.Alert{ID: "a1", Severity: models.SeverityWarning}))

	seen := map[string][]byte{}
	for len(seen) < 2 {
		select {
		case m := <-got:
			seen[m.topic] = m.payload
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out, got topics %v", seen)
		}
	}

	var st models.FarmState
	require.NoError(t, json.Unmarshal(seen[TopicTelemetry], &st))
	assert.Equal(t, uint64(7), st.Tick)

	var a models.Alert
	require.NoError(t, json.Unmarshal(seen[TopicAlerts], &a))
	assert.Equal(t, "a1", a.ID)
}

func TestConnectionHookProvides(t *testing.T) {
	h := &connectionHook{}
	assert.Equal(t, "connection-log", h.ID())
	assert.False(t, h.Provides(0xff))
}
