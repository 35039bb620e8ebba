package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteCommandMetric records one executed chat command.
//
// The write is non-blocking; data is batched and sent asynchronously.
// Tags are low-cardinality (command name, user, outcome); the measured
// value is the command's wall-clock duration.
//
// Example:
//
//	client.WriteCommandMetric("mute", "moobot", true, 42*time.Millisecond)
func (c *Client) WriteCommandMetric(command, user string, ok bool, duration time.Duration) {
	if !c.IsConnected() {
		return
	}

	outcome := "ok"
	if !ok {
		outcome = "failed"
	}

	point := write.NewPoint(
		"chat_commands",
		map[string]string{
			"command": command,
			"user":    user,
			"outcome": outcome,
		},
		map[string]interface{}{
			"duration_ms": float64(duration.Milliseconds()),
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteQueueDepth records the bridge's command queue depth.
//
// Sampled on every enqueue; a persistently deep queue means chat is
// issuing commands faster than OBS can service them.
func (c *Client) WriteQueueDepth(depth int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"bridge_queue",
		nil,
		map[string]interface{}{
			"depth": depth,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}
