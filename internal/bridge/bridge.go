package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nfarrant/obs-chat-core/internal/infrastructure/mqtt"
	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

// Default bridge settings used when Options leave them zero.
const (
	defaultCommandTimeout = 5 * time.Second
	defaultQueueSize      = 32
)

// MQTTClient is the broker surface the bridge needs. Satisfied by
// *mqtt.Client; tests substitute a fake.
type MQTTClient interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	IsConnected() bool
}

// Controller is the control surface the bridge drives. Satisfied by
// *control.Controller.
type Controller interface {
	Version(ctx context.Context) (obsws.VersionInfo, error)

	Scenes(ctx context.Context) ([]string, error)
	CurrentScene(ctx context.Context) (string, error)
	ChangeScene(ctx context.Context, name string) (bool, error)

	ListSources(ctx context.Context) ([]string, error)
	ToggleSource(ctx context.Context, name string) (bool, error)
	InputNames(ctx context.Context) ([]string, error)

	Mute(ctx context.Context, name string) (bool, error)
	Unmute(ctx context.Context, name string) (bool, error)
	ToggleMute(ctx context.Context, name string) (bool, error)
	MuteAll(ctx context.Context, except []string) error
	UnmuteAll(ctx context.Context, only []string) error
	MuteAllBut(ctx context.Context, keep []string) error

	StartRecord(ctx context.Context) error
	StopRecord(ctx context.Context) error
	StartStream(ctx context.Context) error
	StopStream(ctx context.Context) error
}

// MetricsWriter records per-command telemetry. Satisfied by
// *influxdb.Client; may be nil when telemetry is disabled.
type MetricsWriter interface {
	WriteCommandMetric(command, user string, ok bool, duration time.Duration)
	WriteQueueDepth(depth int)
}

// Logger is the logging surface the bridge uses.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Options configures a Bridge.
type Options struct {
	MQTT       MQTTClient
	Controller Controller

	// Metrics is optional; nil disables telemetry.
	Metrics MetricsWriter

	Logger Logger

	// CommandTimeout bounds each command's OBS work. Default: 5s.
	CommandTimeout time.Duration

	// QueueSize bounds commands waiting for the worker. Default: 32.
	QueueSize int

	// QoS used for the command subscription and ack publishes.
	QoS byte
}

// Bridge consumes chat commands from MQTT and executes them against the
// controller, one at a time.
type Bridge struct {
	mqtt    MQTTClient
	ctrl    Controller
	metrics MetricsWriter
	logger  Logger

	timeout time.Duration
	qos     byte

	queue chan CommandMessage

	ctx       context.Context
	ctxCancel context.CancelFunc
	done      chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// New creates a bridge. Call Start to begin consuming commands.
func New(opts Options) (*Bridge, error) {
	if opts.MQTT == nil {
		return nil, fmt.Errorf("bridge: MQTT client is required")
	}
	if opts.Controller == nil {
		return nil, fmt.Errorf("bridge: controller is required")
	}
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = defaultCommandTimeout
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Bridge{
		mqtt:      opts.MQTT,
		ctrl:      opts.Controller,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		timeout:   opts.CommandTimeout,
		qos:       opts.QoS,
		queue:     make(chan CommandMessage, opts.QueueSize),
		ctx:       ctx,
		ctxCancel: cancel,
		done:      make(chan struct{}),
	}, nil
}

// Start subscribes to the chat command topic and starts the worker.
func (b *Bridge) Start() error {
	topic := mqtt.Topics{}.ChatCommand()
	if err := b.mqtt.Subscribe(topic, b.qos, b.handleMessage); err != nil {
		return fmt.Errorf("bridge: subscribe to %s: %w", topic, err)
	}

	b.wg.Add(1)
	go b.worker()

	b.logInfo("bridge started", "topic", topic, "queue_size", cap(b.queue))
	return nil
}

// Stop shuts the bridge down: the in-flight command is cancelled, queued
// commands are drained with failed acks, and the worker exits.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		close(b.done)
		b.ctxCancel()
		b.wg.Wait()

		// Commands still queued at shutdown will never run.
		for {
			select {
			case cmd := <-b.queue:
				b.publishAck(cmd, AckFailed, "bridge shutting down")
			default:
				b.logInfo("bridge stopped")
				return
			}
		}
	})
}

// handleMessage parses an incoming chat command and enqueues it. It runs on
// the MQTT client's goroutine and must not block, so a full queue drops the
// command with a failed ack.
func (b *Bridge) handleMessage(topic string, payload []byte) error {
	var cmd CommandMessage
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return fmt.Errorf("parsing command from %s: %w", topic, err)
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	select {
	case b.queue <- cmd:
		b.logDebug("command queued",
			"command_id", cmd.ID,
			"command", cmd.Command,
			"user", cmd.User,
		)
	default:
		b.logWarn("command dropped, queue full",
			"command_id", cmd.ID,
			"command", cmd.Command,
		)
		b.publishAck(cmd, AckFailed, "command queue full")
	}

	if b.metrics != nil {
		b.metrics.WriteQueueDepth(len(b.queue))
	}
	return nil
}

// worker drains the queue. It is the only goroutine that touches the
// controller, which keeps command traffic on the single OBS connection
// strictly sequential.
func (b *Bridge) worker() {
	defer b.wg.Done()

	for {
		select {
		case <-b.done:
			return
		case cmd := <-b.queue:
			b.execute(cmd)
		}
	}
}

// execute runs one command under the per-command deadline and publishes
// its acknowledgement. Deadline expiry is a failure; the command is never
// retried because toggles are not idempotent.
func (b *Bridge) execute(cmd CommandMessage) {
	ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()

	start := time.Now()
	detail, err := b.dispatch(ctx, cmd)
	elapsed := time.Since(start)

	if err != nil {
		b.logWarn("command failed",
			"command_id", cmd.ID,
			"command", cmd.Command,
			"user", cmd.User,
			"duration_ms", elapsed.Milliseconds(),
			"error", err,
		)
		b.publishAck(cmd, AckFailed, err.Error())
	} else {
		b.logInfo("command executed",
			"command_id", cmd.ID,
			"command", cmd.Command,
			"user", cmd.User,
			"duration_ms", elapsed.Milliseconds(),
		)
		b.publishAck(cmd, AckOK, detail)
	}

	if b.metrics != nil {
		b.metrics.WriteCommandMetric(cmd.Command, cmd.User, err == nil, elapsed)
	}
}

// publishAck sends exactly one acknowledgement for a command.
func (b *Bridge) publishAck(cmd CommandMessage, status, detail string) {
	payload, err := NewAck(cmd, status, detail).Marshal()
	if err != nil {
		b.logError("marshal ack", "command_id", cmd.ID, "error", err)
		return
	}
	if err := b.mqtt.Publish(mqtt.Topics{}.ChatAck(), payload, b.qos, false); err != nil {
		b.logError("publish ack", "command_id", cmd.ID, "error", err)
	}
}

func (b *Bridge) logDebug(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

func (b *Bridge) logInfo(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Info(msg, args...)
	}
}

func (b *Bridge) logWarn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}

func (b *Bridge) logError(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Error(msg, args...)
	}
}
