package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nfarrant/obs-chat-core/internal/infrastructure/mqtt"
	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

// fakeMQTT records subscriptions and publishes. Acks published to the ack
// topic are decoded onto a channel so tests can wait for them.
type fakeMQTT struct {
	mu       sync.Mutex
	handlers map[string]mqtt.MessageHandler
	acks     chan AckMessage
}

func newFakeMQTT() *fakeMQTT {
	return &fakeMQTT{
		handlers: map[string]mqtt.MessageHandler{},
		acks:     make(chan AckMessage, 16),
	}
}

func (f *fakeMQTT) Publish(topic string, payload []byte, _ byte, _ bool) error {
	if topic == (mqtt.Topics{}).ChatAck() {
		var ack AckMessage
		if err := json.Unmarshal(payload, &ack); err != nil {
			return err
		}
		f.acks <- ack
	}
	return nil
}

func (f *fakeMQTT) Subscribe(topic string, _ byte, handler mqtt.MessageHandler) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[topic] = handler
	return nil
}

func (f *fakeMQTT) IsConnected() bool { return true }

func (f *fakeMQTT) commandHandler(t *testing.T) mqtt.MessageHandler {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.handlers[(mqtt.Topics{}).ChatCommand()]
	if !ok {
		t.Fatal("bridge did not subscribe to the command topic")
	}
	return h
}

func (f *fakeMQTT) waitAck(t *testing.T) AckMessage {
	t.Helper()
	select {
	case ack := <-f.acks:
		return ack
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ack")
		return AckMessage{}
	}
}

// fakeController records calls and returns scripted results.
type fakeController struct {
	mu    sync.Mutex
	calls []string

	scenes      []string
	changeOK    bool
	muteOK      bool
	blockChange bool
}

func (f *fakeController) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeController) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeController) Version(context.Context) (obsws.VersionInfo, error) {
	f.record("version")
	return obsws.VersionInfo{OBSVersion: "30.0.0", WebSocketVersion: "5.3.4"}, nil
}

func (f *fakeController) Scenes(context.Context) ([]string, error) {
	f.record("scenes")
	return f.scenes, nil
}

func (f *fakeController) CurrentScene(context.Context) (string, error) {
	f.record("current_scene")
	return "Live", nil
}

func (f *fakeController) ChangeScene(ctx context.Context, name string) (bool, error) {
	f.record("change_scene:" + name)
	if f.blockChange {
		<-ctx.Done()
		return false, ctx.Err()
	}
	return f.changeOK, nil
}

func (f *fakeController) ListSources(context.Context) ([]string, error) {
	f.record("list_sources")
	return []string{"Webcam", "Mic"}, nil
}

func (f *fakeController) ToggleSource(_ context.Context, name string) (bool, error) {
	f.record("toggle_source:" + name)
	return true, nil
}

func (f *fakeController) InputNames(context.Context) ([]string, error) {
	f.record("input_names")
	return []string{"Mic", "Desktop"}, nil
}

func (f *fakeController) Mute(_ context.Context, name string) (bool, error) {
	f.record("mute:" + name)
	return f.muteOK, nil
}

func (f *fakeController) Unmute(_ context.Context, name string) (bool, error) {
	f.record("unmute:" + name)
	return f.muteOK, nil
}

func (f *fakeController) ToggleMute(_ context.Context, name string) (bool, error) {
	f.record("togglemute:" + name)
	return f.muteOK, nil
}

func (f *fakeController) MuteAll(_ context.Context, except []string) error {
	f.record("muteall:" + strings.Join(except, ","))
	return nil
}

func (f *fakeController) UnmuteAll(_ context.Context, only []string) error {
	f.record("unmuteall:" + strings.Join(only, ","))
	return nil
}

func (f *fakeController) MuteAllBut(_ context.Context, keep []string) error {
	f.record("muteallbut:" + strings.Join(keep, ","))
	return nil
}

func (f *fakeController) StartRecord(context.Context) error { f.record("start_record"); return nil }
func (f *fakeController) StopRecord(context.Context) error  { f.record("stop_record"); return nil }
func (f *fakeController) StartStream(context.Context) error { f.record("start_stream"); return nil }
func (f *fakeController) StopStream(context.Context) error  { f.record("stop_stream"); return nil }

func startTestBridge(t *testing.T, opts Options) (*Bridge, *fakeMQTT, *fakeController) {
	t.Helper()

	fm := newFakeMQTT()
	fc := &fakeController{changeOK: true, muteOK: true, scenes: []string{"Live", "BRB"}}
	opts.MQTT = fm
	opts.Controller = fc

	b, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(b.Stop)

	return b, fm, fc
}

func sendCommand(t *testing.T, fm *fakeMQTT, cmd CommandMessage) {
	t.Helper()
	payload, err := json.Marshal(cmd)
	if err != nil {
		t.Fatalf("marshal command: %v", err)
	}
	if err := fm.commandHandler(t)((mqtt.Topics{}).ChatCommand(), payload); err != nil {
		t.Fatalf("handler error = %v", err)
	}
}

func TestBridge_ExecutesCommand(t *testing.T) {
	_, fm, fc := startTestBridge(t, Options{})

	sendCommand(t, fm, CommandMessage{ID: "c1", User: "viewer", Command: "mute", Args: []string{"Mic"}})

	ack := fm.waitAck(t)
	if ack.CommandID != "c1" || ack.Status != AckOK {
		t.Errorf("ack = %+v, want ok for c1", ack)
	}

	calls := fc.callList()
	if len(calls) != 1 || calls[0] != "mute:Mic" {
		t.Errorf("controller calls = %v", calls)
	}
}

func TestBridge_MultiWordNames(t *testing.T) {
	_, fm, fc := startTestBridge(t, Options{})

	sendCommand(t, fm, CommandMessage{ID: "c1", Command: "toggle", Args: []string{"Starting", "Soon"}})
	fm.waitAck(t)

	calls := fc.callList()
	if len(calls) != 1 || calls[0] != "toggle_source:Starting Soon" {
		t.Errorf("controller calls = %v", calls)
	}
}

func TestBridge_UnknownCommand(t *testing.T) {
	_, fm, _ := startTestBridge(t, Options{})

	sendCommand(t, fm, CommandMessage{ID: "c1", Command: "explode"})

	ack := fm.waitAck(t)
	if ack.Status != AckFailed {
		t.Errorf("ack status = %q, want failed", ack.Status)
	}
	if !strings.Contains(ack.Detail, "unknown command") {
		t.Errorf("ack detail = %q", ack.Detail)
	}
}

func TestBridge_FailedOperationAck(t *testing.T) {
	fm := newFakeMQTT()
	fc := &fakeController{changeOK: false}
	b, err := New(Options{MQTT: fm, Controller: fc})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(b.Stop)

	sendCommand(t, fm, CommandMessage{ID: "c1", Command: "scene", Args: []string{"Missing"}})

	ack := fm.waitAck(t)
	if ack.Status != AckFailed {
		t.Errorf("ack status = %q, want failed", ack.Status)
	}
	if !strings.Contains(ack.Detail, "not found") {
		t.Errorf("ack detail = %q", ack.Detail)
	}
}

func TestBridge_QueueFullDropsWithAck(t *testing.T) {
	fm := newFakeMQTT()
	fc := &fakeController{}
	b, err := New(Options{MQTT: fm, Controller: fc, QueueSize: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// The worker is deliberately not started: the queue fills up.
	if err := fm.Subscribe((mqtt.Topics{}).ChatCommand(), 0, b.handleMessage); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	sendCommand(t, fm, CommandMessage{ID: "c1", Command: "mute", Args: []string{"Mic"}})
	sendCommand(t, fm, CommandMessage{ID: "c2", Command: "mute", Args: []string{"Mic"}})

	ack := fm.waitAck(t)
	if ack.CommandID != "c2" || ack.Status != AckFailed {
		t.Errorf("ack = %+v, want failed for c2", ack)
	}
	if !strings.Contains(ack.Detail, "queue full") {
		t.Errorf("ack detail = %q", ack.Detail)
	}
	if len(fc.callList()) != 0 {
		t.Errorf("controller was called from the MQTT handler")
	}
}

func TestBridge_CommandDeadline(t *testing.T) {
	fm := newFakeMQTT()
	fc := &fakeController{blockChange: true}
	b, err := New(Options{MQTT: fm, Controller: fc, CommandTimeout: 20 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(b.Stop)

	sendCommand(t, fm, CommandMessage{ID: "c1", Command: "scene", Args: []string{"Live"}})

	ack := fm.waitAck(t)
	if ack.Status != AckFailed {
		t.Errorf("ack status = %q, want failed on deadline expiry", ack.Status)
	}

	// The command ran once; expiry never triggers a retry.
	if calls := fc.callList(); len(calls) != 1 {
		t.Errorf("controller calls = %v, want exactly one", calls)
	}
}

func TestBridge_StopDrainsQueue(t *testing.T) {
	fm := newFakeMQTT()
	fc := &fakeController{}
	b, err := New(Options{MQTT: fm, Controller: fc, QueueSize: 4})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	// Worker never started; enqueue directly, then stop.
	b.queue <- CommandMessage{ID: "c1", Command: "mute"}
	b.queue <- CommandMessage{ID: "c2", Command: "mute"}

	b.Stop()

	for _, want := range []string{"c1", "c2"} {
		ack := fm.waitAck(t)
		if ack.CommandID != want || ack.Status != AckFailed {
			t.Errorf("ack = %+v, want failed for %s", ack, want)
		}
	}
}

func TestBridge_MalformedPayload(t *testing.T) {
	_, fm, fc := startTestBridge(t, Options{})

	handler := fm.commandHandler(t)
	if err := handler((mqtt.Topics{}).ChatCommand(), []byte("{not json")); err == nil {
		t.Error("handler accepted malformed JSON")
	}
	if err := handler((mqtt.Topics{}).ChatCommand(), []byte(`{"id":"","command":"mute"}`)); err == nil {
		t.Error("handler accepted command without id")
	}
	if len(fc.callList()) != 0 {
		t.Error("controller was called for invalid messages")
	}
}

func TestBridge_BatchCommands(t *testing.T) {
	tests := []struct {
		cmd      CommandMessage
		wantCall string
	}{
		{CommandMessage{ID: "1", Command: "solo", Args: []string{"Mic"}}, "muteallbut:Mic"},
		{CommandMessage{ID: "2", Command: "muteall"}, "muteall:"},
		{CommandMessage{ID: "3", Command: "muteall", Args: []string{"Mic"}}, "muteall:Mic"},
		{CommandMessage{ID: "4", Command: "unmuteall"}, "unmuteall:"},
		{CommandMessage{ID: "5", Command: "record", Args: []string{"start"}}, "start_record"},
		{CommandMessage{ID: "6", Command: "stream", Args: []string{"stop"}}, "stop_stream"},
	}

	_, fm, fc := startTestBridge(t, Options{})

	for _, tt := range tests {
		sendCommand(t, fm, tt.cmd)
		ack := fm.waitAck(t)
		if ack.Status != AckOK {
			t.Errorf("%s: ack = %+v", tt.cmd.Command, ack)
		}
	}

	calls := fc.callList()
	for i, tt := range tests {
		if calls[i] != tt.wantCall {
			t.Errorf("call %d = %q, want %q", i, calls[i], tt.wantCall)
		}
	}
}

// metricsRecorder captures telemetry writes.
type metricsRecorder struct {
	mu       sync.Mutex
	commands []string
}

func (m *metricsRecorder) WriteCommandMetric(command, user string, ok bool, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands = append(m.commands, fmt.Sprintf("%s/%s/%v", command, user, ok))
}

func (m *metricsRecorder) WriteQueueDepth(int) {}

func TestBridge_Telemetry(t *testing.T) {
	rec := &metricsRecorder{}
	_, fm, _ := startTestBridge(t, Options{Metrics: rec})

	sendCommand(t, fm, CommandMessage{ID: "c1", User: "viewer", Command: "version"})
	fm.waitAck(t)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.commands) != 1 || rec.commands[0] != "version/viewer/true" {
		t.Errorf("telemetry = %v", rec.commands)
	}
}
