package bridge

import (
	"encoding/json"
	"fmt"
	"time"
)

// Ack status values.
const (
	AckOK     = "ok"
	AckFailed = "failed"
)

// CommandMessage is a parsed chat command published by the chat gateway.
//
// Example payload:
//
//	{
//	  "id": "b4c1...",
//	  "timestamp": "2026-08-25T19:04:05Z",
//	  "user": "viewer42",
//	  "command": "mute",
//	  "args": ["Mic"]
//	}
type CommandMessage struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Command   string    `json:"command"`
	Args      []string  `json:"args,omitempty"`
}

// Validate checks the fields required to process a command.
func (m *CommandMessage) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("command message missing id")
	}
	if m.Command == "" {
		return fmt.Errorf("command message %s missing command", m.ID)
	}
	return nil
}

// AckMessage is the per-command acknowledgement published to the ack topic.
type AckMessage struct {
	CommandID string    `json:"command_id"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Detail    string    `json:"detail,omitempty"`
}

// NewAck builds an acknowledgement for a command.
func NewAck(cmd CommandMessage, status, detail string) AckMessage {
	return AckMessage{
		CommandID: cmd.ID,
		Timestamp: time.Now().UTC(),
		Status:    status,
		Detail:    detail,
	}
}

// Marshal serializes the ack for publishing.
func (a AckMessage) Marshal() ([]byte, error) {
	return json.Marshal(a)
}
