package obsws

import (
	"errors"
	"fmt"
)

// Sentinel errors for obs-websocket operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrConnectionFailed is returned when dialing or the identify handshake fails.
	ErrConnectionFailed = errors.New("obsws: connection failed")

	// ErrAuthFailed is returned when the server rejects the authentication string.
	ErrAuthFailed = errors.New("obsws: authentication failed")

	// ErrNotAGroup is returned by GroupSceneItemList when the named source
	// exists but is not a group (or does not exist at all). Callers use it
	// to classify top-level scene items without treating the refusal as a
	// transport fault.
	ErrNotAGroup = errors.New("obsws: source is not a group")

	// ErrClosed is returned when using a client after Close.
	ErrClosed = errors.New("obsws: client closed")
)

// RequestError describes a request the server received and refused.
// Code is the obs-websocket RequestStatus code (100 is success; anything
// else is a refusal).
type RequestError struct {
	Type    string // request type, e.g. "SetCurrentProgramScene"
	Code    int
	Comment string
}

func (e *RequestError) Error() string {
	if e.Comment != "" {
		return fmt.Sprintf("obsws: %s failed with code %d: %s", e.Type, e.Code, e.Comment)
	}
	return fmt.Sprintf("obsws: %s failed with code %d", e.Type, e.Code)
}
