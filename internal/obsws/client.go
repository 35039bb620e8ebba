package obsws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Default timeouts for obs-websocket communication.
const (
	// defaultConnectTimeout is the maximum time for dial plus handshake.
	defaultConnectTimeout = 10 * time.Second

	// defaultRequestTimeout is the per-request deadline when the caller's
	// context carries none.
	defaultRequestTimeout = 5 * time.Second
)

// Config holds obs-websocket connection configuration.
type Config struct {
	// Host and Port locate the obs-websocket server.
	Host string
	Port int

	// Password authenticates the handshake. May be empty; it is only used
	// when the server presents a challenge.
	Password string

	// ConnectTimeout bounds dial + identify. Default: 10 seconds.
	ConnectTimeout time.Duration

	// RequestTimeout is the fallback per-request deadline. Default: 5 seconds.
	RequestTimeout time.Duration
}

// Client is a connected obs-websocket session.
//
// The underlying connection carries one outstanding request at a time;
// reqMu serializes all request traffic. See the package documentation for
// the concurrency and failure model.
type Client struct {
	conn *websocket.Conn
	cfg  Config

	// reqMu serializes request/response pairs on the single connection.
	// Unsynchronized concurrent use would corrupt response correlation.
	reqMu sync.Mutex

	closeMu sync.Mutex
	closed  bool
}

// Connect dials the obs-websocket server and completes the identify
// handshake.
//
// The handshake reads the server's Hello, answers the authentication
// challenge when one is present, and waits for Identified. Event delivery
// is disabled; the session exists purely for request/response control.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	wsURL := "ws://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, resp, err := websocket.DefaultDialer.DialContext(connectCtx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", ErrConnectionFailed, wsURL, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	c := &Client{conn: conn, cfg: cfg}

	if err := c.identify(connectCtx); err != nil {
		conn.Close()
		return nil, err
	}

	return c, nil
}

// identify performs the Hello → Identify → Identified exchange.
func (c *Client) identify(ctx context.Context) error {
	deadline := deadlineFrom(ctx, c.cfg.ConnectTimeout)

	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("%w: set read deadline: %w", ErrConnectionFailed, err)
	}

	var hello helloData
	if err := c.readPayload(opHello, &hello); err != nil {
		return fmt.Errorf("%w: reading hello: %w", ErrConnectionFailed, err)
	}

	identify := identifyData{
		RPCVersion:         rpcVersion,
		EventSubscriptions: 0,
	}
	if hello.Authentication != nil {
		identify.Authentication = buildAuthResponse(
			c.cfg.Password,
			hello.Authentication.Salt,
			hello.Authentication.Challenge,
		)
	}

	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("%w: set write deadline: %w", ErrConnectionFailed, err)
	}
	if err := c.conn.WriteJSON(outEnvelope{Op: opIdentify, D: identify}); err != nil {
		return fmt.Errorf("%w: sending identify: %w", ErrConnectionFailed, err)
	}

	var identified identifiedData
	if err := c.readPayload(opIdentified, &identified); err != nil {
		// The server closes the connection with code 4008/4009 on a bad
		// authentication string; surface that distinctly.
		if websocket.IsCloseError(err, 4008, 4009) {
			return fmt.Errorf("%w: %w", ErrAuthFailed, err)
		}
		return fmt.Errorf("%w: reading identified: %w", ErrConnectionFailed, err)
	}

	return nil
}

// readPayload reads frames until one with the wanted opcode arrives and
// unmarshals its payload. Frames with other opcodes are skipped.
func (c *Client) readPayload(wantOp int, out any) error {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return err
		}

		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return fmt.Errorf("decoding envelope: %w", err)
		}
		if env.Op != wantOp {
			continue
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal(env.D, out); err != nil {
			return fmt.Errorf("decoding payload: %w", err)
		}
		return nil
	}
}

// request performs one synchronous request/response pair.
//
// The caller's context deadline bounds the exchange; without one, the
// configured RequestTimeout applies. out may be nil for requests whose
// response data is irrelevant.
func (c *Client) request(ctx context.Context, requestType string, requestData any, out any) error {
	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	c.closeMu.Lock()
	closed := c.closed
	c.closeMu.Unlock()
	if closed {
		return ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("obsws: %s: %w", requestType, err)
	}

	deadline := deadlineFrom(ctx, c.cfg.RequestTimeout)
	id := uuid.NewString()

	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("obsws: %s: set write deadline: %w", requestType, err)
	}
	req := outEnvelope{Op: opRequest, D: requestPayload{
		RequestType: requestType,
		RequestID:   id,
		RequestData: requestData,
	}}
	if err := c.conn.WriteJSON(req); err != nil {
		return fmt.Errorf("obsws: %s: write: %w", requestType, err)
	}

	if err := c.conn.SetReadDeadline(deadline); err != nil {
		return fmt.Errorf("obsws: %s: set read deadline: %w", requestType, err)
	}

	for {
		var resp responsePayload
		if err := c.readPayload(opResponse, &resp); err != nil {
			return fmt.Errorf("obsws: %s: read: %w", requestType, err)
		}
		// Stale responses (from a previous timed-out request) are skipped
		// until the matching id arrives.
		if resp.RequestID != id {
			continue
		}

		if !resp.RequestStatus.Result {
			return &RequestError{
				Type:    requestType,
				Code:    resp.RequestStatus.Code,
				Comment: resp.RequestStatus.Comment,
			}
		}

		if out == nil || len(resp.ResponseData) == 0 {
			return nil
		}
		if err := json.Unmarshal(resp.ResponseData, out); err != nil {
			return fmt.Errorf("obsws: %s: decoding response: %w", requestType, err)
		}
		return nil
	}
}

// Close shuts down the control connection. Safe to call more than once.
func (c *Client) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true

	// Best-effort close handshake; the server may already be gone.
	deadline := time.Now().Add(time.Second)
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		deadline,
	)

	return c.conn.Close()
}

// HealthCheck verifies the control connection by fetching the version.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.Version(ctx); err != nil {
		return fmt.Errorf("obsws health check: %w", err)
	}
	return nil
}

// deadlineFrom returns the context deadline when set, otherwise now+fallback.
func deadlineFrom(ctx context.Context, fallback time.Duration) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}
	return time.Now().Add(fallback)
}

// errIsRequestRefusal reports whether err is a server-side request refusal
// (as opposed to a transport fault).
func errIsRequestRefusal(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
