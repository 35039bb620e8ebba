package obsws

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
)

// obs-websocket v5 opcodes used by this client.
const (
	opHello      = 0
	opIdentify   = 1
	opIdentified = 2
	opRequest    = 6
	opResponse   = 7
)

// rpcVersion is the obs-websocket RPC version this client speaks.
const rpcVersion = 1

// statusSuccess is the RequestStatus code for a successful request.
const statusSuccess = 100

// envelope is the outer message frame: {"op": <opcode>, "d": <data>}.
type envelope struct {
	Op int             `json:"op"`
	D  json.RawMessage `json:"d"`
}

// outEnvelope is the outbound counterpart of envelope.
type outEnvelope struct {
	Op int `json:"op"`
	D  any `json:"d"`
}

// helloData is the payload of the server's Hello (op 0).
type helloData struct {
	OBSWebSocketVersion string         `json:"obsWebSocketVersion"`
	RPCVersion          int            `json:"rpcVersion"`
	Authentication      *authChallenge `json:"authentication,omitempty"`
}

// authChallenge carries the handshake challenge when the server requires
// authentication.
type authChallenge struct {
	Challenge string `json:"challenge"`
	Salt      string `json:"salt"`
}

// identifyData is the payload of the client's Identify (op 1).
type identifyData struct {
	RPCVersion         int    `json:"rpcVersion"`
	Authentication     string `json:"authentication,omitempty"`
	EventSubscriptions int    `json:"eventSubscriptions"`
}

// identifiedData is the payload of the server's Identified (op 2).
type identifiedData struct {
	NegotiatedRPCVersion int `json:"negotiatedRpcVersion"`
}

// requestPayload is the payload of a Request (op 6).
type requestPayload struct {
	RequestType string `json:"requestType"`
	RequestID   string `json:"requestId"`
	RequestData any    `json:"requestData,omitempty"`
}

// responsePayload is the payload of a RequestResponse (op 7).
type responsePayload struct {
	RequestType   string          `json:"requestType"`
	RequestID     string          `json:"requestId"`
	RequestStatus requestStatus   `json:"requestStatus"`
	ResponseData  json.RawMessage `json:"responseData,omitempty"`
}

// requestStatus is the result portion of a RequestResponse.
type requestStatus struct {
	Result  bool   `json:"result"`
	Code    int    `json:"code"`
	Comment string `json:"comment,omitempty"`
}

// buildAuthResponse computes the obs-websocket authentication string:
//
//	secret = base64(sha256(password + salt))
//	auth   = base64(sha256(secret + challenge))
func buildAuthResponse(password, salt, challenge string) string {
	secret := sha256.Sum256([]byte(password + salt))
	secretB64 := base64.StdEncoding.EncodeToString(secret[:])
	final := sha256.Sum256([]byte(secretB64 + challenge))
	return base64.StdEncoding.EncodeToString(final[:])
}
