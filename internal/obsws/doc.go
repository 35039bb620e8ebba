// Package obsws provides a typed client for the obs-websocket v5 control
// endpoint.
//
// The package deliberately stays a thin boundary: it performs the connection
// handshake (Hello → Identify → Identified, with challenge authentication
// when the server requires it) and synchronous request/response correlation,
// and it decodes responses into explicit record types (SceneItem, InputInfo,
// VersionInfo). All protocol semantics beyond that belong to OBS.
//
// # Concurrency
//
// The control connection accepts one outstanding request at a time; the
// client enforces this with an internal mutex, so methods are safe to call
// from multiple goroutines but execute strictly one after another. Events
// are not subscribed (eventSubscriptions=0), so the only inbound traffic is
// request responses.
//
// # Failure model
//
// A failed dial or handshake is fatal to the caller (the process cannot
// operate without the control connection). A request the server refuses is a
// *RequestError carrying the protocol status code. A network fault mid-call
// propagates to the caller of that specific operation. None of these are
// retried here; toggle-style operations are not idempotent.
package obsws
