// Package bridge connects chat commands arriving over MQTT to the OBS
// control core.
//
// A single worker goroutine drains a bounded queue and is the only caller
// of the controller, so the one obs-websocket connection never sees
// interleaved commands. MQTT handlers only parse and enqueue; they never
// touch OBS I/O. Every command gets exactly one acknowledgement on the ack
// topic, including commands dropped because the queue is full.
package bridge
