// Package influxdb records obschat command telemetry to InfluxDB.
//
// Telemetry is optional (influxdb.enabled in config) and strictly
// observational: command counts, outcomes, durations, and bridge queue
// depth. No control state lives here and nothing reads it back.
//
// Writes are batched and non-blocking so telemetry can never stall the
// command path; asynchronous write failures surface via SetOnError.
package influxdb
