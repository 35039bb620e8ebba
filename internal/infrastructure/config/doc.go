// Package config loads and validates obschat configuration.
//
// Configuration is sourced, in increasing priority, from hardcoded defaults,
// a YAML file, a .env file in the working directory, and OBSCHAT_* environment
// variables. Secrets (the obs-websocket password, MQTT credentials, the
// InfluxDB token) should come from the environment rather than the YAML file.
package config
