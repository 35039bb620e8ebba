package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for obschat.
// All configuration is loaded from YAML and can be overridden by environment
// variables (optionally sourced from a .env file in the working directory).
type Config struct {
	OBS      OBSConfig      `yaml:"obs"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Logging  LoggingConfig  `yaml:"logging"`
	Bridge   BridgeConfig   `yaml:"bridge"`
}

// OBSConfig contains obs-websocket connection settings.
type OBSConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	Password string           `yaml:"password"`
	Timeouts OBSTimeoutConfig `yaml:"timeouts"`
}

// OBSTimeoutConfig contains obs-websocket timeout settings in seconds.
type OBSTimeoutConfig struct {
	// Connect is the maximum time for dial + identify handshake.
	Connect int `yaml:"connect"`
	// Request is the default per-request deadline when the caller
	// supplies no deadline of its own.
	Request int `yaml:"request"`
}

// MQTTConfig contains MQTT broker connection settings.
// The broker carries chat command messages published by the chat gateway.
type MQTTConfig struct {
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings in seconds.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
	MaxAttempts  int `yaml:"max_attempts"`
}

// InfluxDBConfig contains InfluxDB connection settings for command telemetry.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// BridgeConfig contains command bridge settings.
type BridgeConfig struct {
	// CommandTimeout is the per-command deadline in seconds. A command that
	// exceeds it is acknowledged as failed; it is never retried, because
	// toggle-style operations are not idempotent.
	CommandTimeout int `yaml:"command_timeout"`

	// QueueSize bounds the number of chat commands waiting for the worker.
	// When the queue is full, new commands are dropped with a failed ack so
	// the MQTT handler never blocks on OBS I/O.
	QueueSize int `yaml:"queue_size"`
}

// Load reads configuration from a YAML file and applies environment variable
// overrides.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. .env file in the working directory (populates the environment, if present)
//  4. Environment variables (override file values)
//
// Environment variables follow the pattern: OBSCHAT_SECTION_KEY
// For example: OBSCHAT_OBS_PASSWORD, OBSCHAT_MQTT_HOST
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// A missing .env file is not an error; it is a development convenience.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
// The defaults match a local OBS instance with obs-websocket on its
// standard port and an anonymous local Mosquitto broker.
func defaultConfig() *Config {
	return &Config{
		OBS: OBSConfig{
			Host: "localhost",
			Port: 4455,
			Timeouts: OBSTimeoutConfig{
				Connect: 10,
				Request: 5,
			},
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "obschat-core",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
				MaxAttempts:  0,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Bridge: BridgeConfig{
			CommandTimeout: 5,
			QueueSize:      32,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: OBSCHAT_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// OBS
	if v := os.Getenv("OBSCHAT_OBS_HOST"); v != "" {
		cfg.OBS.Host = v
	}
	if v := os.Getenv("OBSCHAT_OBS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.OBS.Port = port
		}
	}
	if v := os.Getenv("OBSCHAT_OBS_PASSWORD"); v != "" {
		cfg.OBS.Password = v
	}

	// MQTT
	if v := os.Getenv("OBSCHAT_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("OBSCHAT_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("OBSCHAT_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// InfluxDB
	if v := os.Getenv("OBSCHAT_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
}

// Validate checks the configuration for errors.
//
// Note: obs.password may legitimately be empty: obs-websocket servers can
// run with authentication disabled, and the handshake only needs the
// password when the server presents a challenge.
func (c *Config) Validate() error {
	var errs []string

	if c.OBS.Host == "" {
		errs = append(errs, "obs.host is required")
	}
	if c.OBS.Port < 1 || c.OBS.Port > 65535 {
		errs = append(errs, "obs.port must be between 1 and 65535")
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}

	if c.Bridge.CommandTimeout < 1 {
		errs = append(errs, "bridge.command_timeout must be at least 1 second")
	}
	if c.Bridge.QueueSize < 1 {
		errs = append(errs, "bridge.queue_size must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetConnectTimeout returns the OBS connect timeout as a Duration.
func (c *Config) GetConnectTimeout() time.Duration {
	return time.Duration(c.OBS.Timeouts.Connect) * time.Second
}

// GetRequestTimeout returns the OBS per-request timeout as a Duration.
func (c *Config) GetRequestTimeout() time.Duration {
	return time.Duration(c.OBS.Timeouts.Request) * time.Second
}

// GetCommandTimeout returns the bridge per-command deadline as a Duration.
func (c *Config) GetCommandTimeout() time.Duration {
	return time.Duration(c.Bridge.CommandTimeout) * time.Second
}
