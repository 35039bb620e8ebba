package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	content := `
obs:
  host: "studio-pc.local"
  port: 4455
  password: "hunter2"
mqtt:
  broker:
    host: "localhost"
    port: 1883
    client_id: "test-client"
  qos: 1
bridge:
  command_timeout: 3
  queue_size: 8
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OBS.Host != "studio-pc.local" {
		t.Errorf("OBS.Host = %q, want %q", cfg.OBS.Host, "studio-pc.local")
	}
	if cfg.OBS.Password != "hunter2" {
		t.Errorf("OBS.Password = %q, want %q", cfg.OBS.Password, "hunter2")
	}
	if cfg.MQTT.Broker.ClientID != "test-client" {
		t.Errorf("MQTT.Broker.ClientID = %q, want %q", cfg.MQTT.Broker.ClientID, "test-client")
	}
	if cfg.Bridge.CommandTimeout != 3 {
		t.Errorf("Bridge.CommandTimeout = %d, want 3", cfg.Bridge.CommandTimeout)
	}

	// Defaults survive a partial file.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default %q", cfg.Logging.Level, "info")
	}
	if cfg.OBS.Timeouts.Request != 5 {
		t.Errorf("OBS.Timeouts.Request = %d, want default 5", cfg.OBS.Timeouts.Request)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("invalid: [yaml: content"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	content := `
obs:
  host: "from-file"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("OBSCHAT_OBS_HOST", "from-env")
	t.Setenv("OBSCHAT_OBS_PASSWORD", "env-secret")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OBS.Host != "from-env" {
		t.Errorf("OBS.Host = %q, want env override %q", cfg.OBS.Host, "from-env")
	}
	if cfg.OBS.Password != "env-secret" {
		t.Errorf("OBS.Password = %q, want env override %q", cfg.OBS.Password, "env-secret")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "empty obs host", mutate: func(c *Config) { c.OBS.Host = "" }, wantErr: true},
		{name: "obs port zero", mutate: func(c *Config) { c.OBS.Port = 0 }, wantErr: true},
		{name: "obs port too high", mutate: func(c *Config) { c.OBS.Port = 70000 }, wantErr: true},
		{name: "invalid qos", mutate: func(c *Config) { c.MQTT.QoS = 3 }, wantErr: true},
		{name: "zero command timeout", mutate: func(c *Config) { c.Bridge.CommandTimeout = 0 }, wantErr: true},
		{name: "zero queue size", mutate: func(c *Config) { c.Bridge.QueueSize = 0 }, wantErr: true},
		{name: "empty obs password is allowed", mutate: func(c *Config) { c.OBS.Password = "" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
