package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfarrant/obs-chat-core/internal/bridge"
	"github.com/nfarrant/obs-chat-core/internal/control"
	"github.com/nfarrant/obs-chat-core/internal/infrastructure/config"
	"github.com/nfarrant/obs-chat-core/internal/infrastructure/influxdb"
	"github.com/nfarrant/obs-chat-core/internal/infrastructure/logging"
	"github.com/nfarrant/obs-chat-core/internal/infrastructure/mqtt"
	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the chat control daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return run(ctx)
		},
	}
}

// run is the daemon body, separated from the cobra wiring for clarity.
// It returns on clean shutdown or the first fatal startup error.
func run(ctx context.Context) error {
	// Use the default logger until config is loaded.
	log := logging.Default()
	log.Info("starting obschat", "version", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)

	// OBS is the reason this process exists: failure to connect is fatal.
	obsClient, err := obsws.Connect(ctx, obsws.Config{
		Host:           cfg.OBS.Host,
		Port:           cfg.OBS.Port,
		Password:       cfg.OBS.Password,
		ConnectTimeout: cfg.GetConnectTimeout(),
		RequestTimeout: cfg.GetRequestTimeout(),
	})
	if err != nil {
		return fmt.Errorf("connecting to OBS: %w", err)
	}
	defer func() {
		log.Info("closing OBS connection")
		if closeErr := obsClient.Close(); closeErr != nil {
			log.Error("error closing OBS connection", "error", closeErr)
		}
	}()

	ctrl := control.New(obsClient, log)

	if err := printStartupSummary(ctx, ctrl, log); err != nil {
		return fmt.Errorf("reading OBS state: %w", err)
	}

	mqttClient, err := mqtt.Connect(cfg.MQTT)
	if err != nil {
		return fmt.Errorf("connecting to MQTT: %w", err)
	}
	defer func() {
		log.Info("disconnecting from MQTT")
		if closeErr := mqttClient.Close(); closeErr != nil {
			log.Error("error closing MQTT", "error", closeErr)
		}
	}()
	log.Info("MQTT connected",
		"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
		"client_id", cfg.MQTT.Broker.ClientID,
	)

	mqttClient.SetLogger(log)
	mqttClient.SetOnConnect(func() {
		log.Info("MQTT reconnected")
	})
	mqttClient.SetOnDisconnect(func(err error) {
		log.Warn("MQTT disconnected", "error", err)
	})

	// Command telemetry is optional.
	var influxClient *influxdb.Client
	if cfg.InfluxDB.Enabled {
		influxClient, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		log.Info("InfluxDB connected", "url", cfg.InfluxDB.URL, "bucket", cfg.InfluxDB.Bucket)
	} else {
		log.Info("InfluxDB disabled")
	}

	opts := bridge.Options{
		MQTT:           mqttClient,
		Controller:     ctrl,
		Logger:         log.With("component", "bridge"),
		CommandTimeout: cfg.GetCommandTimeout(),
		QueueSize:      cfg.Bridge.QueueSize,
		QoS:            byte(cfg.MQTT.QoS),
	}
	if influxClient != nil {
		opts.Metrics = influxClient
	}

	cmdBridge, err := bridge.New(opts)
	if err != nil {
		return fmt.Errorf("creating bridge: %w", err)
	}
	if err := cmdBridge.Start(); err != nil {
		return fmt.Errorf("starting bridge: %w", err)
	}
	defer cmdBridge.Stop()

	if err := healthCheck(ctx, obsClient, mqttClient, influxClient); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")

	return nil
}

// printStartupSummary logs the OBS state visible at startup: version,
// scenes, group-scoped sources, and input names.
func printStartupSummary(ctx context.Context, ctrl *control.Controller, log *logging.Logger) error {
	v, err := ctrl.Version(ctx)
	if err != nil {
		return err
	}
	log.Info("connected to OBS",
		"obs_version", v.OBSVersion,
		"websocket_version", v.WebSocketVersion,
	)

	scenes, err := ctrl.Scenes(ctx)
	if err != nil {
		return err
	}
	current, err := ctrl.CurrentScene(ctx)
	if err != nil {
		return err
	}
	log.Info("scene collection", "scenes", scenes, "current", current)

	sources, err := ctrl.ListSources(ctx)
	if err != nil {
		return err
	}
	log.Info("group-scoped sources", "sources", sources)

	inputs, err := ctrl.InputNames(ctx)
	if err != nil {
		return err
	}
	log.Info("inputs", "inputs", inputs)

	return nil
}

// healthCheck verifies all connections before the daemon settles in.
func healthCheck(ctx context.Context, obsClient *obsws.Client, mqttClient *mqtt.Client, influxClient *influxdb.Client) error {
	if err := obsClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("obs: %w", err)
	}
	if err := mqttClient.HealthCheck(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	if influxClient != nil {
		if err := influxClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}
	return nil
}
