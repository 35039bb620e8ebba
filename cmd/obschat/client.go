package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/nfarrant/obs-chat-core/internal/control"
	"github.com/nfarrant/obs-chat-core/internal/infrastructure/config"
	"github.com/nfarrant/obs-chat-core/internal/infrastructure/logging"
	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

// connectController loads config, connects to OBS, and returns a controller
// for one-shot commands. The cleanup function closes the connection.
func connectController() (*control.Controller, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	// One-shot commands log errors only; the daemon has its own logger.
	logger := logging.New(config.LoggingConfig{
		Level:  "error",
		Format: "text",
		Output: "stderr",
	}, version)

	client, err := obsws.Connect(context.Background(), obsws.Config{
		Host:           cfg.OBS.Host,
		Port:           cfg.OBS.Port,
		Password:       cfg.OBS.Password,
		ConnectTimeout: cfg.GetConnectTimeout(),
		RequestTimeout: cfg.GetRequestTimeout(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to OBS: %w", err)
	}

	return control.New(client, logger), func() { _ = client.Close() }, nil
}

// Colored output helpers for one-shot commands.

func printSuccess(msg string) {
	fmt.Fprintln(os.Stdout, color.GreenString(msg))
}

func printWarn(msg string) {
	fmt.Fprintln(os.Stdout, color.YellowString(msg))
}

func printHeading(msg string) {
	fmt.Fprintln(os.Stdout, color.New(color.Bold).Sprint(msg))
}
