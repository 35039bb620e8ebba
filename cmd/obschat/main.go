// obschat is a chat-driven remote control for OBS Studio.
//
// The run subcommand starts the long-running daemon: it connects to
// obs-websocket and the MQTT broker, then executes chat commands published
// by the chat gateway. The remaining subcommands are one-shot controls that
// talk to OBS directly, useful from scripts and stream decks.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yaml"

// configPath is bound to the persistent --config flag.
var configPath string

func main() {
	root := &cobra.Command{
		Use:   "obschat",
		Short: "Chat-driven remote control for OBS Studio",
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&configPath, "config", getConfigPath(), "path to config file")

	root.AddCommand(runCmd())
	root.AddCommand(versionCmd())
	root.AddCommand(scenesCmd())
	root.AddCommand(sourcesCmd())
	root.AddCommand(toggleCmd())
	root.AddCommand(inputsCmd())
	root.AddCommand(muteCmd())
	root.AddCommand(unmuteCmd())
	root.AddCommand(togglemuteCmd())
	root.AddCommand(soloCmd())
	root.AddCommand(muteallCmd())
	root.AddCommand(unmuteallCmd())
	root.AddCommand(recordCmd())
	root.AddCommand(streamCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// getConfigPath returns the default config path, honouring OBSCHAT_CONFIG.
func getConfigPath() string {
	if path := os.Getenv("OBSCHAT_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
