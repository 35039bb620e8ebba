package main

import "github.com/spf13/cobra"

// Version information, set at build time via ldflags.
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print obschat and OBS version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("obschat " + version)

			// OBS version is best-effort; the binary version prints even
			// when OBS is unreachable.
			ctrl, cleanup, err := connectController()
			if err != nil {
				printWarn("OBS unreachable: " + err.Error())
				return nil
			}
			defer cleanup()

			v, err := ctrl.Version(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("OBS %s (obs-websocket %s)\n", v.OBSVersion, v.WebSocketVersion)
			return nil
		},
	}
}
