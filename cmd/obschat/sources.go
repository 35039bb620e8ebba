package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List group-scoped sources in the current scene",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			sources, err := ctrl.ListSources(cmd.Context())
			if err != nil {
				return err
			}

			printHeading("Sources:")
			for _, s := range sources {
				cmd.Println("  " + s)
			}
			return nil
		},
	}
}

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle NAME",
		Short: "Toggle the visibility of a source inside a group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.Join(args, " ")
			ok, err := ctrl.ToggleSource(cmd.Context(), name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("source %q not found in any group of the current scene", name)
			}
			printSuccess("toggled " + name)
			return nil
		},
	}
}
