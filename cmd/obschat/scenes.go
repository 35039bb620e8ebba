package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func scenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes [set NAME]",
		Short: "List scenes or switch the program scene",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) > 0 {
				if args[0] != "set" || len(args) < 2 {
					return fmt.Errorf("usage: obschat scenes set NAME")
				}
				name := strings.Join(args[1:], " ")
				ok, err := ctrl.ChangeScene(cmd.Context(), name)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("scene %q not found", name)
				}
				printSuccess("switched to " + name)
				return nil
			}

			scenes, err := ctrl.Scenes(cmd.Context())
			if err != nil {
				return err
			}
			current, err := ctrl.CurrentScene(cmd.Context())
			if err != nil {
				return err
			}

			printHeading("Scenes:")
			for _, s := range scenes {
				marker := "  "
				if s == current {
					marker = "* "
				}
				cmd.Println(marker + s)
			}
			return nil
		},
	}
}
