package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nfarrant/obs-chat-core/internal/control"
)

func inputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inputs",
		Short: "List inputs and their audio capability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			names, err := ctrl.InputNames(cmd.Context())
			if err != nil {
				return err
			}

			printHeading("Inputs:")
			for _, name := range names {
				info, found, err := ctrl.LookupInput(cmd.Context(), name)
				if err != nil {
					return err
				}
				label := ""
				if found && control.SupportsAudio(info.Capabilities) {
					label = "  [audio]"
				}
				cmd.Println("  " + name + label)
			}
			return nil
		},
	}
}

// singleMuteCmd builds a command around a per-input mute operation.
func singleMuteCmd(use, short, verb string, op func(*control.Controller, context.Context, string) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			name := strings.Join(args, " ")
			ok, err := op(ctrl, cmd.Context(), name)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("input %q not found or not audio-capable", name)
			}
			printSuccess(verb + " " + name)
			return nil
		},
	}
}

func muteCmd() *cobra.Command {
	return singleMuteCmd("mute NAME", "Mute an audio input", "muted", (*control.Controller).Mute)
}

func unmuteCmd() *cobra.Command {
	return singleMuteCmd("unmute NAME", "Unmute an audio input", "unmuted", (*control.Controller).Unmute)
}

func togglemuteCmd() *cobra.Command {
	return singleMuteCmd("togglemute NAME", "Toggle the mute state of an audio input", "toggled mute on", (*control.Controller).ToggleMute)
}

func soloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solo NAME...",
		Short: "Unmute the named inputs and mute every other audio input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ctrl.MuteAllBut(cmd.Context(), args); err != nil {
				return err
			}
			printSuccess("soloed " + strings.Join(args, ", "))
			return nil
		},
	}
}

func muteallCmd() *cobra.Command {
	var except []string
	cmd := &cobra.Command{
		Use:   "muteall",
		Short: "Mute all audio inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ctrl.MuteAll(cmd.Context(), except); err != nil {
				return err
			}
			printSuccess("muted all audio inputs")
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&except, "except", nil, "inputs to leave untouched")
	return cmd
}

func unmuteallCmd() *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "unmuteall",
		Short: "Unmute all audio inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := ctrl.UnmuteAll(cmd.Context(), only); err != nil {
				return err
			}
			printSuccess("unmuted audio inputs")
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "unmute only these inputs")
	return cmd
}
