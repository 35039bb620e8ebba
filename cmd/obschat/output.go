package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfarrant/obs-chat-core/internal/control"
)

// outputCmd builds a start/stop command pair for an OBS output.
func outputCmd(use, short, what string, start, stop func(*control.Controller, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:       use,
		Short:     short,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"start", "stop"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, cleanup, err := connectController()
			if err != nil {
				return err
			}
			defer cleanup()

			switch args[0] {
			case "start":
				if err := start(ctrl, cmd.Context()); err != nil {
					return err
				}
				printSuccess("started " + what)
			case "stop":
				if err := stop(ctrl, cmd.Context()); err != nil {
					return err
				}
				printSuccess("stopped " + what)
			default:
				return fmt.Errorf("expected start or stop, got %q", args[0])
			}
			return nil
		},
	}
}

func recordCmd() *cobra.Command {
	return outputCmd("record start|stop", "Start or stop recording", "recording",
		(*control.Controller).StartRecord, (*control.Controller).StopRecord)
}

func streamCmd() *cobra.Command {
	return outputCmd("stream start|stop", "Start or stop streaming", "streaming",
		(*control.Controller).StartStream, (*control.Controller).StopStream)
}
