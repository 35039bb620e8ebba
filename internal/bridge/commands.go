package bridge

import (
	"context"
	"fmt"
	"strings"
)

// dispatch maps a chat command onto a controller operation. The returned
// detail string is surfaced to the chat gateway in the ack.
func (b *Bridge) dispatch(ctx context.Context, cmd CommandMessage) (string, error) {
	switch cmd.Command {
	case "version":
		v, err := b.ctrl.Version(ctx)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("OBS %s (obs-websocket %s)", v.OBSVersion, v.WebSocketVersion), nil

	case "scene":
		name := joinedArg(cmd.Args)
		if name == "" {
			return "", fmt.Errorf("scene: missing scene name")
		}
		ok, err := b.ctrl.ChangeScene(ctx, name)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("scene %q not found", name)
		}
		return fmt.Sprintf("switched to %s", name), nil

	case "scenes":
		scenes, err := b.ctrl.Scenes(ctx)
		if err != nil {
			return "", err
		}
		return strings.Join(scenes, ", "), nil

	case "sources":
		sources, err := b.ctrl.ListSources(ctx)
		if err != nil {
			return "", err
		}
		return strings.Join(sources, ", "), nil

	case "inputs":
		names, err := b.ctrl.InputNames(ctx)
		if err != nil {
			return "", err
		}
		return strings.Join(names, ", "), nil

	case "toggle":
		name := joinedArg(cmd.Args)
		if name == "" {
			return "", fmt.Errorf("toggle: missing source name")
		}
		ok, err := b.ctrl.ToggleSource(ctx, name)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("source %q not found in any group", name)
		}
		return fmt.Sprintf("toggled %s", name), nil

	case "mute":
		return b.singleMute(ctx, cmd, b.ctrl.Mute, "muted")

	case "unmute":
		return b.singleMute(ctx, cmd, b.ctrl.Unmute, "unmuted")

	case "togglemute":
		return b.singleMute(ctx, cmd, b.ctrl.ToggleMute, "toggled mute on")

	case "solo":
		if len(cmd.Args) == 0 {
			return "", fmt.Errorf("solo: missing input name")
		}
		if err := b.ctrl.MuteAllBut(ctx, cmd.Args); err != nil {
			return "", err
		}
		return fmt.Sprintf("soloed %s", strings.Join(cmd.Args, ", ")), nil

	case "muteall":
		if err := b.ctrl.MuteAll(ctx, cmd.Args); err != nil {
			return "", err
		}
		if len(cmd.Args) > 0 {
			return fmt.Sprintf("muted all except %s", strings.Join(cmd.Args, ", ")), nil
		}
		return "muted all audio inputs", nil

	case "unmuteall":
		var only []string
		if len(cmd.Args) > 0 {
			only = cmd.Args
		}
		if err := b.ctrl.UnmuteAll(ctx, only); err != nil {
			return "", err
		}
		if only != nil {
			return fmt.Sprintf("unmuted %s", strings.Join(only, ", ")), nil
		}
		return "unmuted all audio inputs", nil

	case "record":
		return b.transport(ctx, cmd, b.ctrl.StartRecord, b.ctrl.StopRecord, "recording")

	case "stream":
		return b.transport(ctx, cmd, b.ctrl.StartStream, b.ctrl.StopStream, "streaming")

	default:
		return "", fmt.Errorf("unknown command %q", cmd.Command)
	}
}

// singleMute runs a per-input mute operation that reports success as a bool.
func (b *Bridge) singleMute(ctx context.Context, cmd CommandMessage, op func(context.Context, string) (bool, error), verb string) (string, error) {
	name := joinedArg(cmd.Args)
	if name == "" {
		return "", fmt.Errorf("%s: missing input name", cmd.Command)
	}
	ok, err := op(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("input %q not found or not audio-capable", name)
	}
	return fmt.Sprintf("%s %s", verb, name), nil
}

// transport runs a start/stop output command.
func (b *Bridge) transport(ctx context.Context, cmd CommandMessage, start, stop func(context.Context) error, what string) (string, error) {
	if len(cmd.Args) != 1 {
		return "", fmt.Errorf("%s: expected start or stop", cmd.Command)
	}
	switch cmd.Args[0] {
	case "start":
		if err := start(ctx); err != nil {
			return "", err
		}
		return "started " + what, nil
	case "stop":
		if err := stop(ctx); err != nil {
			return "", err
		}
		return "stopped " + what, nil
	default:
		return "", fmt.Errorf("%s: expected start or stop, got %q", cmd.Command, cmd.Args[0])
	}
}

// joinedArg joins args back into a single name. Chat gateways split on
// whitespace, but OBS source names may contain spaces.
func joinedArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
