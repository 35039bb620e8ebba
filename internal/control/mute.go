package control

import "context"

// Mute mutes a single input. It reports false without issuing any mutation
// when the input is unknown or not audio-capable.
func (c *Controller) Mute(ctx context.Context, name string) (bool, error) {
	return c.setMute(ctx, name, true)
}

// Unmute unmutes a single input with the same contract as Mute.
func (c *Controller) Unmute(ctx context.Context, name string) (bool, error) {
	return c.setMute(ctx, name, false)
}

func (c *Controller) setMute(ctx context.Context, name string, muted bool) (bool, error) {
	info, found, err := c.LookupInput(ctx, name)
	if err != nil {
		return false, err
	}
	if !found || !SupportsAudio(info.Capabilities) {
		c.logger.Debug("mute skipped", "input", name, "found", found)
		return false, nil
	}
	if err := c.gw.SetInputMute(ctx, name, muted); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleMute flips the mute state of an input. Unknown and non-audio
// inputs report false; the capability check happens before any mutation,
// so two consecutive toggles restore the original state.
func (c *Controller) ToggleMute(ctx context.Context, name string) (bool, error) {
	info, found, err := c.LookupInput(ctx, name)
	if err != nil {
		return false, err
	}
	if !found || !SupportsAudio(info.Capabilities) {
		c.logger.Debug("toggle mute skipped", "input", name, "found", found)
		return false, nil
	}
	if err := c.gw.ToggleInputMute(ctx, name); err != nil {
		return false, err
	}
	return true, nil
}

// MuteAll mutes every audio-capable input. Names in except are left
// untouched, whatever their current state. Per-input failures are logged
// and do not abort the sweep.
func (c *Controller) MuteAll(ctx context.Context, except []string) error {
	inputs, err := c.gw.InputList(ctx)
	if err != nil {
		return err
	}

	skip := nameSet(except)
	for _, in := range inputs {
		if !SupportsAudio(in.Capabilities) || skip[in.Name] {
			continue
		}
		if err := c.gw.SetInputMute(ctx, in.Name, true); err != nil {
			c.logger.Warn("mute failed", "input", in.Name, "error", err)
		}
	}
	return nil
}

// UnmuteAll unmutes audio-capable inputs. A nil only list unmutes all of
// them; otherwise only the named inputs are unmuted, and names that are
// absent or not audio-capable are silently ignored.
func (c *Controller) UnmuteAll(ctx context.Context, only []string) error {
	inputs, err := c.gw.InputList(ctx)
	if err != nil {
		return err
	}

	want := nameSet(only)
	for _, in := range inputs {
		if !SupportsAudio(in.Capabilities) {
			continue
		}
		if only != nil && !want[in.Name] {
			continue
		}
		if err := c.gw.SetInputMute(ctx, in.Name, false); err != nil {
			c.logger.Warn("unmute failed", "input", in.Name, "error", err)
		}
	}
	return nil
}

// MuteAllBut mutes every audio-capable input except those named in keep,
// which are forced unmuted regardless of their current state. The solo
// semantic: MuteAllBut with an empty keep mutes everything audio-capable.
func (c *Controller) MuteAllBut(ctx context.Context, keep []string) error {
	inputs, err := c.gw.InputList(ctx)
	if err != nil {
		return err
	}

	kept := nameSet(keep)
	for _, in := range inputs {
		if !SupportsAudio(in.Capabilities) {
			continue
		}
		if err := c.gw.SetInputMute(ctx, in.Name, !kept[in.Name]); err != nil {
			c.logger.Warn("mute sweep failed", "input", in.Name, "error", err)
		}
	}
	return nil
}

// UnmuteOnly unmutes exactly the named inputs and mutes every other
// audio-capable input. Identical end state to MuteAllBut.
func (c *Controller) UnmuteOnly(ctx context.Context, keep []string) error {
	return c.MuteAllBut(ctx, keep)
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
