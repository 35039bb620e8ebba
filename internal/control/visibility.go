package control

import "context"

// ToggleSource flips the visibility of a source inside the current scene's
// groups. It reports false without mutation when the source is not found
// in any group.
//
// The flip is read-modify-write against live state: concurrent UI edits
// make the last writer win, and a failed write is never retried.
func (c *Controller) ToggleSource(ctx context.Context, name string) (bool, error) {
	group, itemID, found, err := c.FindInGroups(ctx, name)
	if err != nil {
		return false, err
	}
	if !found {
		c.logger.Debug("toggle skipped, source not in any group", "source", name)
		return false, nil
	}

	enabled, err := c.gw.SceneItemEnabled(ctx, group, itemID)
	if err != nil {
		return false, err
	}
	if err := c.gw.SetSceneItemEnabled(ctx, group, itemID, !enabled); err != nil {
		return false, err
	}

	c.logger.Info("source toggled", "source", name, "group", group, "enabled", !enabled)
	return true, nil
}
