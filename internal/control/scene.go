package control

import "context"

// Scenes returns all scene names in OBS display order.
func (c *Controller) Scenes(ctx context.Context) ([]string, error) {
	return c.gw.SceneList(ctx)
}

// CurrentScene returns the name of the current program scene.
func (c *Controller) CurrentScene(ctx context.Context) (string, error) {
	return c.gw.CurrentProgramScene(ctx)
}

// ChangeScene switches the program scene. It reports false without error
// when no scene with that name exists.
func (c *Controller) ChangeScene(ctx context.Context, name string) (bool, error) {
	scenes, err := c.gw.SceneList(ctx)
	if err != nil {
		return false, err
	}

	exists := false
	for _, s := range scenes {
		if s == name {
			exists = true
			break
		}
	}
	if !exists {
		c.logger.Debug("scene change skipped, scene not found", "scene", name)
		return false, nil
	}

	if err := c.gw.SetCurrentProgramScene(ctx, name); err != nil {
		return false, err
	}
	c.logger.Info("scene changed", "scene", name)
	return true, nil
}
