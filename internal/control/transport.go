package control

import "context"

// StartRecord starts recording.
func (c *Controller) StartRecord(ctx context.Context) error {
	return c.gw.StartRecord(ctx)
}

// StopRecord stops recording.
func (c *Controller) StopRecord(ctx context.Context) error {
	return c.gw.StopRecord(ctx)
}

// StartStream starts streaming.
func (c *Controller) StartStream(ctx context.Context) error {
	return c.gw.StartStream(ctx)
}

// StopStream stops streaming.
func (c *Controller) StopStream(ctx context.Context) error {
	return c.gw.StopStream(ctx)
}
