package obsws

import (
	"context"
	"fmt"
)

// Version returns the OBS application and obs-websocket version strings.
func (c *Client) Version(ctx context.Context) (VersionInfo, error) {
	var v VersionInfo
	if err := c.request(ctx, "GetVersion", nil, &v); err != nil {
		return VersionInfo{}, err
	}
	return v, nil
}

// SceneList returns the names of all scenes in the current profile,
// in OBS's display order.
func (c *Client) SceneList(ctx context.Context) ([]string, error) {
	var resp struct {
		Scenes []struct {
			SceneName string `json:"sceneName"`
		} `json:"scenes"`
	}
	if err := c.request(ctx, "GetSceneList", nil, &resp); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(resp.Scenes))
	for _, s := range resp.Scenes {
		names = append(names, s.SceneName)
	}
	return names, nil
}

// CurrentProgramScene returns the name of the current program (live) scene.
func (c *Client) CurrentProgramScene(ctx context.Context) (string, error) {
	var resp struct {
		CurrentProgramSceneName string `json:"currentProgramSceneName"`
	}
	if err := c.request(ctx, "GetCurrentProgramScene", nil, &resp); err != nil {
		return "", err
	}
	return resp.CurrentProgramSceneName, nil
}

// SetCurrentProgramScene switches the program scene.
// The server refuses the request when the scene does not exist.
func (c *Client) SetCurrentProgramScene(ctx context.Context, name string) error {
	return c.request(ctx, "SetCurrentProgramScene", map[string]any{
		"sceneName": name,
	}, nil)
}

// SceneItemList returns the top-level items of a scene.
func (c *Client) SceneItemList(ctx context.Context, scene string) ([]SceneItem, error) {
	var resp struct {
		SceneItems []SceneItem `json:"sceneItems"`
	}
	if err := c.request(ctx, "GetSceneItemList", map[string]any{
		"sceneName": scene,
	}, &resp); err != nil {
		return nil, err
	}
	return resp.SceneItems, nil
}

// GroupSceneItemList returns the children of a group.
//
// When the named source is not a group, the server refuses the request; that
// refusal is returned as ErrNotAGroup so callers can classify top-level
// items without treating it as a fault. Transport errors propagate as-is.
func (c *Client) GroupSceneItemList(ctx context.Context, group string) ([]SceneItem, error) {
	var resp struct {
		SceneItems []SceneItem `json:"sceneItems"`
	}
	err := c.request(ctx, "GetGroupSceneItemList", map[string]any{
		"sceneName": group,
	}, &resp)
	if err != nil {
		if errIsRequestRefusal(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotAGroup, group)
		}
		return nil, err
	}
	return resp.SceneItems, nil
}

// SceneItemEnabled reads the enabled (visible) state of a scene item.
// container is the scene or group owning the item.
func (c *Client) SceneItemEnabled(ctx context.Context, container string, itemID int) (bool, error) {
	var resp struct {
		SceneItemEnabled bool `json:"sceneItemEnabled"`
	}
	if err := c.request(ctx, "GetSceneItemEnabled", map[string]any{
		"sceneName":   container,
		"sceneItemId": itemID,
	}, &resp); err != nil {
		return false, err
	}
	return resp.SceneItemEnabled, nil
}

// SetSceneItemEnabled writes the enabled (visible) state of a scene item.
func (c *Client) SetSceneItemEnabled(ctx context.Context, container string, itemID int, enabled bool) error {
	return c.request(ctx, "SetSceneItemEnabled", map[string]any{
		"sceneName":        container,
		"sceneItemId":      itemID,
		"sceneItemEnabled": enabled,
	}, nil)
}

// InputList returns all inputs with their kind and capability bitmask.
func (c *Client) InputList(ctx context.Context) ([]InputInfo, error) {
	var resp struct {
		Inputs []InputInfo `json:"inputs"`
	}
	if err := c.request(ctx, "GetInputList", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Inputs, nil
}

// SetInputMute sets the mute state of an input directly.
func (c *Client) SetInputMute(ctx context.Context, name string, muted bool) error {
	return c.request(ctx, "SetInputMute", map[string]any{
		"inputName":  name,
		"inputMuted": muted,
	}, nil)
}

// ToggleInputMute flips the mute state of an input.
func (c *Client) ToggleInputMute(ctx context.Context, name string) error {
	return c.request(ctx, "ToggleInputMute", map[string]any{
		"inputName": name,
	}, nil)
}

// StartRecord starts recording. Pass-through transport command.
func (c *Client) StartRecord(ctx context.Context) error {
	return c.request(ctx, "StartRecord", nil, nil)
}

// StopRecord stops recording.
func (c *Client) StopRecord(ctx context.Context) error {
	return c.request(ctx, "StopRecord", nil, nil)
}

// StartStream starts streaming.
func (c *Client) StartStream(ctx context.Context) error {
	return c.request(ctx, "StartStream", nil, nil)
}

// StopStream stops streaming.
func (c *Client) StopStream(ctx context.Context) error {
	return c.request(ctx, "StopStream", nil, nil)
}
