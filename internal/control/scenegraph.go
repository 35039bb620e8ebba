package control

import (
	"context"
	"errors"

	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

// TryGetChildren classifies a top-level scene item. For a group it returns
// the group's children and isGroup=true; for a plain source it returns
// isGroup=false. Only gateway faults surface as errors.
func (c *Controller) TryGetChildren(ctx context.Context, name string) (children []obsws.SceneItem, isGroup bool, err error) {
	items, err := c.gw.GroupSceneItemList(ctx, name)
	if err != nil {
		if errors.Is(err, obsws.ErrNotAGroup) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return items, true, nil
}

// FindInGroups locates a source inside the groups of the current scene.
//
// Top-level items are probed in scene order, one level deep; the first
// group containing a child with the given name wins. A source that only
// exists as a top-level item is reported as not found.
func (c *Controller) FindInGroups(ctx context.Context, name string) (group string, itemID int, found bool, err error) {
	scene, err := c.gw.CurrentProgramScene(ctx)
	if err != nil {
		return "", 0, false, err
	}
	items, err := c.gw.SceneItemList(ctx, scene)
	if err != nil {
		return "", 0, false, err
	}

	for _, item := range items {
		children, isGroup, err := c.TryGetChildren(ctx, item.Name)
		if err != nil {
			return "", 0, false, err
		}
		if !isGroup {
			continue
		}
		for _, child := range children {
			if child.Name == name {
				return item.Name, child.ID, true, nil
			}
		}
	}
	return "", 0, false, nil
}

// ListSources returns the children of every top-level group in the current
// scene, flattened in group order then child order. Duplicate names are
// preserved; top-level non-group items are excluded.
func (c *Controller) ListSources(ctx context.Context) ([]string, error) {
	scene, err := c.gw.CurrentProgramScene(ctx)
	if err != nil {
		return nil, err
	}
	items, err := c.gw.SceneItemList(ctx, scene)
	if err != nil {
		return nil, err
	}

	sources := []string{}
	for _, item := range items {
		children, isGroup, err := c.TryGetChildren(ctx, item.Name)
		if err != nil {
			return nil, err
		}
		if !isGroup {
			continue
		}
		for _, child := range children {
			sources = append(sources, child.Name)
		}
	}
	return sources, nil
}
