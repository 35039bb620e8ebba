package obsws

// VersionInfo describes the OBS application and obs-websocket versions.
type VersionInfo struct {
	OBSVersion       string `json:"obsVersion"`
	WebSocketVersion string `json:"obsWebSocketVersion"`
}

// SceneItem is a placed, toggleable reference to a source within a scene or
// group. Name and ID are unique within the immediate container only, not
// globally.
type SceneItem struct {
	Name    string `json:"sourceName"`
	ID      int    `json:"sceneItemId"`
	Enabled bool   `json:"sceneItemEnabled"`
}

// InputInfo describes a named input independent of any scene placement.
// Capabilities is an opaque bitmask; bit 1 (value 2) signals audio support.
type InputInfo struct {
	Name         string `json:"inputName"`
	Kind         string `json:"inputKind"`
	Capabilities uint64 `json:"inputKindCaps"`
}
