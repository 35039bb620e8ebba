package control

import (
	"context"

	"github.com/nfarrant/obs-chat-core/internal/infrastructure/logging"
	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

// Gateway is the obs-websocket surface the controller drives. It is
// satisfied by *obsws.Client; tests substitute an in-memory fake.
type Gateway interface {
	Version(ctx context.Context) (obsws.VersionInfo, error)

	SceneList(ctx context.Context) ([]string, error)
	CurrentProgramScene(ctx context.Context) (string, error)
	SetCurrentProgramScene(ctx context.Context, name string) error

	SceneItemList(ctx context.Context, scene string) ([]obsws.SceneItem, error)
	GroupSceneItemList(ctx context.Context, group string) ([]obsws.SceneItem, error)
	SceneItemEnabled(ctx context.Context, container string, itemID int) (bool, error)
	SetSceneItemEnabled(ctx context.Context, container string, itemID int, enabled bool) error

	InputList(ctx context.Context) ([]obsws.InputInfo, error)
	SetInputMute(ctx context.Context, name string, muted bool) error
	ToggleInputMute(ctx context.Context, name string) error

	StartRecord(ctx context.Context) error
	StopRecord(ctx context.Context) error
	StartStream(ctx context.Context) error
	StopStream(ctx context.Context) error
}

var _ Gateway = (*obsws.Client)(nil)

// Controller coordinates all OBS operations over a single gateway.
//
// It holds no mutable state of its own; callers that need serialized access
// to the underlying connection serialize their calls (see internal/bridge).
type Controller struct {
	gw     Gateway
	logger *logging.Logger
}

// New creates a Controller driving the given gateway.
func New(gw Gateway, logger *logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Default()
	}
	return &Controller{gw: gw, logger: logger}
}

// Version returns the OBS and obs-websocket version strings.
func (c *Controller) Version(ctx context.Context) (obsws.VersionInfo, error) {
	return c.gw.Version(ctx)
}
