package ipc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/hostd/internal/application/usecase"
	"github.com/bnema/hostd/internal/domain/entity"
)

// Deps are the bridges the route table calls into.
type Deps struct {
	Lifecycle *usecase.WindowLifecycleUseCase
	Settings  *usecase.SettingsBridge
	Paths     *usecase.PathBridge
	Dialogs   *usecase.DialogBridge
}

// NewRoutes returns the host's dispatch table.
func NewRoutes(deps Deps) Routes {
	return Routes{
		ChannelNewWindow: Send(func(ctx context.Context, _ Request) error {
			_, err := deps.Lifecycle.NewWindow(ctx)
			return err
		}),

		ChannelWindowReady: Send(func(ctx context.Context, req Request) error {
			deps.Lifecycle.WindowReady(ctx, req.Sender)
			return nil
		}),

		ChannelMessageBox: Invoke(func(ctx context.Context, req Request) (any, error) {
			var options entity.MessageBoxOptions
			if err := decodeArg(req, 0, &options); err != nil {
				return nil, err
			}
			return deps.Dialogs.ShowMessageBox(ctx, options)
		}),

		ChannelGetPath: Invoke(func(ctx context.Context, req Request) (any, error) {
			var name string
			if err := decodeArg(req, 0, &name); err != nil {
				return nil, err
			}
			return deps.Paths.Resolve(ctx, entity.PathName(name))
		}),

		ChannelGetSettings: Invoke(func(ctx context.Context, req Request) (any, error) {
			var key string
			if err := decodeArg(req, 0, &key); err != nil {
				return nil, err
			}
			return deps.Settings.Get(ctx, key)
		}),

		ChannelSetSettings: Invoke(func(ctx context.Context, req Request) (any, error) {
			var key string
			if err := decodeArg(req, 0, &key); err != nil {
				return nil, err
			}
			var value any
			if err := decodeArg(req, 1, &value); err != nil {
				return nil, err
			}
			if err := deps.Settings.Set(ctx, key, value); err != nil {
				return nil, err
			}
			return nil, nil
		}),
	}
}

func decodeArg(req Request, index int, dst any) error {
	if index >= len(req.Args) {
		return fmt.Errorf("%w: %s expects argument %d", ErrMissingArgument, req.Channel, index)
	}
	if err := json.Unmarshal(req.Args[index], dst); err != nil {
		return fmt.Errorf("%w: %s argument %d: %w", ErrInvalidArgument, req.Channel, index, err)
	}
	return nil
}
