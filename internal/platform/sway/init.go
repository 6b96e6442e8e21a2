package sway

import (
	"github.com/mj1618/scratchpad/internal/platform"
	"github.com/mj1618/scratchpad/internal/platform/launcher"
	"github.com/mj1618/scratchpad/internal/platform/notify"
)

func init() {
	platform.NewProviderFunc = func(opts platform.Options) (*platform.Provider, error) {
		path, err := SocketPath(opts.SocketPath)
		if err != nil {
			return nil, err
		}
		client, err := Connect(path, opts.Logger)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Tree:       client,
			Outputs:    client,
			Commander:  client,
			Subscriber: client,
			Launcher:   launcher.New(opts.Logger),
			Notifier:   notify.New(opts.Logger),
			Closer:     client,
		}, nil
	}
}
