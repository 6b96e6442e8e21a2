package platform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Provider bundles the window manager and process backends.
type Provider struct {
	Tree       TreeReader
	Outputs    OutputReader
	Commander  Commander
	Subscriber Subscriber
	Launcher   Launcher
	Notifier   Notifier

	// Closer releases the backend's connections. May be nil.
	Closer io.Closer
}

// Close releases the provider's connections.
func (p *Provider) Close() error {
	if p.Closer == nil {
		return nil
	}
	return p.Closer.Close()
}

// Options configures provider construction.
type Options struct {
	SocketPath string // Window manager IPC socket ("" = discover)
	Logger     *slog.Logger
}

// ErrUnsupported is returned when no backend is registered.
var ErrUnsupported = fmt.Errorf("scratchpad is not supported on %s/%s; a sway or i3 session is required", runtime.GOOS, runtime.GOARCH)

// ErrNoLauncher is returned when spawning is requested from a provider
// without a process launcher.
var ErrNoLauncher = errors.New("process launching not available")

// NewProviderFunc is set by backend packages via init().
// See internal/platform/sway/init.go for the sway / i3 registration.
var NewProviderFunc func(opts Options) (*Provider, error)

// NewProvider returns a Provider connected to the running window manager.
func NewProvider(opts Options) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return NewProviderFunc(opts)
}
