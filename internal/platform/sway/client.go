package sway

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	gosway "github.com/joshuarubin/go-sway"
	"github.com/pkg/errors"

	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/platform"
)

// Client talks to sway or i3 over its IPC socket. Requests share one
// connection; each subscription gets its own.
type Client struct {
	path   string
	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	ipc gosway.Client
}

// Connect opens the request connection at path.
//
// Subscriptions dial $SWAYSOCK, so Connect points it at path. Spawned
// children inherit the same value.
func Connect(path string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ipc, err := gosway.New(ctx, gosway.WithSocketPath(path))
	if err != nil {
		cancel()
		return nil, errors.Wrapf(err, "failed to connect to %s", path)
	}
	if os.Getenv("SWAYSOCK") != path {
		if err := os.Setenv("SWAYSOCK", path); err != nil {
			cancel()
			return nil, errors.Wrap(err, "failed to export SWAYSOCK")
		}
	}
	logger.Debug("connected to window manager", "socket", path)
	return &Client{path: path, logger: logger, ctx: ctx, cancel: cancel, ipc: ipc}, nil
}

// Close ends the request connection and any open subscriptions.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel()
	if closer, ok := c.ipc.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// GetTree returns the current layout tree.
func (c *Client) GetTree() (model.Node, error) {
	c.mu.Lock()
	root, err := c.ipc.GetTree(c.ctx)
	c.mu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "GET_TREE")
	}
	return convertTree(root)
}

// GetOutputs returns all outputs, with the output of the focused workspace
// flagged as focused.
func (c *Client) GetOutputs() ([]model.Output, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	outputs, err := c.ipc.GetOutputs(c.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "GET_OUTPUTS")
	}
	workspaces, err := c.ipc.GetWorkspaces(c.ctx)
	if err != nil {
		return nil, errors.Wrap(err, "GET_WORKSPACES")
	}
	return convertOutputs(outputs, workspaces)
}

// Run executes command scoped by criteria.
func (c *Client) Run(command string, criteria platform.Criteria) error {
	full := criteria.Scoped(command)
	c.logger.Debug("running command", "command", full)
	c.mu.Lock()
	replies, err := c.ipc.RunCommand(c.ctx, full)
	c.mu.Unlock()
	if err != nil {
		return errors.Wrapf(err, "RUN_COMMAND %s", full)
	}
	if err := commandError(replies); err != nil {
		return errors.Wrapf(err, "%s", full)
	}
	return nil
}

// Subscribe opens a dedicated connection subscribed to kinds.
func (c *Client) Subscribe(kinds ...platform.EventKind) (platform.EventStream, error) {
	types := make([]gosway.EventType, 0, len(kinds))
	for _, k := range kinds {
		switch k {
		case platform.EventWindow, platform.EventTick:
			types = append(types, gosway.EventType(k))
		default:
			return nil, errors.Errorf("unsupported event kind %q", k)
		}
	}
	c.logger.Debug("subscribing", "events", kinds)
	return subscribe(c.ctx, types, c.logger), nil
}
