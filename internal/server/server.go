// Package server exposes scratchpad operations as Model Context Protocol
// tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/scratchpad/internal/config"
	"github.com/mj1618/scratchpad/internal/platform"
	"github.com/mj1618/scratchpad/internal/version"
)

// Server wraps the MCP server with the platform provider. Tool calls hold
// providerMu while they read the layout and issue commands. A launching
// toggle releases it while it waits for the new window, so a slow or stuck
// launch does not block the other tools.
type Server struct {
	provider   *platform.Provider
	cfg        *config.Config
	logger     *slog.Logger
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// Config holds MCP transport configuration.
type Config struct {
	Transport string
	Port      int
}

// New creates a Server with all scratchpad tools registered.
func New(provider *platform.Provider, cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
		mcp:      mcpserver.NewMCPServer("scratchpad", version.Version),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(c Config) error {
	s.logger.Info("starting MCP server", "transport", c.Transport)
	switch c.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", c.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", c.Transport)
	}
}

func scratchpadParams(description string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithString("name", mcp.Required(), mcp.Description("Scratchpad name; the window is marked SCRATCHPAD_<name>")),
		mcp.WithString("command", mcp.Description("Command line to launch when no window carries the tag (space delimited). Defaults to the configured command")),
		mcp.WithNumber("width", mcp.Description("Width in percent of the focused display")),
		mcp.WithNumber("height", mcp.Description("Height in percent of the focused display")),
		mcp.WithNumber("width_px", mcp.Description("Width in pixels; overrides width")),
		mcp.WithNumber("height_px", mcp.Description("Height in pixels; overrides height")),
		mcp.WithString("placement", mcp.Description("center or offset")),
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("toggle", scratchpadParams("Toggle a scratchpad window: launch it if missing, hide it if focused, otherwise show it")...),
		s.handleToggle,
	)
	s.mcp.AddTool(
		mcp.NewTool("show", scratchpadParams("Show a scratchpad window on the current workspace and focus it")...),
		s.handleShow,
	)
	s.mcp.AddTool(
		mcp.NewTool("hide",
			mcp.WithDescription("Move a scratchpad window back into the scratchpad"),
			mcp.WithString("name", mcp.Required(), mcp.Description("Scratchpad name")),
		),
		s.handleHide,
	)
	s.mcp.AddTool(
		mcp.NewTool("list",
			mcp.WithDescription("List windows carrying a scratchpad tag and whether they are hidden"),
		),
		s.handleList,
	)
}
