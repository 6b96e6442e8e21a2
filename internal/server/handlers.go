package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/scratchpad/internal/config"
	"github.com/mj1618/scratchpad/internal/geometry"
	"github.com/mj1618/scratchpad/internal/output"
	"github.com/mj1618/scratchpad/internal/scratchpad"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// resolve merges tool arguments over the configured scratchpad.
func (s *Server) resolve(params map[string]interface{}) (config.Resolved, error) {
	name := stringParam(params, "name", "")
	if name == "" {
		return config.Resolved{}, fmt.Errorf("name is required")
	}
	r, err := s.cfg.Scratchpad(name)
	if err != nil {
		return config.Resolved{}, err
	}
	if command := stringParam(params, "command", ""); command != "" {
		r.Command = strings.Fields(command)
	}
	if v := intParam(params, "width", 0); v > 0 {
		r.Width = v
	}
	if v := intParam(params, "height", 0); v > 0 {
		r.Height = v
	}
	if v := intParam(params, "width_px", 0); v > 0 {
		r.WidthPx = v
	}
	if v := intParam(params, "height_px", 0); v > 0 {
		r.HeightPx = v
	}
	if p := stringParam(params, "placement", ""); p != "" {
		placement, err := geometry.ParsePlacement(p)
		if err != nil {
			return config.Resolved{}, err
		}
		r.Placement = placement
	}
	return r, nil
}

// run resolves the arguments and applies fn to a controller serialized on
// the provider mutex.
func (s *Server) run(
	request mcp.CallToolRequest,
	fn func(*scratchpad.Controller, config.Resolved) (scratchpad.Result, error),
) (*mcp.CallToolResult, error) {
	r, err := s.resolve(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctl := scratchpad.New(s.provider, r.Options(), s.logger).Serialize(&s.providerMu)
	result, err := fn(ctl, r)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(result)), nil
}

func (s *Server) handleToggle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(request, func(ctl *scratchpad.Controller, r config.Resolved) (scratchpad.Result, error) {
		return ctl.Toggle(r.Target())
	})
}

func (s *Server) handleShow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(request, func(ctl *scratchpad.Controller, r config.Resolved) (scratchpad.Result, error) {
		return ctl.Show(r.Target().Tag)
	})
}

func (s *Server) handleHide(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(request, func(ctl *scratchpad.Controller, r config.Resolved) (scratchpad.Result, error) {
		return ctl.Hide(r.Target().Tag)
	})
}

func (s *Server) handleList(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctl := scratchpad.New(s.provider, scratchpad.Options{}, s.logger).Serialize(&s.providerMu)
	windows, err := ctl.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(output.ListResult{Windows: windows})), nil
}
