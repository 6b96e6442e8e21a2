package sway

import (
	gosway "github.com/joshuarubin/go-sway"
	"github.com/pkg/errors"

	"github.com/mj1618/scratchpad/internal/model"
)

func malformed(format string, args ...interface{}) error {
	return errors.Wrapf(model.ErrMalformed, format, args...)
}

// convertTree converts a GET_TREE reply into the typed tree. Container ids
// start at 1, so a zero id marks an incomplete reply.
func convertTree(root *gosway.Node) (model.Node, error) {
	return convertNode(root, "")
}

func convertNode(n *gosway.Node, workspace string) (model.Node, error) {
	if n == nil {
		return nil, malformed("missing node")
	}
	if n.ID == 0 {
		return nil, malformed("node %q without id", n.Name)
	}
	if string(n.Type) == "workspace" {
		workspace = n.Name
	}

	if len(n.Nodes) == 0 && len(n.FloatingNodes) == 0 {
		c := model.Container{
			ID:        int64(n.ID),
			Name:      n.Name,
			Marks:     n.Marks,
			PID:       pidOf(n),
			Focused:   n.Focused,
			Workspace: workspace,
		}
		switch {
		case n.AppID != nil && *n.AppID != "":
			c.AppID = *n.AppID
		case n.WindowProperties != nil:
			c.AppID = n.WindowProperties.Class
		}
		return &model.Leaf{Container: c}, nil
	}

	b := &model.Branch{ID: int64(n.ID), Name: n.Name, Type: string(n.Type)}
	for _, child := range n.Nodes {
		node, err := convertNode(child, workspace)
		if err != nil {
			return nil, err
		}
		b.Children = append(b.Children, node)
	}
	for _, child := range n.FloatingNodes {
		node, err := convertNode(child, workspace)
		if err != nil {
			return nil, err
		}
		b.Floating = append(b.Floating, node)
	}
	return b, nil
}

// pidOf returns the owning process of n, or 0 when the window manager does
// not report one (i3).
func pidOf(n *gosway.Node) int {
	if n.PID == nil {
		return 0
	}
	return int(*n.PID)
}

// convertOutputs converts a GET_OUTPUTS reply. Neither i3 nor every sway
// release flags the focused output, so focus is taken from the output of
// the focused workspace.
func convertOutputs(outputs []gosway.Output, workspaces []gosway.Workspace) ([]model.Output, error) {
	focused := ""
	for _, ws := range workspaces {
		if ws.Focused {
			focused = ws.Output
			break
		}
	}

	converted := make([]model.Output, 0, len(outputs))
	for _, o := range outputs {
		r := o.Rect
		if o.Active && (r.Width <= 0 || r.Height <= 0) {
			return nil, malformed("active output %q without rect", o.Name)
		}
		converted = append(converted, model.Output{
			Name:    o.Name,
			Active:  o.Active,
			Focused: focused != "" && o.Name == focused,
			Rect:    model.Rect{X: int(r.X), Y: int(r.Y), Width: int(r.Width), Height: int(r.Height)},
		})
	}
	return converted, nil
}

// commandError returns an error for the first failed command in a
// RUN_COMMAND reply.
func commandError(replies []gosway.RunCommandReply) error {
	for _, r := range replies {
		if !r.Success {
			if r.Error == "" {
				return errors.New("command failed")
			}
			return errors.Errorf("command failed: %s", r.Error)
		}
	}
	return nil
}
