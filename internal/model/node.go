package model

import "errors"

// ErrMalformed is returned when a layout snapshot does not have the shape
// the window manager documents.
var ErrMalformed = errors.New("malformed layout snapshot")

// Node is one node of a window manager layout snapshot. It is either a
// *Branch (has at least one child) or a *Leaf (a real window).
type Node interface {
	node()
}

// Branch is an inner node: root, output, workspace or split container.
type Branch struct {
	ID       int64  `yaml:"id"                 json:"id"`
	Name     string `yaml:"name,omitempty"     json:"name,omitempty"`
	Type     string `yaml:"type"               json:"type"`
	Children []Node `yaml:"children,omitempty" json:"children,omitempty"` // Tiled children, in order
	Floating []Node `yaml:"floating,omitempty" json:"floating,omitempty"` // Floating children, in order
}

// Leaf is a node with no children in either sequence.
type Leaf struct {
	Container
}

func (*Branch) node() {}
func (*Leaf) node()   {}

// Container is a window: the only kind of node that can carry a tag.
type Container struct {
	ID        int64    `yaml:"id"                  json:"id"`
	Name      string   `yaml:"name,omitempty"      json:"name,omitempty"`
	AppID     string   `yaml:"app_id,omitempty"    json:"app_id,omitempty"`
	Marks     []string `yaml:"marks,omitempty"     json:"marks,omitempty"`
	PID       int      `yaml:"pid,omitempty"       json:"pid,omitempty"`
	Focused   bool     `yaml:"focused,omitempty"   json:"focused,omitempty"`
	Workspace string   `yaml:"workspace,omitempty" json:"workspace,omitempty"` // Enclosing workspace name, "__i3_scratch" when hidden
}

// HasMark reports whether the container carries mark.
func (c Container) HasMark(mark string) bool {
	for _, m := range c.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// Output is one display as reported by the window manager.
type Output struct {
	Name    string `yaml:"name"    json:"name"`
	Active  bool   `yaml:"active"  json:"active"`
	Focused bool   `yaml:"focused" json:"focused"`
	Rect    Rect   `yaml:"rect"    json:"rect"`
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}
