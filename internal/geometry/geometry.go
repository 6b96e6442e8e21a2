// Package geometry turns scratchpad size settings into pixel boxes on the
// focused display and renders the window manager placement commands.
package geometry

import (
	"errors"
	"fmt"

	"github.com/mj1618/scratchpad/internal/model"
)

// ErrNoFocusedOutput is returned when the window manager reports no
// focused output to size against.
var ErrNoFocusedOutput = errors.New("no focused output")

// Unit is the unit of a Spec.
type Unit int

const (
	UnitPercent Unit = iota // Percentage of the display dimension
	UnitPixel               // Absolute pixels
)

// Spec is the size of one axis.
type Spec struct {
	Unit  Unit
	Value int
}

// Percent returns a Spec of n percent of the display dimension.
func Percent(n int) Spec { return Spec{Unit: UnitPercent, Value: n} }

// Pixel returns a Spec of n absolute pixels.
func Pixel(n int) Spec { return Spec{Unit: UnitPixel, Value: n} }

// Resolve returns the pixel size for a display dimension of d. Percentages
// are floored; values above 100 are not clamped.
func (s Spec) Resolve(d int) int {
	if s.Unit == UnitPixel {
		return s.Value
	}
	return d * s.Value / 100
}

func (s Spec) String() string {
	if s.Unit == UnitPixel {
		return fmt.Sprintf("%dpx", s.Value)
	}
	return fmt.Sprintf("%d%%", s.Value)
}

// Size holds one Spec per axis.
type Size struct {
	Width  Spec
	Height Spec
}

// NewSize builds a Size from percent and pixel settings. A pixel value of
// zero means the percentage for that axis applies.
func NewSize(widthPercent, heightPercent, widthPx, heightPx int) Size {
	size := Size{Width: Percent(widthPercent), Height: Percent(heightPercent)}
	if widthPx != 0 {
		size.Width = Pixel(widthPx)
	}
	if heightPx != 0 {
		size.Height = Pixel(heightPx)
	}
	return size
}

// DisplaySource provides the rectangle of the focused display.
type DisplaySource interface {
	FocusedDisplay() (model.Rect, error)
}

// DisplayFunc adapts a function to DisplaySource.
type DisplayFunc func() (model.Rect, error)

// FocusedDisplay calls f.
func (f DisplayFunc) FocusedDisplay() (model.Rect, error) { return f() }

// FocusedOutput returns the rectangle of the first focused output.
func FocusedOutput(outputs []model.Output) (model.Rect, error) {
	for _, o := range outputs {
		if o.Focused {
			return o.Rect, nil
		}
	}
	return model.Rect{}, ErrNoFocusedOutput
}

// Box is a resolved window size.
type Box struct {
	Width  int
	Height int
}

// Offset returns the position that centers b within display.
func (b Box) Offset(display model.Rect) (x, y int) {
	return (display.Width - b.Width) / 2, (display.Height - b.Height) / 2
}

// resolver fetches the display at most once and only when needed.
type resolver struct {
	source  DisplaySource
	display *model.Rect
}

func (r *resolver) rect() (model.Rect, error) {
	if r.display != nil {
		return *r.display, nil
	}
	rect, err := r.source.FocusedDisplay()
	if err != nil {
		return model.Rect{}, fmt.Errorf("failed to get focused display: %w", err)
	}
	r.display = &rect
	return rect, nil
}

func (r *resolver) axis(s Spec, dim func(model.Rect) int) (int, error) {
	if s.Unit == UnitPixel {
		return s.Value, nil
	}
	rect, err := r.rect()
	if err != nil {
		return 0, err
	}
	return s.Resolve(dim(rect)), nil
}

func (r *resolver) box(size Size) (Box, error) {
	w, err := r.axis(size.Width, func(rect model.Rect) int { return rect.Width })
	if err != nil {
		return Box{}, err
	}
	h, err := r.axis(size.Height, func(rect model.Rect) int { return rect.Height })
	if err != nil {
		return Box{}, err
	}
	return Box{Width: w, Height: h}, nil
}

// Resolve converts size into pixels. The display is fetched once, and only
// if at least one axis is a percentage.
func Resolve(size Size, source DisplaySource) (Box, error) {
	r := &resolver{source: source}
	return r.box(size)
}
