package geometry

import (
	"fmt"
	"strings"
)

// Placement selects how a resized scratchpad is positioned.
type Placement string

const (
	// PlaceCenter asks the window manager to center the window itself.
	PlaceCenter Placement = "center"
	// PlaceOffset positions the window at a computed pixel offset.
	PlaceOffset Placement = "offset"
)

// ParsePlacement converts a flag or config value to a Placement.
// An empty string selects PlaceCenter.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return PlaceCenter, nil
	case "offset":
		return PlaceOffset, nil
	default:
		return "", fmt.Errorf("unknown placement: %q (expected center or offset)", s)
	}
}

// Command resolves size against the focused display and returns the
// window manager command that resizes and positions the window.
func (p Placement) Command(size Size, source DisplaySource) (string, error) {
	r := &resolver{source: source}
	box, err := r.box(size)
	if err != nil {
		return "", err
	}
	switch p {
	case PlaceOffset:
		display, err := r.rect()
		if err != nil {
			return "", err
		}
		x, y := box.Offset(display)
		return fmt.Sprintf("resize set %d px %d px, move position %d px %d px", box.Width, box.Height, x, y), nil
	default:
		return fmt.Sprintf("resize set %d px %d px, move position center", box.Width, box.Height), nil
	}
}
