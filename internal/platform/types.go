package platform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mj1618/scratchpad/internal/model"
)

// EventKind is a window manager event type.
type EventKind string

const (
	EventWindow EventKind = "window"
	EventTick   EventKind = "tick"
)

// Event is one notification from a subscription. Window is set for window
// events only.
type Event struct {
	Kind   EventKind
	Window *WindowChange
}

// WindowChange is the part of a window event needed to correlate it with a
// spawned process.
type WindowChange struct {
	Change string
	ConID  int64 // 0 when the event carried no container id
	PID    int   // 0 when the window manager reports none
}

// Criteria scopes a command to matching containers.
type Criteria struct {
	ConID int64     // Match by container ID (0 = unset)
	Tag   model.Tag // Match by exact mark ("" = unset)
}

// ByID scopes a command to one container.
func ByID(id int64) Criteria {
	return Criteria{ConID: id}
}

// ByTag scopes a command to the container carrying tag.
func ByTag(tag model.Tag) Criteria {
	return Criteria{Tag: tag}
}

// IsZero reports whether no criteria are set.
func (c Criteria) IsZero() bool {
	return c.ConID == 0 && c.Tag == ""
}

// String renders the criteria in window manager syntax, e.g.
// [con_id=99] or [con_mark="^SCRATCHPAD_term$"]. Marks are matched as
// regular expressions, so the tag is quoted and anchored.
func (c Criteria) String() string {
	var parts []string
	if c.ConID != 0 {
		parts = append(parts, fmt.Sprintf("con_id=%d", c.ConID))
	}
	if c.Tag != "" {
		pattern := "^" + regexp.QuoteMeta(string(c.Tag)) + "$"
		pattern = strings.ReplaceAll(pattern, `"`, `\"`)
		parts = append(parts, fmt.Sprintf("con_mark=\"%s\"", pattern))
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Scoped prefixes command with the rendered criteria.
func (c Criteria) Scoped(command string) string {
	if c.IsZero() {
		return command
	}
	return c.String() + " " + command
}
