package scratchpad

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mj1618/scratchpad/internal/geometry"
	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/platform"
)

// Outcome is the terminal state of a spawn watch.
type Outcome int

const (
	// Matched means the child's window appeared and was tagged and placed.
	Matched Outcome = iota + 1
	// Abandoned means the child exited before any of its windows appeared.
	Abandoned
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// MarshalText lets Outcome render by name in yaml and json output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Launch is the command that opens a scratchpad application.
type Launch struct {
	Command string   `yaml:"command"        json:"command"`
	Args    []string `yaml:"args,omitempty" json:"args,omitempty"`
}

func (l Launch) String() string {
	return strings.Join(append([]string{l.Command}, l.Args...), " ")
}

// WatchResult describes a finished watch.
type WatchResult struct {
	Outcome Outcome `yaml:"outcome"          json:"outcome"`
	PID     int     `yaml:"pid"              json:"pid"`
	ConID   int64   `yaml:"con_id,omitempty" json:"con_id,omitempty"`
}

// Watcher launches a process and tags the first window it opens.
type Watcher struct {
	launcher   platform.Launcher
	subscriber platform.Subscriber
	commander  platform.Commander
	display    geometry.DisplaySource
	settle     time.Duration
	logger     *slog.Logger

	sleep func(time.Duration)
}

// Watch starts launch and blocks until a window owned by the new process
// appears or the process exits. A matching window is tagged, moved to the
// scratchpad, focused, and after the settle delay resized and positioned
// according to size and placement. At most one window is handled.
//
// An exit before any matching window is not an error: the result's
// Outcome is Abandoned. There is no timeout; a child that neither exits nor
// opens a window blocks Watch indefinitely.
func (w *Watcher) Watch(launch Launch, tag model.Tag, size geometry.Size, placement geometry.Placement) (WatchResult, error) {
	if w.launcher == nil {
		return WatchResult{}, platform.ErrNoLauncher
	}
	proc, err := w.launcher.Spawn(launch.Command, launch.Args)
	if err != nil {
		return WatchResult{}, fmt.Errorf("failed to launch %q: %w", launch.Command, err)
	}
	result := WatchResult{PID: proc.PID()}
	w.logger.Debug("launched scratchpad process", "tag", tag, "pid", result.PID, "command", launch.String())

	// The focused display is assumed stable while the child starts up.
	place, err := placement.Command(size, w.display)
	if err != nil {
		return result, err
	}

	stream, err := w.subscriber.Subscribe(platform.EventWindow, platform.EventTick)
	if err != nil {
		return result, fmt.Errorf("failed to subscribe to window events: %w", err)
	}
	defer stream.Close()

	for {
		exited, err := proc.TryStatus()
		if err != nil {
			return result, fmt.Errorf("failed to check process %d: %w", result.PID, err)
		}
		if exited {
			result.Outcome = Abandoned
			w.logger.Info("process exited before opening a window", "tag", tag, "pid", result.PID)
			return result, nil
		}

		for {
			ev, ok := stream.TryRecv()
			if !ok {
				break
			}
			if ev.Kind != platform.EventWindow {
				continue
			}
			we := ev.Window
			if we == nil || we.ConID == 0 {
				return result, fmt.Errorf("%w: window event without container id", model.ErrMalformed)
			}
			if we.PID != result.PID {
				continue
			}

			result.ConID = we.ConID
			w.logger.Debug("matched window", "tag", tag, "pid", result.PID, "con_id", result.ConID, "change", we.Change)
			if err := w.adopt(result.ConID, tag, place); err != nil {
				return result, err
			}
			result.Outcome = Matched
			return result, nil
		}

		if err := stream.Poll(); err != nil {
			return result, fmt.Errorf("failed to read window events: %w", err)
		}
	}
}

// adopt tags the container and parks it in the scratchpad, then places it
// once the move has settled.
func (w *Watcher) adopt(conID int64, tag model.Tag, place string) error {
	criteria := platform.ByID(conID)
	if err := w.commander.Run(fmt.Sprintf("mark %s, move scratchpad, focus", quote(tag.String())), criteria); err != nil {
		return fmt.Errorf("failed to tag container %d: %w", conID, err)
	}
	w.sleep(w.settle)
	if err := w.commander.Run(place, criteria); err != nil {
		return fmt.Errorf("failed to place container %d: %w", conID, err)
	}
	return nil
}

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps a command argument in double quotes, escaping backslashes
// and quotes.
func quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
