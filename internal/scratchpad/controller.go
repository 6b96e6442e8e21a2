// Package scratchpad decides whether a tagged scratchpad window should be
// launched, shown or hidden, and carries out that decision through the
// window manager.
package scratchpad

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mj1618/scratchpad/internal/geometry"
	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/platform"
)

// DefaultSettleDelay is the pause between moving a window out of (or
// into) the scratchpad and resizing it. The window manager applies the
// move asynchronously; resizing too early is silently ignored.
const DefaultSettleDelay = 50 * time.Millisecond

// ErrNotFound is returned by Show and Hide when no window carries the tag.
var ErrNotFound = errors.New("scratchpad window not found")

// Decision is the action a toggle takes.
type Decision int

const (
	DecisionLaunch Decision = iota + 1
	DecisionShow
	DecisionHide
)

func (d Decision) String() string {
	switch d {
	case DecisionLaunch:
		return "launch"
	case DecisionShow:
		return "show"
	case DecisionHide:
		return "hide"
	default:
		return "unknown"
	}
}

// MarshalText lets Decision render by name in yaml and json output.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Decide picks the toggle action for tag: launch when no container carries
// it, hide when the tagged container is focused, show otherwise.
func Decide(containers []model.Container, tag model.Tag) (Decision, model.Container) {
	c, ok := model.FindByTag(containers, tag)
	switch {
	case !ok:
		return DecisionLaunch, c
	case c.Focused:
		return DecisionHide, c
	default:
		return DecisionShow, c
	}
}

// Options configures a Controller.
type Options struct {
	Size        geometry.Size
	Placement   geometry.Placement
	SettleDelay time.Duration
	Notify      bool // Send a desktop notification when a launch is abandoned
}

// Target identifies one scratchpad.
type Target struct {
	Tag    model.Tag
	Launch Launch
}

// NewTarget builds the Target for a scratchpad name. The first element of
// argv is the program; an empty argv leaves the target unlaunchable.
func NewTarget(name string, argv []string) Target {
	t := Target{Tag: model.NewTag(name)}
	if len(argv) > 0 {
		t.Launch.Command = argv[0]
	}
	if len(argv) > 1 {
		t.Launch.Args = argv[1:]
	}
	return t
}

// Result reports what a Controller did.
type Result struct {
	Tag       string           `yaml:"tag"                 json:"tag"`
	Decision  Decision         `yaml:"decision"            json:"decision"`
	Container *model.Container `yaml:"container,omitempty" json:"container,omitempty"`
	Watch     *WatchResult     `yaml:"watch,omitempty"     json:"watch,omitempty"`
}

// Controller runs toggle decisions against a window manager.
type Controller struct {
	provider *platform.Provider
	opts     Options
	logger   *slog.Logger
	watcher  *Watcher
	lock     sync.Locker
	sleep    func(time.Duration)
}

type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// New creates a Controller using provider's backends.
func New(provider *platform.Provider, opts Options, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Placement == "" {
		opts.Placement = geometry.PlaceCenter
	}
	c := &Controller{
		provider: provider,
		opts:     opts,
		logger:   logger,
		lock:     noLock{},
		sleep:    time.Sleep,
	}
	c.watcher = &Watcher{
		launcher:   provider.Launcher,
		subscriber: provider.Subscriber,
		commander:  provider.Commander,
		display:    geometry.DisplayFunc(c.focusedDisplay),
		settle:     opts.SettleDelay,
		logger:     logger,
		sleep:      func(d time.Duration) { c.sleep(d) },
	}
	return c
}

// Serialize makes every operation hold l while it reads the layout and
// issues commands. A launch releases l once it has decided to launch, so
// waiting for the new window does not block other callers. Two concurrent
// toggles of a scratchpad that is still starting may both launch it.
func (c *Controller) Serialize(l sync.Locker) *Controller {
	c.lock = l
	return c
}

func (c *Controller) focusedDisplay() (model.Rect, error) {
	outputs, err := c.provider.Outputs.GetOutputs()
	if err != nil {
		return model.Rect{}, err
	}
	return geometry.FocusedOutput(outputs)
}

func (c *Controller) containers() ([]model.Container, error) {
	root, err := c.provider.Tree.GetTree()
	if err != nil {
		return nil, fmt.Errorf("failed to get layout tree: %w", err)
	}
	return model.Flatten(root), nil
}

// Toggle launches, shows or hides the scratchpad depending on whether its
// window exists and is focused. On launch it blocks until the new window
// has been adopted or the process has exited.
func (c *Controller) Toggle(target Target) (Result, error) {
	c.lock.Lock()
	containers, err := c.containers()
	if err != nil {
		c.lock.Unlock()
		return Result{}, err
	}
	decision, container := Decide(containers, target.Tag)
	c.logger.Debug("toggle decision", "tag", target.Tag, "decision", decision, "con_id", container.ID)

	if decision == DecisionLaunch {
		c.lock.Unlock()
		return c.launch(target)
	}
	defer c.lock.Unlock()

	switch decision {
	case DecisionHide:
		return c.hide(target.Tag, container)
	default:
		return c.show(target.Tag, container)
	}
}

// Show brings the tagged window out of the scratchpad and places it,
// whatever its current state.
func (c *Controller) Show(tag model.Tag) (Result, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	container, err := c.find(tag)
	if err != nil {
		return Result{}, err
	}
	return c.show(tag, container)
}

// Hide moves the tagged window to the scratchpad.
func (c *Controller) Hide(tag model.Tag) (Result, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	container, err := c.find(tag)
	if err != nil {
		return Result{}, err
	}
	return c.hide(tag, container)
}

// List returns every window carrying a scratchpad tag.
func (c *Controller) List() ([]model.Window, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	containers, err := c.containers()
	if err != nil {
		return nil, err
	}
	return model.Windows(containers), nil
}

func (c *Controller) find(tag model.Tag) (model.Container, error) {
	containers, err := c.containers()
	if err != nil {
		return model.Container{}, err
	}
	container, ok := model.FindByTag(containers, tag)
	if !ok {
		return model.Container{}, fmt.Errorf("%w: %s", ErrNotFound, tag)
	}
	return container, nil
}

func (c *Controller) launch(target Target) (Result, error) {
	result := Result{Tag: target.Tag.String(), Decision: DecisionLaunch}
	if target.Launch.Command == "" {
		return result, fmt.Errorf("no command configured for scratchpad %q", target.Tag.Name())
	}
	if c.provider.Launcher == nil || c.provider.Subscriber == nil {
		return result, platform.ErrNoLauncher
	}

	watch, err := c.watcher.Watch(target.Launch, target.Tag, c.opts.Size, c.opts.Placement)
	if err != nil {
		return result, err
	}
	result.Watch = &watch

	if watch.Outcome == Abandoned && c.opts.Notify && c.provider.Notifier != nil {
		body := fmt.Sprintf("%s exited before opening a window", target.Launch.String())
		if err := c.provider.Notifier.Notify("scratchpad "+target.Tag.Name(), body); err != nil {
			c.logger.Warn("failed to send notification", "error", err)
		}
	}
	return result, nil
}

func (c *Controller) hide(tag model.Tag, container model.Container) (Result, error) {
	if err := c.provider.Commander.Run("move scratchpad", platform.ByTag(tag)); err != nil {
		return Result{}, fmt.Errorf("failed to hide %s: %w", tag, err)
	}
	return Result{Tag: tag.String(), Decision: DecisionHide, Container: &container}, nil
}

// show focuses the window, which pulls it out of the scratchpad onto the
// current workspace, and only then resizes it: the resize is scoped by tag
// and is dropped if the window is not yet visible.
func (c *Controller) show(tag model.Tag, container model.Container) (Result, error) {
	place, err := c.opts.Placement.Command(c.opts.Size, geometry.DisplayFunc(c.focusedDisplay))
	if err != nil {
		return Result{}, err
	}
	criteria := platform.ByTag(tag)
	if err := c.provider.Commander.Run("move scratchpad, focus", criteria); err != nil {
		return Result{}, fmt.Errorf("failed to show %s: %w", tag, err)
	}
	c.sleep(c.opts.SettleDelay)
	if err := c.provider.Commander.Run(place, criteria); err != nil {
		return Result{}, fmt.Errorf("failed to place %s: %w", tag, err)
	}
	return Result{Tag: tag.String(), Decision: DecisionShow, Container: &container}, nil
}
