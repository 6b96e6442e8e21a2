package platform

import "github.com/mj1618/scratchpad/internal/model"

// TreeReader reads the window layout from the window manager.
type TreeReader interface {
	// GetTree returns a fresh snapshot of the full layout tree.
	GetTree() (model.Node, error)
}

// OutputReader lists displays.
type OutputReader interface {
	GetOutputs() ([]model.Output, error)
}

// Commander runs window manager commands.
type Commander interface {
	// Run executes command against the containers matching criteria.
	Run(command string, criteria Criteria) error
}

// Subscriber opens event subscriptions.
type Subscriber interface {
	Subscribe(kinds ...EventKind) (EventStream, error)
}

// EventStream is an open subscription. It is not safe for concurrent use.
type EventStream interface {
	// TryRecv returns the next queued event without blocking.
	TryRecv() (Event, bool)
	// Poll waits a bounded time for one event and queues it. It returns nil
	// when the wait passes without an event.
	Poll() error
	Close() error
}

// Launcher starts external processes.
type Launcher interface {
	Spawn(command string, args []string) (Process, error)
}

// Process is a started child process.
type Process interface {
	PID() int
	// TryStatus reports whether the process has exited, without blocking.
	TryStatus() (exited bool, err error)
}

// Notifier shows desktop notifications.
type Notifier interface {
	Notify(summary, body string) error
}
