// Package launcher starts scratchpad programs as child processes.
package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"

	"github.com/mj1618/scratchpad/internal/platform"
)

// Launcher spawns processes with exec.
type Launcher struct {
	logger *slog.Logger
}

// New returns a Launcher.
func New(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{logger: logger}
}

// Spawn starts command with args. The child inherits the environment; its
// standard streams are not connected.
func (l *Launcher) Spawn(command string, args []string) (platform.Process, error) {
	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", command, err)
	}
	p := &Process{cmd: cmd, done: make(chan struct{})}
	go p.wait()
	l.logger.Debug("spawned process", "command", command, "pid", cmd.Process.Pid)
	return p, nil
}

// Process is a started child.
type Process struct {
	cmd  *exec.Cmd
	done chan struct{}

	mu  sync.Mutex
	err error
}

func (p *Process) wait() {
	err := p.cmd.Wait()
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
	close(p.done)
}

// PID returns the operating system process ID.
func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// TryStatus reports whether the process has exited. A non-zero exit is
// not an error; the process has simply exited.
func (p *Process) TryStatus() (bool, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		err := p.err
		p.mu.Unlock()
		var exitErr *exec.ExitError
		if err == nil || errors.As(err, &exitErr) {
			return true, nil
		}
		return true, err
	default:
		return false, nil
	}
}
