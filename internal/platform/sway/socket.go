package sway

import (
	"os"

	"github.com/pkg/errors"
)

// ErrSocketNotFound is returned when no IPC socket could be located.
var ErrSocketNotFound = errors.New("no sway or i3 IPC socket found; set $SWAYSOCK or pass --sock")

// resolver locates the IPC socket. Fields are swappable for tests.
type resolver struct {
	getenv func(string) string
	x11    func() (string, error)
}

var defaultResolver = resolver{getenv: os.Getenv, x11: x11SocketPath}

// SocketPath returns explicit if set, then $SWAYSOCK, then $I3SOCK, then
// the I3_SOCKET_PATH property of the X11 root window.
func SocketPath(explicit string) (string, error) {
	return defaultResolver.resolve(explicit)
}

func (r resolver) resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, env := range []string{"SWAYSOCK", "I3SOCK"} {
		if p := r.getenv(env); p != "" {
			return p, nil
		}
	}
	if r.getenv("DISPLAY") != "" {
		if p, err := r.x11(); err == nil {
			return p, nil
		}
	}
	return "", ErrSocketNotFound
}
