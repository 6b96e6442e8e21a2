package sway

import (
	"strings"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

// socketAtom is the root window property i3 publishes its socket path on.
const socketAtom = "I3_SOCKET_PATH"

// x11SocketPath reads I3_SOCKET_PATH from the root window of $DISPLAY.
func x11SocketPath() (string, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return "", errors.Wrap(err, "failed to connect to X server")
	}
	defer conn.Close()

	root := xproto.Setup(conn).DefaultScreen(conn).Root
	atom, err := xproto.InternAtom(conn, true, uint16(len(socketAtom)), socketAtom).Reply()
	if err != nil {
		return "", errors.Wrapf(err, "failed to intern %s", socketAtom)
	}
	if atom.Atom == xproto.AtomNone {
		return "", errors.Errorf("%s is not set", socketAtom)
	}

	// Length is in 32-bit units.
	reply, err := xproto.GetProperty(conn, false, root, atom.Atom, xproto.GetPropertyTypeAny, 0, 1024).Reply()
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", socketAtom)
	}
	path := strings.TrimRight(string(reply.Value), "\x00")
	if path == "" {
		return "", errors.Errorf("%s is empty", socketAtom)
	}
	return path, nil
}
