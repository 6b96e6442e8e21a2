package notify

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestNotify_NoBus(t *testing.T) {
	n := New(nil)
	n.bus = func() (*dbus.Conn, error) { return nil, errors.New("no session bus") }

	err := n.Notify("scratchpad term", "foot exited")
	assert.ErrorContains(t, err, "session bus")
}
