// Package sway provides the sway and i3 backend over the i3-ipc socket
// protocol, using go-sway for the wire protocol. Importing it registers
// the provider.
package sway
