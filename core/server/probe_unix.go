//go:build unix

package server

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// exclusiveControl undoes the SO_REUSEADDR the runtime sets on listeners.
func exclusiveControl(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 0)
	})
	if err != nil {
		return err
	}
	return sockErr
}
