//go:build !unix

package server

import "syscall"

// Listeners are not created with SO_REUSEADDR here, so nothing to undo.
func exclusiveControl(network, address string, c syscall.RawConn) error {
	return nil
}
