package server

import (
	"context"
	"net"
)

// Probe reports whether addr can be bound exclusively right now. The
// listener is released immediately, so another process may still take the
// port before the real bind.
//
// SO_REUSEADDR is cleared on the probe socket where the platform allows it,
// otherwise BSD kernels accept a loopback bind next to a wildcard listener
// on the same port.
func Probe(addr string) bool {
	ln, err := listenExclusive(addr)
	if err != nil {
		return false
	}
	_ = ln.Close()
	return true
}

func listenExclusive(addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: exclusiveControl}
	return lc.Listen(context.Background(), "tcp", addr)
}
