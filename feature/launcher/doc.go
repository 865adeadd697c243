// Package launcher runs the Focus Writer launch sequence.
//
// The sequence is linear:
//
//  1. resolve the document under the served root (see core/document)
//  2. probe the port on loopback
//  3. bind the static server on all interfaces
//  4. open the browser on a detached goroutine after a short delay
//  5. serve until the context is cancelled
//
// When the probe finds the port taken, the launcher assumes another copy is
// already serving, opens the browser against it and stops. It does not check
// that the other process serves the same document.
//
// # Errors
//
// Run returns nil on a normal interrupt. Any other outcome wraps one of
// ErrNoDocument, ErrPortInUse, ErrBind or ErrUnexpected; Kind recovers it.
// Browser failures are reported on the output and never returned.
package launcher
