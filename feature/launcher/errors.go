package launcher

import "errors"

// Launch failures. Every error returned by Run wraps exactly one of these.
var (
	// ErrNoDocument means the served root holds no HTML document.
	ErrNoDocument = errors.New("no html document found")
	// ErrPortInUse means the port was taken and the existing server was reused.
	ErrPortInUse = errors.New("port already in use")
	// ErrBind means the listener could not be bound after a successful probe.
	ErrBind = errors.New("failed to bind listener")
	// ErrUnexpected covers everything else, including recovered panics.
	ErrUnexpected = errors.New("unexpected error")
)

// Kind returns the launch error kind wrapped by err, or nil.
func Kind(err error) error {
	for _, kind := range []error{ErrNoDocument, ErrPortInUse, ErrBind, ErrUnexpected} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
