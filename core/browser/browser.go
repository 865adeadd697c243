package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens a URL in a browser.
type Opener interface {
	// Open asks the platform to show url.
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

var quietHelper sync.Once

// System returns an Opener backed by the platform's default browser
// (open on macOS, xdg-open and friends on Linux, rundll32 on Windows).
// The helper process output is discarded; pkg/browser keeps those writers
// in package globals, so they are set once no matter how often System is
// called.
func System() Opener {
	quietHelper.Do(func() {
		pkgbrowser.Stdout = io.Discard
		pkgbrowser.Stderr = io.Discard
	})
	return OpenerFunc(pkgbrowser.OpenURL)
}

// Open opens url and reports the outcome on out. A failure is logged and
// answered with the URL to open by hand; it is never returned.
func Open(opener Opener, url string, out io.Writer, logger *zap.Logger) {
	fmt.Fprintf(out, "🌐 Opening browser: %s\n", url)
	if err := opener.Open(url); err != nil {
		logger.Warn("Could not open browser", zap.String("url", url), zap.Error(err))
		fmt.Fprintf(out, "⚠️ Could not open browser automatically: %v\n", err)
		fmt.Fprintf(out, "📋 Please open this URL manually: %s\n", url)
	}
}

// OpenLater opens url after delay on its own goroutine. The caller does not
// wait for it and it is abandoned if the process exits first.
func OpenLater(opener Opener, url string, delay time.Duration, out io.Writer, logger *zap.Logger) {
	go func() {
		time.Sleep(delay)
		Open(opener, url, out, logger)
	}()
}
