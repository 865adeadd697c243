package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"syscall"

	"focus-writer/core/browser"
	"focus-writer/core/document"
	"focus-writer/core/platform"
	"focus-writer/core/server"

	"go.uber.org/zap"
)

const rule = "============================================================"

// Launcher resolves the document, starts the static server and opens a browser.
type Launcher struct {
	cfg      server.Config
	logger   *zap.Logger
	out      io.Writer
	opener   browser.Opener
	probe    func(addr string) bool
	platform platform.Info
}

// Option customises a Launcher.
type Option func(*Launcher)

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(la *Launcher) { la.logger = l }
}

// WithOutput sets where operator-facing status lines go.
func WithOutput(w io.Writer) Option {
	return func(la *Launcher) { la.out = w }
}

// WithOpener sets how URLs are opened.
func WithOpener(o browser.Opener) Option {
	return func(la *Launcher) { la.opener = o }
}

// WithProbe replaces the port availability check.
func WithProbe(p func(addr string) bool) Option {
	return func(la *Launcher) { la.probe = p }
}

// New creates a Launcher for cfg. cfg.Root must already be resolved.
func New(cfg server.Config, opts ...Option) *Launcher {
	l := &Launcher{
		cfg:      cfg,
		logger:   zap.NewNop(),
		out:      os.Stdout,
		probe:    server.Probe,
		platform: platform.Current(),
	}
	for _, opt := range opts {
		opt(l)
	}
	// The delayed opener writes from its own goroutine
	l.out = &syncWriter{w: l.out}
	if l.opener == nil {
		l.opener = browser.System()
	}
	return l
}

// Run executes the launch sequence and blocks while serving. Cancelling ctx
// stops the server and Run returns nil.
func (l *Launcher) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Launcher panicked", zap.Any("panic", r))
			err = fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()

	file, err := document.Resolve(l.cfg.Root, l.cfg.Document, l.cfg.Keywords)
	if errors.Is(err, document.ErrNotFound) {
		return fmt.Errorf("%w in %s (looking for %s)", ErrNoDocument, l.cfg.Root, l.cfg.Document)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	l.printf("📁 Found HTML file: %s\n", file)
	l.printf("💻 Platform: %s\n", l.platform.Name)
	l.logger.Debug("Document resolved", zap.String("file", file), zap.String("root", l.cfg.Root))

	url := l.cfg.DocumentURL(file)

	if !l.probe(l.cfg.ProbeAddr()) {
		return l.reuseExisting(url)
	}

	srv := server.New(l.cfg, l.cfg.Root, l.logger)
	if err := srv.Listen(); err != nil {
		// Lost the race with another instance after the probe
		if errors.Is(err, syscall.EADDRINUSE) {
			l.logger.Debug("Port taken after probe", zap.Error(err))
			return l.reuseExisting(url)
		}
		return fmt.Errorf("%w: %w", ErrBind, err)
	}

	l.banner(url)
	l.logger.Info("Server started", zap.Int("port", l.cfg.Port), zap.String("document", file))

	if l.cfg.OpenBrowser {
		browser.OpenLater(l.opener, url, l.cfg.BrowserDelay, l.out, l.logger)
	}

	if err := srv.Serve(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	l.printf("\n\n🛑 Server stopped by user (%s)\n", l.platform.StopKey)
	l.printf("👋 Focus Writer server closed. You can restart anytime!\n")
	return nil
}

// reuseExisting points the browser at whatever already holds the port. No
// check that the other listener is really serving this document.
func (l *Launcher) reuseExisting(url string) error {
	l.printf("⚠️ Port %d is already in use!\n", l.cfg.Port)
	l.printf("🌐 Trying to open existing server: %s\n", url)
	if l.cfg.OpenBrowser {
		browser.Open(l.opener, url, l.out, l.logger)
	}
	return fmt.Errorf("%w: %d", ErrPortInUse, l.cfg.Port)
}

func (l *Launcher) banner(url string) {
	l.printf("🚀 Focus Writer Server Starting...\n")
	l.printf("%s\n", rule)
	l.printf("📝 Server: %s\n", l.cfg.BaseURL())
	l.printf("📄 Focus Writer: %s\n", url)
	l.printf("%s\n", rule)
	l.printf("✅ Server is ready!\n")
	l.printf("\n💡 Platform-specific tips for %s:\n", l.platform.Name)
	l.printf("   • Keep this window open while using Focus Writer\n")
	l.printf("   • Press %s to stop the server\n", l.platform.StopKey)
	if l.cfg.OpenBrowser {
		l.printf("   • Browser will open automatically in %s...\n", humanDelay(l.cfg.BrowserDelay.Seconds()))
	}
	l.printf("   • If browser doesn't open, visit: %s\n", url)
}

func (l *Launcher) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

func humanDelay(seconds float64) string {
	s := strings.TrimSuffix(fmt.Sprintf("%.1f", seconds), ".0")
	if s == "1" {
		return "1 second"
	}
	return s + " seconds"
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
