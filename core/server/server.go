package server

import (
	"context"
	"errors"
	"net"
	"time"

	"focus-writer/core/logger"
	"focus-writer/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// Server is a static file responder rooted at a single directory.
type Server struct {
	cfg    Config
	root   string
	app    *fiber.App
	logger *zap.Logger
	ln     net.Listener
}

// New builds the Fiber app serving root. Nothing is bound until Listen.
func New(cfg Config, root string, logg *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logg),
	})

	// No request logging middleware: the console stays quiet while serving.
	app.Use(rayid.New())
	app.Static("/", root, fiber.Static{
		Browse:        true,
		Index:         "index.html",
		CacheDuration: -1,
	})

	return &Server{
		cfg:    cfg,
		root:   root,
		app:    app,
		logger: logg,
	}
}

// App exposes the underlying Fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the configured port on all interfaces.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	s.ln = ln
	s.logger.Debug("Listener bound", zap.String("addr", ln.Addr().String()), zap.String("root", s.root))
	return nil
}

// Serve dispatches requests until ctx is cancelled, then shuts down.
// A cancelled context is the normal way out and yields a nil error.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("serve called before listen")
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Debug("Shutting down server")
			if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
				s.logger.Warn("Server shutdown failed", zap.Error(err))
			}
			_ = s.ln.Close()
		case <-done:
		}
	}()

	if err := s.app.Listener(s.ln); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func errorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.WithRayID(logg, c).Error("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return fiber.DefaultErrorHandler(c, err)
	}
}
