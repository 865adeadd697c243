package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"focus-writer/core/browser"
	"focus-writer/core/config"
	"focus-writer/core/logger"
	"focus-writer/core/platform"
	"focus-writer/core/server"
	"focus-writer/feature/launcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const rule = "============================================================"

func runLauncher(cmd *cobra.Command, args []string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	// Registered before anything can fail so an interrupt also ends the
	// acknowledgment prompt.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		select {
		case <-sig:
			cancel()
		case <-ctx.Done():
		}
	}()

	fmt.Fprintln(out, "🎯 Focus Writer Cross-Platform Server")
	fmt.Fprintln(out, rule)

	// Until the configuration is known, failures pause like the defaults say
	fallback := server.Config{PauseOnError: true}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return reportFailure(ctx, in, out, fallback, zap.NewNop(),
			fmt.Errorf("%w: failed to load configuration: %w", launcher.ErrUnexpected, err))
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return reportFailure(ctx, in, out, cfg.Server, zap.NewNop(),
			fmt.Errorf("%w: failed to initialize logger: %w", launcher.ErrUnexpected, err))
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return reportFailure(ctx, in, out, cfg.Server, logg,
			fmt.Errorf("%w: failed to resolve served directory: %w", launcher.ErrUnexpected, err))
	}
	cfg.Server.Root = root

	info := platform.Current()
	diag := platform.Collect()
	fmt.Fprintf(out, "🐹 Go %s\n", strings.TrimPrefix(diag.GoVersion, "go"))
	fmt.Fprintf(out, "💻 Platform: %s (%s/%s)\n", info.Name, diag.OS, diag.Arch)
	fmt.Fprintf(out, "📁 Serving directory: %s\n", root)

	l := launcher.New(cfg.Server,
		launcher.WithLogger(logg),
		launcher.WithOutput(out),
		launcher.WithOpener(browser.System()),
	)
	if err := l.Run(ctx); err != nil {
		return reportFailure(ctx, in, out, cfg.Server, logg, err)
	}
	return nil
}
