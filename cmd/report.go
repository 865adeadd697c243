package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"focus-writer/core/platform"
	"focus-writer/core/server"
	"focus-writer/feature/launcher"

	"go.uber.org/zap"
)

// reportFailure explains a launch failure to the operator and, when the
// configuration asks for it, waits for Enter or an interrupt. A reused port
// is not a failure and yields nil; everything else is returned for the exit
// code.
func reportFailure(ctx context.Context, in io.Reader, out io.Writer, cfg server.Config, logg *zap.Logger, err error) error {
	kind := launcher.Kind(err)

	switch kind {
	case launcher.ErrNoDocument:
		logg.Warn("No document to serve", zap.String("root", cfg.Root), zap.String("document", cfg.Document))
		fmt.Fprintln(out, "❌ No HTML file found!")
		fmt.Fprintln(out, "Make sure your Focus Writer HTML file is in the same directory as this program.")
		fmt.Fprintf(out, "Looking for: %s\n", cfg.Document)
		fmt.Fprintf(out, "📁 Current directory: %s\n", cfg.Root)
	case launcher.ErrPortInUse:
		logg.Info("Reusing running server", zap.Int("port", cfg.Port))
	case launcher.ErrBind:
		logg.Error("Server failed to start", zap.Error(err))
		fmt.Fprintf(out, "❌ Server error: %v\n", err)
	default:
		diag := platform.Collect()
		logg.Error("Unexpected error", append(diag.Fields(), zap.Error(err))...)
		fmt.Fprintf(out, "❌ Unexpected error: %v\n", err)
		fmt.Fprintf(out, "📁 Working directory: %s\n", diag.WorkingDir)
		fmt.Fprintf(out, "🐹 Go version: %s (%s/%s)\n", diag.GoVersion, diag.OS, diag.Arch)
	}

	if cfg.PauseOnError && !waitForAck(ctx, in, out) {
		stopKey := platform.Current().StopKey
		logg.Debug("Interrupted at acknowledgment prompt")
		fmt.Fprintf(out, "\n🛑 Stopped by user (%s)\n", stopKey)
		fmt.Fprintln(out, "👋 Focus Writer server closed. You can restart anytime!")
	}

	if kind == launcher.ErrPortInUse {
		return nil
	}
	return err
}

// waitForAck blocks until a line (or EOF) is read from in and reports true,
// or until ctx is cancelled and reports false. The pending read is left
// behind on cancellation; the process is about to exit.
func waitForAck(ctx context.Context, in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, "Press Enter to exit...")

	read := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(in).ReadString('\n')
		close(read)
	}()

	select {
	case <-read:
		fmt.Fprintln(out)
		return true
	case <-ctx.Done():
		return false
	}
}
