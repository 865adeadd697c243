package cmd

import (
	"fmt"
	"os"

	"focus-writer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd serves the Focus Writer document and opens it in the browser.
var RootCmd = &cobra.Command{
	Use:   "focus-writer",
	Short: "Focus Writer local server",
	Long: `Focus Writer serves the Focus Writer HTML document from its own directory
on http://localhost:8000 and opens it in the default browser.

Settings come from the environment or a .env file (SERVER_PORT, SERVER_ROOT,
SERVER_DOCUMENT, LOG_LEVEL, ...). Without any, the defaults match the classic
launcher.`,
	Args:          cobra.NoArgs,
	RunE:          runLauncher,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs RootCmd. Errors that reach this point have already been shown
// to the operator; they are logged once more on stderr and the process exits 1.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Debug level gives ISO8601 timestamps instead of epoch
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
