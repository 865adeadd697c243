package cmd

import (
	"fmt"

	"focus-writer/core/config"
	"focus-writer/core/server"
	"focus-writer/feature/launcher"

	"github.com/spf13/cobra"
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check whether the configured port is free",
	Long:  `Binds the configured port on loopback and releases it immediately. Exits non-zero when the port is taken.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if !server.Probe(cfg.Server.ProbeAddr()) {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️ Port %d is already in use\n", cfg.Server.Port)
			return fmt.Errorf("%w: %d", launcher.ErrPortInUse, cfg.Server.Port)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Port %d is available\n", cfg.Server.Port)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(probeCmd)
}
