package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"focus-writer/core/config"
	"focus-writer/core/document"

	"github.com/spf13/cobra"
)

var allFlag bool

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Show which HTML document would be served",
	Long:  `Resolves the document exactly like the server does, without binding a port or opening a browser.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		root, err := cfg.Server.ResolveRoot()
		if err != nil {
			return fmt.Errorf("failed to resolve served directory: %w", err)
		}

		if allFlag {
			names, err := document.List(root)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
		}

		file, err := document.Resolve(root, cfg.Server.Document, cfg.Server.Keywords)
		if errors.Is(err, document.ErrNotFound) {
			fmt.Fprintf(out, "❌ No HTML file found in %s (looking for %s)\n", root, cfg.Server.Document)
			return err
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "📄 %s\n", filepath.Join(root, file))
		fmt.Fprintf(out, "🌐 %s\n", cfg.Server.DocumentURL(file))
		return nil
	},
}

func init() {
	findCmd.Flags().BoolVar(&allFlag, "all", false, "List every HTML file in the served directory first")
	RootCmd.AddCommand(findCmd)
}
