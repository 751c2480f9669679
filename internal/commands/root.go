// Package commands wires the CLI surface over the ledger pipeline.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finviz-dev/finviz/internal/buildinfo"
	"github.com/finviz-dev/finviz/internal/config"
	"github.com/finviz-dev/finviz/internal/ledger"
	"github.com/finviz-dev/finviz/internal/logging"
	"github.com/finviz-dev/finviz/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "finviz",
		Short:   "Local personal-finance dashboard over bank statement exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newClearCommand())

	return rootCmd
}

// openService loads the data root's config and opens the ledger service.
func openService(dataDir string) (*ledger.Service, *config.Config, error) {
	root, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("not a finviz data directory (run finviz init): %w", err)
	}

	st, err := store.Open(root, cfg)
	if err != nil {
		return nil, nil, err
	}

	return ledger.NewService(root, cfg, st, logging.Setup()), cfg, nil
}
