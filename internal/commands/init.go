package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finviz-dev/finviz/internal/config"
	"github.com/finviz-dev/finviz/internal/store"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new finviz data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir)
		},
	}

	return cmd
}

func runInit(dir string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.Default()

	if err := os.MkdirAll(filepath.Join(dir, cfg.Import.Dir), 0o755); err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed an empty store so the data directory is complete from the start.
	st, err := store.Open(dir, cfg)
	if err != nil {
		return err
	}
	if err := st.Clear(); err != nil {
		return fmt.Errorf("seeding store: %w", err)
	}

	fmt.Printf("Initialized finviz data directory at %s\n", dir)
	return nil
}
