package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "import <statement.ofx>...",
		Short: "Stage statement exports for processing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dataDir, args)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

func runImport(dataDir string, files []string) error {
	svc, _, err := openService(dataDir)
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		saved, err := svc.Stage(filepath.Base(file), data)
		if err != nil {
			return err
		}
		fmt.Printf("Staged %s\n", saved)
	}
	return nil
}
