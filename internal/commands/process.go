package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProcessCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the import pipeline over all staged statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

func runProcess(dataDir string) error {
	svc, _, err := openService(dataDir)
	if err != nil {
		return err
	}

	result, err := svc.Run()
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d transactions (%d dropped)\n", result.Processed, result.Dropped)
	return nil
}
