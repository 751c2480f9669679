package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand() *cobra.Command {
	var dataDir string
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the transaction store and remove staged statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("clear removes all data; re-run with --force to confirm")
			}
			return runClear(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().BoolVar(&force, "force", false, "confirm deletion of all data")

	return cmd
}

func runClear(dataDir string) error {
	svc, _, err := openService(dataDir)
	if err != nil {
		return err
	}

	if err := svc.Clear(); err != nil {
		return err
	}

	fmt.Println("All transaction data cleared")
	return nil
}
