package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finviz-dev/finviz/internal/importlog"
)

func newHistoryCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past import runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(dataDir)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

func runHistory(dataDir string) error {
	root, err := filepath.Abs(dataDir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	entries, err := importlog.Read(root)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No imports recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tFILE\tRECORDS\tDROPPED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.File, e.Records, e.Dropped)
	}
	return w.Flush()
}
