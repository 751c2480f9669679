package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/finviz-dev/finviz/internal/model"
)

func newListCommand() *cobra.Command {
	var dataDir string
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categorized transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(dataDir, from, to)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD, inclusive)")

	return cmd
}

func runList(dataDir, from, to string) error {
	svc, cfg, err := openService(dataDir)
	if err != nil {
		return err
	}

	txns, err := svc.Load()
	if err != nil {
		return err
	}

	txns, err = filterRange(txns, from, to)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
	for _, t := range txns {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
			t.Date.Format(model.DateLayout),
			cfg.Display.Currency,
			t.Amount.StringFixed(2),
			t.Category,
			t.Description,
		)
	}
	return w.Flush()
}

// filterRange keeps transactions within the inclusive [from, to] date range.
// Empty bounds are open.
func filterRange(txns []model.Transaction, from, to string) ([]model.Transaction, error) {
	var fromDate, toDate time.Time
	var err error

	if from != "" {
		fromDate, err = time.Parse(model.DateLayout, from)
		if err != nil {
			return nil, fmt.Errorf("parsing --from %q: %w", from, err)
		}
	}
	if to != "" {
		toDate, err = time.Parse(model.DateLayout, to)
		if err != nil {
			return nil, fmt.Errorf("parsing --to %q: %w", to, err)
		}
	}

	var out []model.Transaction
	for _, t := range txns {
		if from != "" && t.Date.Before(fromDate) {
			continue
		}
		if to != "" && t.Date.After(toDate) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
