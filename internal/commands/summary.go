package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finviz-dev/finviz/internal/model"
	"github.com/finviz-dev/finviz/internal/stats"
)

func newSummaryCommand() *cobra.Command {
	var dataDir string
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show monthly income, expense and balance totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(dataDir, byCategory)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")
	cmd.Flags().BoolVar(&byCategory, "categories", false, "also show expense totals per category")

	return cmd
}

func runSummary(dataDir string, byCategory bool) error {
	svc, cfg, err := openService(dataDir)
	if err != nil {
		return err
	}

	txns, err := svc.Load()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSE\tBALANCE")
	for _, m := range stats.ByMonth(txns) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			m.Month,
			m.TotalIncome.StringFixed(2),
			m.TotalExpense.StringFixed(2),
			m.Balance.StringFixed(2),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !byCategory {
		return nil
	}

	totals := stats.ByCategory(txns)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CATEGORY\tEXPENSE")
	for _, c := range model.AllCategories() {
		total, ok := totals[c]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s %s\n", c, cfg.Display.Currency, total.StringFixed(2))
	}
	return w.Flush()
}
