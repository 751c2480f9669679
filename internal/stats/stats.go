// Package stats aggregates transactions into per-month totals for the
// dashboard views.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finviz-dev/finviz/internal/model"
)

// monthKey is the grouping format, YYYY-MM.
const monthKey = "2006-01"

// Monthly holds one calendar month's totals.
type Monthly struct {
	Month        string // YYYY-MM
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal // absolute value of all debits
	Balance      decimal.Decimal
	Transactions []model.Transaction
}

// ByMonth groups transactions into monthly totals, sorted by month ascending.
func ByMonth(txns []model.Transaction) []Monthly {
	groups := make(map[string]*Monthly)

	for _, t := range txns {
		key := t.Date.Format(monthKey)
		g, ok := groups[key]
		if !ok {
			g = &Monthly{Month: key}
			groups[key] = g
		}

		g.Transactions = append(g.Transactions, t)
		if t.IsIncome() {
			g.TotalIncome = g.TotalIncome.Add(t.Amount)
		} else {
			g.TotalExpense = g.TotalExpense.Add(t.Amount.Abs())
		}
		g.Balance = g.Balance.Add(t.Amount)
	}

	months := make([]Monthly, 0, len(groups))
	for _, g := range groups {
		months = append(months, *g)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

// ByCategory sums expense totals per category over the given transactions.
// Income is excluded; totals are absolute values.
func ByCategory(txns []model.Transaction) map[model.Category]decimal.Decimal {
	totals := make(map[model.Category]decimal.Decimal)
	for _, t := range txns {
		if t.IsIncome() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
	}
	return totals
}
