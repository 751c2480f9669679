// Package ledger owns the transaction collection: merging freshly parsed
// batches into the persisted set and running the import pipeline.
package ledger

import (
	"sort"

	"github.com/finviz-dev/finviz/internal/id"
	"github.com/finviz-dev/finviz/internal/model"
)

// Merge combines the persisted collection with a newly parsed batch.
// Duplicates share the exact (date, description, amount) triple; the first
// occurrence in concatenation order wins, so existing entries take precedence
// and re-importing a statement is a no-op. The result is sorted by date
// descending, the collection's at-rest order.
func Merge(existing, incoming []model.StoredTransaction) []model.StoredTransaction {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]model.StoredTransaction, 0, len(existing)+len(incoming))

	keep := func(txns []model.StoredTransaction) {
		for _, t := range txns {
			key := id.Key(t.Date, t.Descricao, t.Valor)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, t)
		}
	}
	keep(existing)
	keep(incoming)

	// ISO dates sort lexicographically; stable keeps first-occurrence order
	// within a day.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged
}
