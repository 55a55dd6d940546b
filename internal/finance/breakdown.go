package finance

import (
	"math"
	"sort"

	"github.com/sakumate/saku/internal/model"
)

// CategoryTotal is one category's share of a transaction set.
type CategoryTotal struct {
	Category model.Category
	Type     model.TransactionType
	Amount   int64
	Percent  int
}

// BreakdownByCategory sums amounts per raw category id for the given
// type, joins the catalog metadata, and sorts descending by amount.
// Percent is each category's rounded share of the type's total.
// Unknown ids keep their own row but render with the fallback
// category's metadata.
func BreakdownByCategory(txs []model.Transaction, txType model.TransactionType) []CategoryTotal {
	totals := make(map[string]int64)
	var grand int64
	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		totals[tx.Category] += tx.Amount
		grand += tx.Amount
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for id, amount := range totals {
		pct := 0
		if grand > 0 {
			pct = int(math.Round(float64(amount) / float64(grand) * 100))
		}
		breakdown = append(breakdown, CategoryTotal{
			Category: CategoryByID(id, txType),
			Type:     txType,
			Amount:   amount,
			Percent:  pct,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category.Label < breakdown[j].Category.Label
	})
	return breakdown
}
