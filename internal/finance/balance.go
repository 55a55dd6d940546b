// Package finance implements the pure calculation layer: balances,
// period filtering, daily aggregation, category resolution, balance
// projection and currency formatting. Nothing in this package touches
// storage or the system clock; functions that depend on "the current
// day" take an explicit now.
package finance

import "github.com/sakumate/saku/internal/model"

// Balance returns the signed sum over all transactions: income adds,
// anything else subtracts.
func Balance(txs []model.Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		if tx.Type == model.TypeIncome {
			sum += tx.Amount
		} else {
			sum -= tx.Amount
		}
	}
	return sum
}

// TotalIncome sums the amounts of income transactions.
func TotalIncome(txs []model.Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		if tx.Type == model.TypeIncome {
			sum += tx.Amount
		}
	}
	return sum
}

// TotalExpense sums the amounts of expense transactions.
func TotalExpense(txs []model.Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		if tx.Type == model.TypeExpense {
			sum += tx.Amount
		}
	}
	return sum
}
