package finance

import (
	"time"

	"github.com/sakumate/saku/internal/model"
)

// testNow is a fixed Wednesday afternoon so calendar boundaries are
// deterministic: week starts Monday 2024-06-10, month starts 2024-06-01.
var testNow = time.Date(2024, time.June, 12, 14, 30, 0, 0, time.UTC)

func tx(txType model.TransactionType, category string, amount int64, date time.Time) model.Transaction {
	return model.Transaction{
		ID:       category + date.Format("20060102150405"),
		Type:     txType,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
}
