package finance

import (
	"time"

	"github.com/sakumate/saku/internal/model"
)

// dayKeyFormat renders a timestamp as its local calendar-day key.
const dayKeyFormat = "2006-01-02"

// DefaultChartDays is the standard daily chart window.
const DefaultChartDays = 14

// DailyPoint is one calendar day of aggregated flow for charting.
type DailyPoint struct {
	Label   string // dd/MM display label
	Date    string // yyyy-MM-dd key
	Income  int64
	Expense int64
	Net     int64
}

// DailyData returns one point per calendar day, oldest first, ending at
// now's calendar day. The result always has exactly days entries;
// days without transactions carry zeroes. Transactions are matched to
// days by string equality on their yyyy-MM-dd rendering.
func DailyData(txs []model.Transaction, days int, now time.Time) []DailyPoint {
	if days < 0 {
		days = 0
	}
	points := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format(dayKeyFormat)

		var income, expense int64
		for _, tx := range txs {
			if tx.Date.Format(dayKeyFormat) != key {
				continue
			}
			switch tx.Type {
			case model.TypeIncome:
				income += tx.Amount
			case model.TypeExpense:
				expense += tx.Amount
			}
		}

		points = append(points, DailyPoint{
			Label:   day.Format("02/01"),
			Date:    key,
			Income:  income,
			Expense: expense,
			Net:     income - expense,
		})
	}
	return points
}
