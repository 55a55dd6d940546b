package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakumate/saku/internal/model"
)

func TestDailyData(t *testing.T) {
	t.Run("always returns exactly days entries", func(t *testing.T) {
		for _, days := range []int{1, 7, 14, 30} {
			got := DailyData(nil, days, testNow)
			assert.Len(t, got, days)
			for _, p := range got {
				assert.Zero(t, p.Income)
				assert.Zero(t, p.Expense)
				assert.Zero(t, p.Net)
			}
		}
	})

	t.Run("oldest first ending today", func(t *testing.T) {
		got := DailyData(nil, 3, testNow)
		require.Len(t, got, 3)
		assert.Equal(t, "2024-06-10", got[0].Date)
		assert.Equal(t, "2024-06-11", got[1].Date)
		assert.Equal(t, "2024-06-12", got[2].Date)
		assert.Equal(t, "10/06", got[0].Label)
		assert.Equal(t, "12/06", got[2].Label)
	})

	t.Run("buckets by calendar day and nets flows", func(t *testing.T) {
		txs := []model.Transaction{
			tx(model.TypeIncome, "kiriman", 20000, testNow.Add(-3*time.Hour)),
			tx(model.TypeExpense, "makan", 5000, testNow.Add(-1*time.Hour)),
		}

		got := DailyData(txs, 1, testNow)
		require.Len(t, got, 1)
		assert.Equal(t, int64(20000), got[0].Income)
		assert.Equal(t, int64(5000), got[0].Expense)
		assert.Equal(t, int64(15000), got[0].Net)
	})

	t.Run("net invariant holds on every entry", func(t *testing.T) {
		txs := []model.Transaction{
			tx(model.TypeIncome, "gaji", 3000000, testNow.AddDate(0, 0, -13)),
			tx(model.TypeExpense, "makan", 25000, testNow.AddDate(0, 0, -6)),
			tx(model.TypeExpense, "transport", 10000, testNow.AddDate(0, 0, -6)),
			tx(model.TypeIncome, "jual", 120000, testNow.AddDate(0, 0, -2)),
			tx(model.TypeExpense, "hiburan", 65000, testNow),
		}

		for _, p := range DailyData(txs, DefaultChartDays, testNow) {
			assert.Equal(t, p.Income-p.Expense, p.Net, "day %s", p.Date)
		}
	})

	t.Run("transactions outside the window are ignored", func(t *testing.T) {
		txs := []model.Transaction{
			tx(model.TypeExpense, "makan", 9999, testNow.AddDate(0, 0, -7)),
		}

		got := DailyData(txs, 7, testNow)
		require.Len(t, got, 7)
		for _, p := range got {
			assert.Zero(t, p.Expense, "day %s", p.Date)
		}
	})
}
