package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakumate/saku/internal/model"
)

func TestProjectDegenerateInputs(t *testing.T) {
	txs := []model.Transaction{
		tx(model.TypeIncome, "gaji", 1000000, testNow.AddDate(0, 0, -5)),
	}

	t.Run("zero target date", func(t *testing.T) {
		assert.Nil(t, Project(txs, time.Time{}, testNow))
	})

	t.Run("no transactions", func(t *testing.T) {
		assert.Nil(t, Project(nil, testNow.AddDate(0, 0, 7), testNow))
	})

	t.Run("target today", func(t *testing.T) {
		assert.Nil(t, Project(txs, testNow, testNow))
	})

	t.Run("target in the past", func(t *testing.T) {
		assert.Nil(t, Project(txs, testNow.AddDate(0, 0, -3), testNow))
	})

	t.Run("target later today still counts as today", func(t *testing.T) {
		assert.Nil(t, Project(txs, testNow.Add(5*time.Hour), testNow))
	})
}

func TestProjectLinearTrend(t *testing.T) {
	// One 1000 income on each of the 30 window days makes the
	// cumulative net flow exactly linear, so the fitted slope is
	// exactly 1000 per day.
	var txs []model.Transaction
	for i := 0; i < 30; i++ {
		txs = append(txs, tx(model.TypeIncome, "freelance", 1000, testNow.AddDate(0, 0, -i)))
	}

	p := Project(txs, testNow.AddDate(0, 0, 10), testNow)
	require.NotNil(t, p)

	assert.Equal(t, 10, p.DaysAhead)
	assert.InDelta(t, 1000.0, p.Trend, 0.0001)
	// Current balance 30_000 plus ten projected days of 1000.
	assert.Equal(t, int64(40000), p.ProjectedBalance)
	assert.Equal(t, int64(0), p.AvgDailyExpense)
}

func TestProjectAvgDailyExpense(t *testing.T) {
	// Expenses on three window days: 30_000 total over 3 active days.
	txs := []model.Transaction{
		tx(model.TypeExpense, "makan", 12000, testNow),
		tx(model.TypeExpense, "makan", 10000, testNow.AddDate(0, 0, -1)),
		tx(model.TypeExpense, "transport", 8000, testNow.AddDate(0, 0, -2)),
	}

	p := Project(txs, testNow.AddDate(0, 0, 5), testNow)
	require.NotNil(t, p)
	assert.Equal(t, int64(10000), p.AvgDailyExpense)
}

func TestProjectUsesFullHistoryForBalance(t *testing.T) {
	// An old income outside the 30-day window still contributes to the
	// current balance, though not to the trend.
	old := tx(model.TypeIncome, "beasiswa", 5000000, testNow.AddDate(0, -6, 0))
	var txs []model.Transaction
	txs = append(txs, old)
	for i := 0; i < 30; i++ {
		txs = append(txs, tx(model.TypeIncome, "freelance", 1000, testNow.AddDate(0, 0, -i)))
	}

	p := Project(txs, testNow.AddDate(0, 0, 1), testNow)
	require.NotNil(t, p)
	assert.Equal(t, int64(5000000+30000+1000), p.ProjectedBalance)
}

func TestDaysBetween(t *testing.T) {
	a := StartOfDay(testNow)
	assert.Equal(t, 0, daysBetween(a, a))
	assert.Equal(t, 1, daysBetween(a, a.AddDate(0, 0, 1)))
	assert.Equal(t, -2, daysBetween(a, a.AddDate(0, 0, -2)))
	assert.Equal(t, 31, daysBetween(a, a.AddDate(0, 1, 1)))
}
