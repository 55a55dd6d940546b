package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sakumate/saku/internal/model"
)

func TestFilterByPeriod(t *testing.T) {
	today := tx(model.TypeExpense, "makan", 15000, testNow.Add(-2*time.Hour))
	thisWeek := tx(model.TypeExpense, "transport", 8000, testNow.AddDate(0, 0, -2))  // Monday
	thisMonth := tx(model.TypeIncome, "kiriman", 2000000, testNow.AddDate(0, 0, -9)) // June 3rd
	older := tx(model.TypeExpense, "tagihan", 150000, testNow.AddDate(0, -1, 0))
	txs := []model.Transaction{today, thisWeek, thisMonth, older}

	tests := []struct {
		name   string
		period Period
		want   []model.Transaction
	}{
		{name: "today", period: PeriodToday, want: []model.Transaction{today}},
		{name: "week starts monday", period: PeriodWeek, want: []model.Transaction{today, thisWeek}},
		{name: "month", period: PeriodMonth, want: []model.Transaction{today, thisWeek, thisMonth}},
		{name: "all is identity", period: PeriodAll, want: txs},
		{name: "unknown keyword falls back to all", period: Period("fortnight"), want: txs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByPeriod(txs, tt.period, testNow))
		})
	}

	t.Run("empty input stays empty", func(t *testing.T) {
		for _, p := range []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodAll} {
			assert.Empty(t, FilterByPeriod(nil, p, testNow))
		}
	})

	t.Run("windows nest", func(t *testing.T) {
		day := FilterByPeriod(txs, PeriodToday, testNow)
		week := FilterByPeriod(txs, PeriodWeek, testNow)
		month := FilterByPeriod(txs, PeriodMonth, testNow)
		all := FilterByPeriod(txs, PeriodAll, testNow)

		assert.Subset(t, week, day)
		assert.Subset(t, month, week)
		assert.Subset(t, all, month)
		assert.Equal(t, txs, all)
	})

	t.Run("sunday belongs to the monday-started week", func(t *testing.T) {
		sunday := time.Date(2024, time.June, 16, 10, 0, 0, 0, time.UTC)
		monday := tx(model.TypeExpense, "makan", 10000, time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC))
		lastSunday := tx(model.TypeExpense, "makan", 10000, time.Date(2024, time.June, 9, 23, 0, 0, 0, time.UTC))

		got := FilterByPeriod([]model.Transaction{monday, lastSunday}, PeriodWeek, sunday)
		assert.Equal(t, []model.Transaction{monday}, got)
	})
}

func TestWeekAndMonthBoundaries(t *testing.T) {
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(testNow))
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(testNow))
	assert.Equal(t, time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC), StartOfDay(testNow))

	// A Monday is its own week start.
	monday := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), StartOfWeek(monday))
}
