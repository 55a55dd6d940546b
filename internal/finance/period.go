package finance

import (
	"time"

	"github.com/sakumate/saku/internal/model"
)

// Period names a relative time window used to filter transactions.
type Period string

const (
	// PeriodToday keeps transactions from the current calendar day.
	PeriodToday Period = "today"
	// PeriodWeek keeps transactions from the current week. Weeks start
	// on Monday.
	PeriodWeek Period = "week"
	// PeriodMonth keeps transactions from the current calendar month.
	PeriodMonth Period = "month"
	// PeriodAll keeps everything.
	PeriodAll Period = "all"
)

// FilterByPeriod keeps transactions dated on or after the start of the
// given window, with day boundaries evaluated in now's location.
// Input order is preserved. An unrecognized period behaves as
// PeriodAll; that fallback predates this implementation and is kept
// for compatibility.
func FilterByPeriod(txs []model.Transaction, period Period, now time.Time) []model.Transaction {
	var cutoff time.Time
	switch period {
	case PeriodToday:
		cutoff = StartOfDay(now)
	case PeriodWeek:
		cutoff = StartOfWeek(now)
	case PeriodMonth:
		cutoff = StartOfMonth(now)
	case PeriodAll:
		return txs
	default:
		return txs
	}

	filtered := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.Date.Before(cutoff) {
			filtered = append(filtered, tx)
		}
	}
	return filtered
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the week that started six days ago
	}
	return StartOfDay(t.AddDate(0, 0, -(offset - 1)))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
