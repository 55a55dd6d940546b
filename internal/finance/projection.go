package finance

import (
	"math"
	"time"

	"github.com/sakumate/saku/internal/model"
)

// projectionWindow is the number of trailing days fed to the regression.
const projectionWindow = 30

// Projection estimates a future balance from recent daily net flow.
// Trend carries the raw regression slope (rupiah per day); it is a
// heuristic, not a forecast guarantee.
type Projection struct {
	ProjectedBalance int64
	AvgDailyExpense  int64
	Trend            float64
	DaysAhead        int
}

// Project fits an ordinary least-squares line to the cumulative net
// flow of the last 30 days and extrapolates the balance at targetDate.
// It returns nil when there is nothing to project: a zero targetDate,
// no transactions, or a target on or before now's calendar day.
func Project(txs []model.Transaction, targetDate, now time.Time) *Projection {
	if targetDate.IsZero() || len(txs) == 0 {
		return nil
	}

	daysAhead := daysBetween(StartOfDay(now), StartOfDay(targetDate))
	if daysAhead <= 0 {
		return nil
	}

	daily := DailyData(txs, projectionWindow, now)

	// Regress cumulative net flow against the zero-based day index.
	// The x values are fixed at 0..29, so the slope denominator can
	// never be zero here.
	var sumX, sumY, sumXY, sumX2 float64
	var cumulative, windowExpense int64
	activeDays := 0
	for i, p := range daily {
		cumulative += p.Net
		x := float64(i)
		y := float64(cumulative)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x

		windowExpense += p.Expense
		if p.Income != 0 || p.Expense != 0 {
			activeDays++
		}
	}

	n := float64(len(daily))
	slope := (n*sumXY - sumX*sumY) / (n*sumX2 - sumX*sumX)

	if activeDays < 1 {
		activeDays = 1
	}

	return &Projection{
		ProjectedBalance: Balance(txs) + int64(math.Round(slope*float64(daysAhead))),
		AvgDailyExpense:  windowExpense / int64(activeDays),
		Trend:            slope,
		DaysAhead:        daysAhead,
	}
}

// daysBetween counts calendar days from a to b. Both arguments are
// midnight-aligned; rounding absorbs DST-shortened days.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
