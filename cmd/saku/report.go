package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/finance"
	"github.com/sakumate/saku/internal/model"
)

func reportCmd() *cobra.Command {
	var flagPeriod string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show period totals, category breakdowns, and a daily chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txs, err := store.GetTransactions(ctx)
			if err != nil {
				return err
			}

			now := time.Now()
			period := finance.Period(flagPeriod)
			periodTxs := finance.FilterByPeriod(txs, period, now)

			income := finance.TotalIncome(periodTxs)
			expense := finance.TotalExpense(periodTxs)
			net := income - expense

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Laporan (%s)", period)))
			fmt.Printf("Pemasukan    %s\n", cli.IncomeStyle.Render("+"+finance.FormatRupiah(income)))
			fmt.Printf("Pengeluaran  %s\n", cli.ExpenseStyle.Render("-"+finance.FormatRupiah(expense)))
			fmt.Printf("Selisih      %s\n", cli.StyleAmount(finance.FormatRupiahSigned(net), net < 0))

			printBreakdown("Pengeluaran per kategori", periodTxs, model.TypeExpense)
			printBreakdown("Pemasukan per kategori", periodTxs, model.TypeIncome)

			days := finance.DefaultChartDays
			if period == finance.PeriodWeek {
				days = 7
			}
			printDailyChart(txs, days, now)

			return nil
		},
	}

	cmd.Flags().StringVarP(&flagPeriod, "period", "p", "month", "period to report on (today, week, month, all)")

	return cmd
}

func printBreakdown(title string, txs []model.Transaction, txType model.TransactionType) {
	rows := finance.BreakdownByCategory(txs, txType)
	if len(rows) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render(title))
	for _, row := range rows {
		fmt.Printf("  %s %-14s %12s  %3d%%\n",
			row.Category.Emoji, row.Category.Label,
			finance.FormatRupiah(row.Amount), row.Percent)
	}
}

// printDailyChart renders one bar per day, scaled against the largest
// daily expense in the window.
func printDailyChart(txs []model.Transaction, days int, now time.Time) {
	const barWidth = 24

	points := finance.DailyData(txs, days, now)

	var maxExpense int64
	for _, p := range points {
		if p.Expense > maxExpense {
			maxExpense = p.Expense
		}
	}
	if maxExpense == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("Pengeluaran harian (%d hari)", days)))
	for _, p := range points {
		filled := int(float64(p.Expense) / float64(maxExpense) * barWidth)
		bar := cli.ExpenseStyle.Render(strings.Repeat("▇", filled))
		fmt.Printf("  %s %s %s\n", p.Label, bar, finance.FormatRupiah(p.Expense))
	}
}
