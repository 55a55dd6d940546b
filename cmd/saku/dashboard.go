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

func dashboardCmd() *cobra.Command {
	var flagPeriod string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show balance, period totals, streak, and goals at a glance",
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

			balance := finance.Balance(txs)
			income := finance.TotalIncome(periodTxs)
			expense := finance.TotalExpense(periodTxs)

			profile, err := store.GetProfile(ctx)
			if err != nil {
				return err
			}

			greeting := "Halo!"
			if profile.Name != "" {
				greeting = fmt.Sprintf("Halo, %s! %s", profile.Name, profile.AvatarEmoji)
			}
			fmt.Println(cli.TitleStyle.Render(greeting))

			var lines []string
			lines = append(lines, fmt.Sprintf("%s  %s",
				cli.BoldStyle.Render("Saldo"),
				cli.StyleAmount(finance.FormatRupiahSigned(balance), balance < 0)))
			lines = append(lines, fmt.Sprintf("Pemasukan (%s)   %s", period,
				cli.IncomeStyle.Render("+"+finance.FormatRupiah(income))))
			lines = append(lines, fmt.Sprintf("Pengeluaran (%s)  %s", period,
				cli.ExpenseStyle.Render("-"+finance.FormatRupiah(expense))))
			fmt.Println(cli.RenderBox("Ringkasan", strings.Join(lines, "\n")))

			streak, err := store.GetStreak(ctx)
			if err != nil {
				return err
			}
			if streak.Count > 0 {
				msg := fmt.Sprintf("🔥 Streak %d hari (terpanjang %d)", streak.Count, streak.Longest)
				if m := streak.Milestone(); m != nil {
					msg += fmt.Sprintf("  %s %s", m.Emoji, m.Label)
				}
				fmt.Println(msg)
			}

			goals, err := store.GetGoals(ctx)
			if err != nil {
				return err
			}
			if len(goals) > 0 {
				fmt.Println()
				fmt.Println(cli.SubtitleStyle.Render("Target tabungan"))
				for _, goal := range goals {
					fmt.Println(renderGoalLine(&goal))
				}
			}

			recent := periodTxs
			if len(recent) > 5 {
				recent = recent[:5]
			}
			if len(recent) > 0 {
				fmt.Println()
				fmt.Println(cli.SubtitleStyle.Render("Transaksi terakhir"))
				for _, txn := range recent {
					cat := finance.CategoryByID(txn.Category, txn.Type)
					amount := finance.FormatRupiah(txn.Amount)
					if txn.Type == model.TypeIncome {
						amount = cli.IncomeStyle.Render("+" + amount)
					} else {
						amount = cli.ExpenseStyle.Render("-" + amount)
					}
					fmt.Printf("  %s  %s %-14s %s\n",
						txn.Date.Format("02/01"), cat.Emoji, cat.Label, amount)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flagPeriod, "period", "p", "month", "period for totals (today, week, month, all)")

	return cmd
}

// renderGoalLine renders one saving goal with a text progress bar.
func renderGoalLine(goal *model.SavingGoal) string {
	const width = 20

	pct := goal.Progress()
	filled := int(pct / 100 * width)
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	line := fmt.Sprintf("  %s %-16s [%s] %3.0f%%  %s / %s",
		goal.Emoji, goal.Name, bar, pct,
		finance.FormatRupiah(goal.SavedAmount),
		finance.FormatRupiah(goal.TargetAmount))
	if goal.Completed() {
		line += "  " + cli.StyleSuccess("✓ tercapai")
	}
	return line
}
