package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/finance"
)

func projectCmd() *cobra.Command {
	var flagDate string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the balance at a future date from recent spending",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if flagDate == "" {
				return fmt.Errorf("--date is required (yyyy-MM-dd)")
			}
			targetDate, err := parseDate(flagDate)
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txs, err := store.GetTransactions(ctx)
			if err != nil {
				return err
			}

			proj := finance.Project(txs, targetDate, time.Now())
			if proj == nil {
				fmt.Println(cli.StyleInfo("Not enough data to project. Record some transactions and pick a future date."))
				return nil
			}

			trend := "stabil"
			switch {
			case proj.Trend > 0:
				trend = cli.IncomeStyle.Render("naik")
			case proj.Trend < 0:
				trend = cli.ExpenseStyle.Render("turun")
			}

			lines := fmt.Sprintf(
				"Tanggal target        %s (%d hari lagi)\nPerkiraan saldo       %s\nRata-rata pengeluaran %s / hari\nTren saldo            %s",
				targetDate.Format("2006-01-02"), proj.DaysAhead,
				cli.StyleAmount(finance.FormatRupiahSigned(proj.ProjectedBalance), proj.ProjectedBalance < 0),
				finance.FormatRupiah(proj.AvgDailyExpense),
				trend)
			fmt.Println(cli.RenderBox("Proyeksi", lines))

			if proj.ProjectedBalance < 0 {
				fmt.Println(cli.StyleWarning("Perkiraan saldo negatif. Kurangi pengeluaran harian."))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flagDate, "date", "d", "", "target date (yyyy-MM-dd)")

	return cmd
}
