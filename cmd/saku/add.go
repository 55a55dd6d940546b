package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/finance"
	"github.com/sakumate/saku/internal/model"
)

func addCmd() *cobra.Command {
	var (
		flagType     string
		flagCategory string
		flagNote     string
		flagWallet   string
		flagDate     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an income or expense transaction",
		Long: `Record a transaction. The amount is in whole rupiah and may be
grouped with dots, e.g.:

  saku add 25.000 --category makan --note "nasi padang"
  saku add 3.000.000 --type income --category gaji`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			txType := model.TransactionType(flagType)
			if !txType.Valid() {
				return fmt.Errorf("invalid type %q (want income or expense)", flagType)
			}

			date := time.Now()
			if flagDate != "" {
				if date, err = parseDate(flagDate); err != nil {
					return err
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txn := &model.Transaction{
				Type:     txType,
				Category: flagCategory,
				Amount:   amount,
				Note:     flagNote,
				Date:     date,
			}

			if flagWallet != "" {
				wallet, err := resolveWallet(ctx, store, flagWallet)
				if err != nil {
					return err
				}
				txn.WalletID = wallet.ID
			} else if def, err := store.GetDefaultWallet(ctx); err == nil {
				txn.WalletID = def.ID
			}

			if err := store.SaveTransaction(ctx, txn); err != nil {
				return err
			}

			streak, err := store.RecordActivity(ctx)
			if err != nil {
				return err
			}

			cat := finance.CategoryByID(txn.Category, txn.Type)
			sign := "-"
			if txn.Type == model.TypeIncome {
				sign = "+"
			}
			fmt.Println(cli.StyleSuccess(fmt.Sprintf("%s %s %s%s tercatat",
				cat.Emoji, cat.Label, sign, finance.FormatRupiah(amount))))

			if m := streak.Milestone(); m != nil {
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("%s %d hari berturut-turut · %s", m.Emoji, streak.Count, m.Label)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flagType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&flagCategory, "category", "c", "lainnya", "category id")
	cmd.Flags().StringVarP(&flagNote, "note", "n", "", "free-text note")
	cmd.Flags().StringVarP(&flagWallet, "wallet", "w", "", "wallet name or id (default wallet when omitted)")
	cmd.Flags().StringVarP(&flagDate, "date", "d", "", "transaction date yyyy-mm-dd (today when omitted)")

	return cmd
}
