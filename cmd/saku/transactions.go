package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/finance"
	"github.com/sakumate/saku/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List and manage transactions",
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var (
		flagPeriod   string
		flagType     string
		flagCategory string
		flagWallet   string
		flagLimit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
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

			txs = finance.FilterByPeriod(txs, finance.Period(flagPeriod), time.Now())

			if flagType != "" {
				filtered := txs[:0]
				for _, txn := range txs {
					if txn.Type == model.TransactionType(flagType) {
						filtered = append(filtered, txn)
					}
				}
				txs = filtered
			}

			if flagCategory != "" {
				filtered := txs[:0]
				for _, txn := range txs {
					if txn.Category == flagCategory {
						filtered = append(filtered, txn)
					}
				}
				txs = filtered
			}

			if flagWallet != "" {
				wallet, err := resolveWallet(ctx, store, flagWallet)
				if err != nil {
					return err
				}
				filtered := txs[:0]
				for _, txn := range txs {
					if txn.WalletID == wallet.ID {
						filtered = append(filtered, txn)
					}
				}
				txs = filtered
			}

			if flagLimit > 0 && len(txs) > flagLimit {
				txs = txs[:flagLimit]
			}

			if len(txs) == 0 {
				fmt.Println(cli.StyleInfo("No transactions found. Use 'saku add' to record one."))
				return nil
			}

			names, err := walletNames(ctx, store)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("Wallet"),
				cli.HeaderStyle.Render("Note"),
				cli.HeaderStyle.Render("ID"))

			for _, txn := range txs {
				cat := finance.CategoryByID(txn.Category, txn.Type)

				amount := finance.FormatRupiah(txn.Amount)
				if txn.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render("+" + amount)
				} else {
					amount = cli.ExpenseStyle.Render("-" + amount)
				}

				wallet := names[txn.WalletID]
				if wallet == "" {
					wallet = cli.SubtleStyle.Render("-")
				}

				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
					txn.Date.Format("2006-01-02"),
					cat.Emoji, cat.Label,
					amount,
					wallet,
					txn.Note,
					cli.SubtleStyle.Render(shortID(txn.ID)))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&flagPeriod, "period", "p", "all", "period filter (today, week, month, all)")
	cmd.Flags().StringVarP(&flagType, "type", "t", "", "filter by type (income, expense)")
	cmd.Flags().StringVarP(&flagCategory, "category", "c", "", "filter by category id")
	cmd.Flags().StringVarP(&flagWallet, "wallet", "w", "", "filter by wallet name or id")
	cmd.Flags().IntVarP(&flagLimit, "limit", "l", 0, "show at most this many transactions")

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id := args[0]
			// Accept the short prefix shown by list.
			if len(id) < 36 {
				txs, err := store.GetTransactions(ctx)
				if err != nil {
					return err
				}
				var matches []string
				for _, txn := range txs {
					if strings.HasPrefix(txn.ID, id) {
						matches = append(matches, txn.ID)
					}
				}
				switch len(matches) {
				case 0:
					return fmt.Errorf("no transaction matches %q", id)
				case 1:
					id = matches[0]
				default:
					return fmt.Errorf("%q is ambiguous (%d matches)", id, len(matches))
				}
			}

			if err := store.DeleteTransaction(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess("Transaction deleted."))
			return nil
		},
	}
}

// shortID trims a uuid down to the prefix shown in tables.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
