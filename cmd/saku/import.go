package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/common"
	"github.com/sakumate/saku/internal/export"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer func() { _ = f.Close() }()

			txs, rowErrs, err := export.ReadTransactions(f)
			if err != nil {
				return err
			}
			for _, rowErr := range rowErrs {
				fmt.Println(cli.StyleWarning("skipped " + rowErr.Error()))
			}
			if len(txs) == 0 {
				fmt.Println(cli.StyleInfo("Nothing to import."))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.Default(int64(len(txs)), "importing")
			imported := 0
			for i := range txs {
				if err := store.SaveTransaction(ctx, &txs[i]); err != nil {
					fmt.Println(cli.StyleWarning(fmt.Sprintf("skipped %s: %v", txs[i].ID, err)))
					continue
				}
				imported++
				_ = bar.Add(1)
			}
			_ = bar.Finish()

			common.LogInfo("import finished", common.Fields{
				"file":     args[0],
				"imported": imported,
				"skipped":  len(txs) - imported + len(rowErrs),
			})
			fmt.Println(cli.StyleSuccess(fmt.Sprintf("Imported %d of %d transactions.", imported, len(txs))))
			return nil
		},
	}

	return cmd
}
