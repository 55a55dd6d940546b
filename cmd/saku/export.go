package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/export"
)

func exportCmd() *cobra.Command {
	var flagOutput string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
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

			out := os.Stdout
			if flagOutput != "" {
				f, err := os.Create(flagOutput)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", flagOutput, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := export.WriteTransactions(out, txs); err != nil {
				return err
			}

			if flagOutput != "" {
				fmt.Println(cli.StyleSuccess(fmt.Sprintf("Exported %d transactions to %s.", len(txs), flagOutput)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default stdout)")

	return cmd
}
