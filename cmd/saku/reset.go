package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
)

func resetCmd() *cobra.Command {
	var flagForce bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !flagForce {
				fmt.Print(cli.StyleWarning("This deletes every transaction, wallet, goal, and the profile.") + " Continue? [y/N] ")
				var answer string
				_, _ = fmt.Scanln(&answer)
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Reset(ctx); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess("All data cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flagForce, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
