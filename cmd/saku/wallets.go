package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sakumate/saku/internal/cli"
	"github.com/sakumate/saku/internal/finance"
	"github.com/sakumate/saku/internal/model"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallets",
	}

	cmd.AddCommand(listWalletsCmd())
	cmd.AddCommand(addWalletCmd())
	cmd.AddCommand(updateWalletCmd())
	cmd.AddCommand(deleteWalletCmd())
	cmd.AddCommand(setDefaultWalletCmd())

	return cmd
}

func listWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List wallets and their balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallets, err := store.GetWallets(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Wallet"),
				cli.HeaderStyle.Render("Balance"),
				cli.HeaderStyle.Render("Default"),
				cli.HeaderStyle.Render("ID"))

			for _, wallet := range wallets {
				txs, err := store.GetTransactionsByWallet(ctx, wallet.ID)
				if err != nil {
					return err
				}
				balance := finance.Balance(txs)

				def := ""
				if wallet.IsDefault {
					def = "✓"
				}

				fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
					wallet.Icon, wallet.Name,
					cli.StyleAmount(finance.FormatRupiahSigned(balance), balance < 0),
					def,
					cli.SubtleStyle.Render(shortID(wallet.ID)))
			}

			return nil
		},
	}
}

func addWalletCmd() *cobra.Command {
	var (
		flagIcon    string
		flagColor   string
		flagDefault bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallet := &model.Wallet{
				Name:  args[0],
				Icon:  flagIcon,
				Color: flagColor,
			}
			if err := store.CreateWallet(ctx, wallet); err != nil {
				return err
			}

			if flagDefault {
				if err := store.SetDefaultWallet(ctx, wallet.ID); err != nil {
					return err
				}
			}

			fmt.Println(cli.StyleSuccess(fmt.Sprintf("Wallet %q created.", wallet.Name)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagIcon, "icon", "i", "wallet", "icon name")
	cmd.Flags().StringVarP(&flagColor, "color", "c", "#6C5CE7", "hex color")
	cmd.Flags().BoolVar(&flagDefault, "default", false, "make this the default wallet")

	return cmd
}

func updateWalletCmd() *cobra.Command {
	var (
		flagName  string
		flagIcon  string
		flagColor string
	)

	cmd := &cobra.Command{
		Use:   "update <id|name>",
		Short: "Rename or restyle a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallet, err := resolveWallet(ctx, store, args[0])
			if err != nil {
				return err
			}

			if flagName != "" {
				wallet.Name = flagName
			}
			if flagIcon != "" {
				wallet.Icon = flagIcon
			}
			if flagColor != "" {
				wallet.Color = flagColor
			}

			if err := store.UpdateWallet(ctx, wallet); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess("Wallet updated."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagName, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&flagIcon, "icon", "i", "", "new icon")
	cmd.Flags().StringVarP(&flagColor, "color", "c", "", "new hex color")

	return cmd
}

func deleteWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallet, err := resolveWallet(ctx, store, args[0])
			if err != nil {
				return err
			}
			if wallet.IsDefault {
				return fmt.Errorf("cannot delete the default wallet; set another default first")
			}

			if err := store.DeleteWallet(ctx, wallet.ID); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess(fmt.Sprintf("Wallet %q deleted.", wallet.Name)))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

func setDefaultWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <id|name>",
		Short: "Make a wallet the default for new transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			wallet, err := resolveWallet(ctx, store, args[0])
			if err != nil {
				return err
			}

			if err := store.SetDefaultWallet(ctx, wallet.ID); err != nil {
				return err
			}

			fmt.Println(cli.StyleSuccess(fmt.Sprintf("%q is now the default wallet.", wallet.Name)))
			return nil
		},
	}
}
