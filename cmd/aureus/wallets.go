package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/query"
	"github.com/aureusfin/aureus/internal/state"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallets",
		Long:  `List, add, update, and delete the wallets money moves through.`,
	}

	cmd.AddCommand(listWalletsCmd())
	cmd.AddCommand(addWalletCmd())
	cmd.AddCommand(updateWalletCmd())
	cmd.AddCommand(deleteWalletCmd())
	cmd.AddCommand(defaultWalletCmd())

	return cmd
}

func listWalletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all wallets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if len(snap.Wallets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No wallets yet. Use 'aureus wallets add' to create one."))
				return nil
			}

			f := formatter(snap)
			hidden := snap.HiddenBalances || snap.Prefs.HideBalances

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Balance"),
				cli.BoldStyle.Render("Currency"),
				cli.BoldStyle.Render("Default"))

			for _, wallet := range snap.Wallets {
				def := ""
				if wallet.Default {
					def = "★"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(wallet.ID), wallet.Name,
					f.FormatOrMask(wallet.Balance, wallet.Currency, hidden || wallet.HideBalance),
					wallet.Currency, def)
			}

			total := f.FormatOrMask(query.TotalBalance(snap), snap.Prefs.Currency, hidden)
			fmt.Fprintf(w, "\t%s\t%s\t\t\n", cli.BoldStyle.Render("Total"), total)
			return nil
		},
	}
}

func addWalletCmd() *cobra.Command {
	var (
		balance    float64
		walletCurr string
		color      string
		icon       string
		makeDef    bool
		hide       bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new wallet",
		Long:  `Create a wallet. The free plan is limited to three wallets.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("wallet name cannot be empty")
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if !query.CanCreateWallet(snap) {
				return fmt.Errorf("the free plan is limited to %d wallets; upgrade with 'aureus subscription set premium'", model.FreeWalletLimit)
			}

			if walletCurr == "" {
				walletCurr = snap.Prefs.Currency
			}

			wallet := model.Wallet{
				ID:          model.NewID(),
				Name:        name,
				Icon:        icon,
				Color:       color,
				Balance:     balance,
				Currency:    walletCurr,
				HideBalance: hide,
			}

			ops := []state.Op{state.AddWallet{Wallet: wallet}}
			// The first wallet is always the default one.
			if makeDef || len(snap.Wallets) == 0 {
				ops = append(ops, state.SetDefaultWallet{ID: wallet.ID})
			}
			store.Dispatch(ctx, ops...)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created wallet %q (%s)", name, shortID(wallet.ID))))
			return nil
		},
	}

	cmd.Flags().Float64Var(&balance, "balance", 0, "starting balance")
	cmd.Flags().StringVar(&walletCurr, "currency", "", "ISO currency code (default: your preference)")
	cmd.Flags().StringVar(&color, "color", "#D4A017", "display color")
	cmd.Flags().StringVar(&icon, "icon", "wallet", "display icon")
	cmd.Flags().BoolVar(&makeDef, "default", false, "make this the default wallet")
	cmd.Flags().BoolVar(&hide, "hide-balance", false, "hide this wallet's balance")

	return cmd
}

func updateWalletCmd() *cobra.Command {
	var (
		name string
		hide bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			wallet, ok := findWallet(snap, args[0])
			if !ok {
				return fmt.Errorf("wallet %q not found", args[0])
			}

			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(name) == "" {
					return fmt.Errorf("wallet name cannot be empty")
				}
				wallet.Name = strings.TrimSpace(name)
			}
			if cmd.Flags().Changed("hide-balance") {
				wallet.HideBalance = hide
			}

			store.Dispatch(ctx, state.UpdateWallet{Wallet: wallet})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated wallet %q", wallet.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new wallet name")
	cmd.Flags().BoolVar(&hide, "hide-balance", false, "hide this wallet's balance")

	return cmd
}

func deleteWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wallet",
		Long: `Delete a wallet. Transactions that reference it are kept; their
wallet reference simply stops resolving.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			wallet, ok := findWallet(snap, args[0])
			if !ok {
				return fmt.Errorf("wallet %q not found", args[0])
			}

			store.Dispatch(ctx, state.DeleteWallet{ID: wallet.ID})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted wallet %q", wallet.Name)))
			return nil
		},
	}
}

func defaultWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default <id>",
		Short: "Make a wallet the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			wallet, ok := findWallet(snap, args[0])
			if !ok {
				return fmt.Errorf("wallet %q not found", args[0])
			}

			store.Dispatch(ctx, state.SetDefaultWallet{ID: wallet.ID})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("%q is now the default wallet", wallet.Name)))
			return nil
		},
	}
}

// findWallet resolves a wallet by full ID, ID prefix, or exact name.
func findWallet(snap state.Snapshot, ref string) (model.Wallet, bool) {
	for _, w := range snap.Wallets {
		if w.ID == ref || strings.HasPrefix(w.ID, ref) || strings.EqualFold(w.Name, ref) {
			return w, true
		}
	}
	return model.Wallet{}, false
}
