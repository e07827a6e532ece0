package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func initCmd() *cobra.Command {
	var (
		name         string
		currencyCode string
		locale       string
		walletName   string
		balance      float64
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up aureus for first use",
		Long: `Run the one-time setup: record your name, currency, and locale, create
your first wallet, and mark onboarding complete. Safe to re-run only
with --force, which keeps existing data but rewrites the preferences.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if snap.View != state.ViewOnboarding && !force {
				return fmt.Errorf("already set up; re-run with --force to rewrite preferences")
			}

			name = strings.TrimSpace(name)
			currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
			if len(currencyCode) != 3 {
				return fmt.Errorf("invalid currency code %q (want ISO 4217, e.g. USD)", currencyCode)
			}

			ops := []state.Op{state.SetPreferences{
				Name:     &name,
				Currency: &currencyCode,
				Locale:   &locale,
			}}

			if len(snap.Wallets) == 0 {
				wallet := model.Wallet{
					ID:       model.NewID(),
					Name:     walletName,
					Balance:  balance,
					Currency: currencyCode,
					Icon:     "wallet",
					Default:  true,
				}
				ops = append(ops,
					state.AddWallet{Wallet: wallet},
					state.SetDefaultWallet{ID: wallet.ID},
				)
			}
			ops = append(ops, state.CompleteOnboarding{})

			store.Dispatch(ctx, ops...)

			greeting := "Welcome to aureus"
			if name != "" {
				greeting = fmt.Sprintf("Welcome to aureus, %s", name)
			}
			fmt.Println(cli.TitleStyle.Render(greeting))
			fmt.Println(cli.InfoStyle.Render("Record your first expense with 'aureus tx add', or open 'aureus dashboard'."))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "your display name")
	cmd.Flags().StringVar(&currencyCode, "currency", "USD", "ISO 4217 currency code")
	cmd.Flags().StringVar(&locale, "locale", "en-US", "BCP 47 locale for number formatting")
	cmd.Flags().StringVar(&walletName, "wallet", "Cash", "name for your first wallet")
	cmd.Flags().Float64Var(&balance, "balance", 0, "starting balance for the first wallet")
	cmd.Flags().BoolVar(&force, "force", false, "rewrite preferences even if already set up")

	return cmd
}
