package main

import (
	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Browse wallets, budgets, recent transactions, upcoming bills, and
category spending in a full-screen terminal view. Press ? for keys.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			return tui.Run(store)
		},
	}
}
