package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/query"
	"github.com/aureusfin/aureus/internal/state"
)

func subscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Show and change the plan",
		Long: `Inspect the current plan and switch tiers. No payment happens here; the
plan only gates the wallet cap and advanced reports.`,
	}

	cmd.AddCommand(subscriptionStatusCmd())
	cmd.AddCommand(subscriptionSetCmd())
	cmd.AddCommand(subscriptionTrialCmd())

	return cmd
}

func subscriptionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			sub := snap.Sub

			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Plan:"), string(sub.Plan))
			if sub.TrialActive {
				fmt.Printf("%s %d days left\n", cli.BoldStyle.Render("Trial:"), sub.TrialDaysLeft)
			}
			if sub.ExpiresAt != nil {
				fmt.Printf("%s %s\n", cli.BoldStyle.Render("Expires:"), sub.ExpiresAt.Format("2006-01-02"))
			}

			if query.CanUseAdvancedReports(snap) {
				fmt.Println(cli.SuccessStyle.Render("Advanced reports unlocked; no wallet cap."))
			} else {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
					"Free plan: up to %d wallets, basic reports. Try 'aureus subscription trial'.",
					model.FreeWalletLimit)))
			}
			return nil
		},
	}
}

func subscriptionSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <plan>",
		Short: "Switch between free and premium",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			plan := model.Plan(args[0])
			if plan != model.PlanFree && plan != model.PlanPremium {
				return fmt.Errorf("invalid plan %q (want free or premium)", args[0])
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			op := state.SetSubscription{Plan: &plan}
			trialOff := false
			now := time.Now()
			if plan == model.PlanPremium {
				op.TrialActive = &trialOff
				op.StartedAt = &now
			}
			store.Dispatch(ctx, op)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Plan set to %s", string(plan))))
			return nil
		},
	}
}

func subscriptionTrialCmd() *cobra.Command {
	const trialDays = 14

	return &cobra.Command{
		Use:   "trial",
		Short: "Start the premium trial",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if snap.Sub.Plan == model.PlanPremium {
				return fmt.Errorf("already on premium; no trial needed")
			}
			if snap.Sub.TrialActive {
				return fmt.Errorf("trial already active (%d days left)", snap.Sub.TrialDaysLeft)
			}
			if snap.Sub.StartedAt != nil {
				return fmt.Errorf("trial already used")
			}

			active := true
			days := trialDays
			now := time.Now()
			expires := now.AddDate(0, 0, trialDays)
			store.Dispatch(ctx, state.SetSubscription{
				TrialActive:   &active,
				TrialDaysLeft: &days,
				StartedAt:     &now,
				ExpiresAt:     &expires,
			})

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Premium trial started: %d days", trialDays)))
			return nil
		},
	}
}
