package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/query"
	"github.com/aureusfin/aureus/internal/state"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage monthly category budgets",
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with this month's progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if len(snap.Budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'aureus budgets set' to create one."))
				return nil
			}

			f := formatter(snap)
			now := time.Now()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Used"),
				cli.BoldStyle.Render("Limit"),
				cli.BoldStyle.Render("Progress"),
				cli.BoldStyle.Render(""))

			for _, budget := range snap.Budgets {
				p := query.BudgetProgress(snap, budget.ID, now)
				note := ""
				if p.Overspent {
					note = cli.ErrorStyle.Render("over budget")
				} else if query.OverAlertThreshold(snap, budget.ID, now) {
					note = cli.WarningStyle.Render("near limit")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s %3.0f%%\t%s\n",
					snap.Category(budget.CategoryID).Name,
					f.Format(p.Used, snap.Prefs.Currency),
					f.Format(p.Limit, snap.Prefs.Currency),
					cli.ProgressBar(p.Percent, 16), p.Percent, note)
			}
			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	var alertPercent int

	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Create or replace the budget for a category",
		Long: `Set a monthly spending limit on one category. Each category holds at
most one budget; setting it again replaces the old one.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("budget limit must be positive")
			}
			if alertPercent < 50 || alertPercent > 100 {
				return fmt.Errorf("alert threshold must be between 50 and 100")
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			cat, found := categoryByRef(snap, args[0])
			if !found {
				return fmt.Errorf("category %q not found", args[0])
			}
			if cat.Kind != model.KindExpense {
				return fmt.Errorf("budgets apply to expense categories; %q is an income category", cat.Name)
			}

			budget := model.Budget{
				ID:           model.NewID(),
				CategoryID:   cat.ID,
				Limit:        limit,
				Period:       model.PeriodMonthly,
				AlertPercent: alertPercent,
			}

			// One budget per category: replace in place when one exists.
			if existing, ok := snap.BudgetForCategory(cat.ID); ok {
				budget.ID = existing.ID
				store.Dispatch(ctx, state.UpdateBudget{Budget: budget})
			} else {
				store.Dispatch(ctx, state.AddBudget{Budget: budget})
			}

			f := formatter(snap)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget for %s set to %s/month",
				cat.Name, f.Format(limit, snap.Prefs.Currency))))
			return nil
		},
	}

	cmd.Flags().IntVar(&alertPercent, "alert", 80, "alert threshold percentage (50-100)")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Remove the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			cat, found := categoryByRef(snap, args[0])
			if !found {
				return fmt.Errorf("category %q not found", args[0])
			}
			budget, ok := snap.BudgetForCategory(cat.ID)
			if !ok {
				return fmt.Errorf("no budget set for %s", cat.Name)
			}

			store.Dispatch(ctx, state.DeleteBudget{ID: budget.ID})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Removed budget for %s", cat.Name)))
			return nil
		},
	}
}
