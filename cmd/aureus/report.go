package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/query"
)

func reportCmd() *cobra.Command {
	var (
		month    int
		year     int
		advanced bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly spending report",
		Long: `Summarize one calendar month: income, expenses, net flow, and spending
grouped by category. Advanced breakdowns require premium or an active
trial.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			f := formatter(snap)
			m, y, err := monthFlags(month, year)
			if err != nil {
				return err
			}
			now := time.Now()

			if advanced && !query.CanUseAdvancedReports(snap) {
				return fmt.Errorf("advanced reports require premium or an active trial; see 'aureus subscription'")
			}

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Report for %s %d", m, y)))

			sum := query.SummarizeMonth(snap, m, y)
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Income:  "),
				cli.SuccessStyle.Render(f.Format(sum.Income, snap.Prefs.Currency)))
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Expenses:"),
				cli.ErrorStyle.Render(f.Format(sum.Expenses, snap.Prefs.Currency)))
			fmt.Printf("%s %s\n\n", cli.BoldStyle.Render("Net:     "),
				f.Format(sum.Net, snap.Prefs.Currency))

			spend := query.SpendByCategory(snap, m, y)
			if len(spend) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expenses recorded for this month."))
			} else {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					cli.BoldStyle.Render("Category"),
					cli.BoldStyle.Render("Spent"),
					cli.BoldStyle.Render("Share"))
				for _, cs := range spend {
					share := 0.0
					if sum.Expenses > 0 {
						share = cs.Amount / sum.Expenses * 100
					}
					fmt.Fprintf(w, "%s\t%s\t%.0f%%\n", cs.Category.Name,
						f.Format(cs.Amount, snap.Prefs.Currency), share)
				}
				_ = w.Flush()
			}

			fmt.Println()
			fmt.Println(upcomingSummary(snap, now))

			if advanced {
				fmt.Println()
				fmt.Println(cli.SubtitleStyle.Render("Budgets"))
				if len(snap.Budgets) == 0 {
					fmt.Println(cli.SubtleStyle.Render("No budgets set."))
				}
				for _, budget := range snap.Budgets {
					p := query.BudgetProgress(snap, budget.ID, now)
					line := fmt.Sprintf("%-16s %s %s of %s",
						snap.Category(budget.CategoryID).Name,
						cli.ProgressBar(p.Percent, 20),
						f.Format(p.Used, snap.Prefs.Currency),
						f.Format(p.Limit, snap.Prefs.Currency))
					if p.Overspent {
						line += " " + cli.ErrorStyle.Render(fmt.Sprintf("(over by %s)",
							f.Format(p.Used-p.Limit, snap.Prefs.Currency)))
					}
					fmt.Println(line)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month (1-12, default current)")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default current)")
	cmd.Flags().BoolVar(&advanced, "advanced", false, "include budget breakdowns (premium)")

	return cmd
}
