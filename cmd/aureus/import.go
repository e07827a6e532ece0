package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/ofx"
	"github.com/aureusfin/aureus/internal/state"
	"github.com/aureusfin/aureus/internal/suggest"
)

func importCmd() *cobra.Command {
	var (
		walletRef string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX statement",
		Long: `Parse a bank statement export and record its entries into a wallet.
Each entry is auto-categorized from its description; entries that look
like duplicates of already-recorded transactions are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer func() { _ = file.Close() }()

			entries, err := ofx.NewParser().Parse(file)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("Statement contains no transactions."))
				return nil
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			wallet, ok := resolveWallet(snap, walletRef)
			if !ok {
				return fmt.Errorf("no wallet found; create one with 'aureus wallets add'")
			}

			seen := existingEntryKeys(snap, wallet.ID)

			bar := progressbar.NewOptions(len(entries),
				progressbar.OptionSetDescription("Importing"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)

			var imported, skipped int
			var ops []state.Op
			for _, e := range entries {
				_ = bar.Add(1)

				key := entryKey(e.Date, e.Amount, e.Description)
				if seen[key] {
					skipped++
					continue
				}
				seen[key] = true

				categoryID := model.CategoryOther
				if e.Kind == model.Income {
					categoryID = model.CategoryOtherIncome
				}
				if s, ok := suggest.Categorize(snap, e.Description); ok && e.Kind == model.Expense {
					categoryID = s.Category.ID
				}

				ops = append(ops, state.RecordTransaction{Transaction: model.Transaction{
					ID:          model.NewID(),
					Kind:        e.Kind,
					Amount:      e.Amount,
					Description: e.Description,
					CategoryID:  categoryID,
					WalletID:    wallet.ID,
					Date:        e.Date,
					Status:      model.StatusCompleted,
					Notes:       e.Memo,
				}})
				imported++
			}
			_ = bar.Finish()

			if dryRun {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf(
					"Dry run: would import %d transactions into %q (%d duplicates skipped)",
					imported, wallet.Name, skipped)))
				return nil
			}

			store.Dispatch(ctx, ops...)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Imported %d transactions into %q (%d duplicates skipped)",
				imported, wallet.Name, skipped)))
			return nil
		},
	}

	cmd.Flags().StringVar(&walletRef, "wallet", "", "wallet id or name (default: the default wallet)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without recording anything")

	return cmd
}

// entryKey identifies a statement line for duplicate detection. OFX FITIDs
// are not stored on transactions, so date+amount+description stands in.
func entryKey(date time.Time, amount float64, description string) string {
	return fmt.Sprintf("%s|%.2f|%s", date.Format("2006-01-02"), amount, description)
}

func existingEntryKeys(snap state.Snapshot, walletID string) map[string]bool {
	seen := make(map[string]bool, len(snap.Transactions))
	for _, t := range snap.Transactions {
		if t.WalletID == walletID {
			seen[entryKey(t.Date, t.Amount, t.Description)] = true
		}
	}
	return seen
}
