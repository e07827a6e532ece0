package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/query"
	"github.com/aureusfin/aureus/internal/state"
	"github.com/aureusfin/aureus/internal/suggest"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
		Long:  `Record, list, and delete expenses, incomes, and transfers.`,
	}

	cmd.AddCommand(listTxCmd())
	cmd.AddCommand(addTxCmd())
	cmd.AddCommand(transferCmd())
	cmd.AddCommand(deleteTxCmd())

	return cmd
}

func listTxCmd() *cobra.Command {
	var (
		month int
		year  int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			f := formatter(snap)
			hidden := snap.HiddenBalances || snap.Prefs.HideBalances

			var txs []model.Transaction
			if cmd.Flags().Changed("month") || cmd.Flags().Changed("year") {
				m, y, err := monthFlags(month, year)
				if err != nil {
					return err
				}
				txs = query.TransactionsInMonth(snap, m, y)
			} else {
				txs = query.VisibleTransactions(snap, time.Now())
			}
			if limit > 0 && len(txs) > limit {
				txs = txs[:limit]
			}

			if len(txs) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions recorded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Description"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Status"))

			for _, t := range txs {
				amount := f.FormatOrMask(t.Amount, snap.Prefs.Currency, hidden)
				switch t.Kind {
				case model.Income:
					amount = cli.SuccessStyle.Render("+" + amount)
				case model.Expense:
					amount = cli.ErrorStyle.Render("-" + amount)
				case model.TransferKind:
					amount = cli.InfoStyle.Render("⇄" + amount)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(t.ID), t.Date.Format("2006-01-02"), t.Description,
					snap.Category(t.CategoryID).Name, amount, string(t.Status))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "calendar month (1-12)")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to show")

	return cmd
}

func addTxCmd() *cobra.Command {
	var (
		kindFlag   string
		categoryID string
		walletRef  string
		dateFlag   string
		payee      string
		notes      string
		pending    bool
		recurring  bool
		freqFlag   string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record an expense or income",
		Long: `Record a transaction and adjust the wallet balance in the same step.
When --category is omitted, the auto-categorization rules suggest one
from the description.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			description := strings.TrimSpace(args[1])
			if description == "" {
				return fmt.Errorf("description cannot be empty")
			}

			var kind model.TransactionKind
			switch kindFlag {
			case "expense":
				kind = model.Expense
			case "income":
				kind = model.Income
			default:
				return fmt.Errorf("invalid kind %q (want expense or income; use 'aureus tx transfer' for transfers)", kindFlag)
			}

			date, err := parseDate(dateFlag)
			if err != nil {
				return err
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

			var learned *state.AddAutoRule
			if categoryID == "" {
				if s, ok := suggest.Categorize(snap, description); ok {
					categoryID = s.Category.ID
					op := suggest.Learn(s.Rule.Term, s.Category.ID)
					learned = &op
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Suggested category: %s", s.Category.Name)))
				} else {
					categoryID = model.CategoryOther
				}
			} else if _, found := categoryByRef(snap, categoryID); !found {
				return fmt.Errorf("category %q not found", categoryID)
			} else {
				cat, _ := categoryByRef(snap, categoryID)
				categoryID = cat.ID
			}

			status := model.StatusCompleted
			if pending {
				status = model.StatusPending
			}

			tx := model.Transaction{
				ID:          model.NewID(),
				Kind:        kind,
				Amount:      amount,
				Description: description,
				CategoryID:  categoryID,
				WalletID:    wallet.ID,
				Date:        date,
				Status:      status,
				Payee:       payee,
				Notes:       notes,
				Recurring:   recurring,
				Frequency:   model.Frequency(freqFlag),
			}
			if recurring && tx.Frequency == "" {
				tx.Frequency = model.Monthly
			}

			ops := []state.Op{state.RecordTransaction{Transaction: tx}}
			if learned != nil {
				ops = append(ops, *learned)
			}
			store.Dispatch(ctx, ops...)

			f := formatter(snap)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Recorded %s of %s (%s)",
				string(kind), f.Format(amount, wallet.Currency), shortID(tx.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "expense", "transaction kind (expense, income)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id or name (default: suggested)")
	cmd.Flags().StringVar(&walletRef, "wallet", "", "wallet id or name (default: the default wallet)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&payee, "payee", "", "payee name")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().BoolVar(&pending, "pending", false, "mark as pending instead of completed")
	cmd.Flags().BoolVar(&recurring, "recurring", false, "mark as recurring")
	cmd.Flags().StringVar(&freqFlag, "frequency", "", "recurrence frequency (daily, weekly, monthly, yearly)")

	return cmd
}

func transferCmd() *cobra.Command {
	var (
		fromRef  string
		toRef    string
		dateFlag string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "transfer <amount> <description>",
		Short: "Move money between two wallets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			description := strings.TrimSpace(args[1])
			if description == "" {
				return fmt.Errorf("description cannot be empty")
			}

			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()

			from, ok := resolveWallet(snap, fromRef)
			if !ok {
				return fmt.Errorf("source wallet not found")
			}
			to, ok := findWallet(snap, toRef)
			if !ok {
				return fmt.Errorf("destination wallet %q not found", toRef)
			}
			// Transfers require a destination distinct from the source.
			if from.ID == to.ID {
				return fmt.Errorf("cannot transfer from a wallet to itself")
			}

			tx := model.Transaction{
				ID:          model.NewID(),
				Kind:        model.TransferKind,
				Amount:      amount,
				Description: description,
				CategoryID:  model.CategoryTransfer,
				WalletID:    from.ID,
				ToWalletID:  to.ID,
				Date:        date,
				Status:      model.StatusCompleted,
				Notes:       notes,
			}
			store.Dispatch(ctx, state.RecordTransaction{Transaction: tx})

			f := formatter(snap)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Transferred %s from %q to %q",
				f.Format(amount, from.Currency), from.Name, to.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromRef, "from", "", "source wallet id or name (default: the default wallet)")
	cmd.Flags().StringVar(&toRef, "to", "", "destination wallet id or name")
	cmd.Flags().StringVar(&dateFlag, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func deleteTxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Long: `Delete a transaction record. The wallet-balance effect of the original
entry is not reversed; record an opposite transaction to compensate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			for _, t := range snap.Transactions {
				if t.ID == args[0] || strings.HasPrefix(t.ID, args[0]) {
					store.Dispatch(ctx, state.DeleteTransaction{ID: t.ID})
					fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted transaction %q", t.Description)))
					return nil
				}
			}
			return fmt.Errorf("transaction %q not found", args[0])
		},
	}
}

// resolveWallet finds the referenced wallet, or the default wallet when no
// reference is given.
func resolveWallet(snap state.Snapshot, ref string) (model.Wallet, bool) {
	if ref == "" {
		return snap.DefaultWallet()
	}
	return findWallet(snap, ref)
}

// categoryByRef resolves a category by ID or name without the sentinel
// fallback, for boundary validation.
func categoryByRef(snap state.Snapshot, ref string) (model.Category, bool) {
	for _, c := range snap.Categories {
		if c.ID == ref || strings.EqualFold(c.Name, ref) {
			return c, true
		}
	}
	return model.Category{}, false
}
