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
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage payable bills",
		Long:  `Track scheduled expense obligations until they are paid.`,
	}

	cmd.AddCommand(listBillsCmd())
	cmd.AddCommand(addBillCmd())
	cmd.AddCommand(payBillCmd())
	cmd.AddCommand(deleteBillCmd())

	return cmd
}

func listBillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bills with their derived status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if len(snap.Bills) == 0 {
				fmt.Println(cli.InfoStyle.Render("No bills tracked. Use 'aureus bills add' to create one."))
				return nil
			}

			f := formatter(snap)
			now := time.Now()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Description"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Due"),
				cli.BoldStyle.Render("Status"))

			for _, b := range snap.Bills {
				status := string(b.Status)
				switch {
				case b.Overdue(now):
					status = cli.ErrorStyle.Render("overdue")
				case b.Status == model.BillPaid:
					status = cli.SuccessStyle.Render("paid")
				default:
					status = cli.WarningStyle.Render("pending")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					shortID(b.ID), b.Description,
					f.Format(b.Amount, snap.Prefs.Currency),
					b.DueDate.Format("2006-01-02"), status)
			}
			return nil
		},
	}
}

func addBillCmd() *cobra.Command {
	var (
		dueFlag    string
		categoryID string
		walletRef  string
		remindDays int
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Track a new bill",
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
			due, err := parseDate(dueFlag)
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

			catID := model.CategoryOther
			if categoryID != "" {
				cat, found := categoryByRef(snap, categoryID)
				if !found {
					return fmt.Errorf("category %q not found", categoryID)
				}
				catID = cat.ID
			}

			if remindDays <= 0 {
				remindDays = snap.Prefs.Notifications.ReminderDays
			}

			bill := model.Bill{
				ID:          model.NewID(),
				Description: description,
				Amount:      amount,
				DueDate:     due,
				CategoryID:  catID,
				WalletID:    wallet.ID,
				Status:      model.BillPending,
				RemindDays:  remindDays,
				Notes:       notes,
			}
			store.Dispatch(ctx, state.AddBill{Bill: bill})

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Tracking bill %q due %s (%s)",
				description, due.Format("2006-01-02"), shortID(bill.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&dueFlag, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id or name")
	cmd.Flags().StringVar(&walletRef, "wallet", "", "wallet to pay from (default: the default wallet)")
	cmd.Flags().IntVar(&remindDays, "remind-days", 0, "reminder lead time in days")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func payBillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pay <id>",
		Short: "Pay a bill",
		Long: `Mark a bill paid. The matching expense transaction is recorded and the
bill's wallet debited in the same step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			bill, ok := findBill(snap, args[0])
			if !ok {
				return fmt.Errorf("bill %q not found", args[0])
			}
			if bill.Status == model.BillPaid {
				return fmt.Errorf("bill %q is already paid", bill.Description)
			}

			store.Dispatch(ctx, state.PayBill{
				BillID: bill.ID,
				TxID:   model.NewID(),
				PaidAt: time.Now(),
			})

			f := formatter(snap)
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Paid %q (%s)",
				bill.Description, f.Format(bill.Amount, snap.Prefs.Currency))))
			return nil
		},
	}
}

func deleteBillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Stop tracking a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			bill, ok := findBill(snap, args[0])
			if !ok {
				return fmt.Errorf("bill %q not found", args[0])
			}

			store.Dispatch(ctx, state.DeleteBill{ID: bill.ID})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted bill %q", bill.Description)))
			return nil
		},
	}
}

func findBill(snap state.Snapshot, ref string) (model.Bill, bool) {
	for _, b := range snap.Bills {
		if b.ID == ref || strings.HasPrefix(b.ID, ref) {
			return b, true
		}
	}
	return model.Bill{}, false
}

// upcomingSummary renders a one-line digest of due bills for the report.
func upcomingSummary(snap state.Snapshot, now time.Time) string {
	overdue := query.OverdueBills(snap, now)
	upcoming := query.UpcomingBills(snap, now)
	if len(overdue) == 0 && len(upcoming) == 0 {
		return cli.SubtleStyle.Render("No bills due in the next 7 days.")
	}
	return fmt.Sprintf("%s overdue, %s due within 7 days",
		cli.ErrorStyle.Render(fmt.Sprintf("%d", len(overdue))),
		cli.WarningStyle.Render(fmt.Sprintf("%d", len(upcoming))))
}
