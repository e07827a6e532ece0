package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/model"
	"github.com/aureusfin/aureus/internal/state"
)

func payeesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payees",
		Short: "Manage saved payees",
		Long: `List and add saved payees. Transactions can also carry free-text payee
names; only payees added here are persisted as records.`,
	}

	cmd.AddCommand(listPayeesCmd())
	cmd.AddCommand(addPayeeCmd())

	return cmd
}

func listPayeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved payees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if len(snap.Beneficiaries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No saved payees. Use 'aureus payees add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Default category"),
				cli.BoldStyle.Render("Uses"))

			for _, p := range snap.Beneficiaries {
				cat := cli.SubtleStyle.Render("-")
				if p.DefaultCategoryID != "" {
					cat = snap.Category(p.DefaultCategoryID).Name
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", shortID(p.ID), p.Name, cat, p.UseCount)
			}
			return nil
		},
	}
}

func addPayeeCmd() *cobra.Command {
	var categoryRef string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Save a payee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("payee name cannot be empty")
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()

			var categoryID string
			if categoryRef != "" {
				cat, found := categoryByRef(snap, categoryRef)
				if !found {
					return fmt.Errorf("category %q not found", categoryRef)
				}
				categoryID = cat.ID
			}

			payee := model.Beneficiary{
				ID:                model.NewID(),
				Name:              name,
				DefaultCategoryID: categoryID,
			}
			store.Dispatch(ctx, state.AddBeneficiary{Beneficiary: payee})

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Saved payee %q (%s)", name, shortID(payee.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryRef, "category", "", "default category for this payee")

	return cmd
}
