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
	"github.com/aureusfin/aureus/internal/suggest"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage auto-categorization rules",
		Long: `List and add the substring rules that suggest a category from a
transaction description. Rules only ever suggest; nothing is applied
without you accepting it.`,
	}

	cmd.AddCommand(listRulesCmd())
	cmd.AddCommand(addRuleCmd())
	cmd.AddCommand(testRuleCmd())

	return cmd
}

func listRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List auto-categorization rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Term"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Hits"))

			for _, r := range snap.AutoRules {
				fmt.Fprintf(w, "%s\t%s\t%d\n", r.Term, snap.Category(r.CategoryID).Name, r.Frequency)
			}
			return nil
		},
	}
}

func addRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <term> <category>",
		Short: "Add a rule mapping a description substring to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			term := strings.ToLower(strings.TrimSpace(args[0]))
			if term == "" {
				return fmt.Errorf("rule term cannot be empty")
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			cat, found := categoryByRef(snap, args[1])
			if !found {
				return fmt.Errorf("category %q not found", args[1])
			}

			store.Dispatch(ctx, state.AddAutoRule{Rule: model.AutoRule{
				Term:       term,
				CategoryID: cat.ID,
				Frequency:  1,
			}})

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Descriptions containing %q now suggest %s", term, cat.Name)))
			return nil
		},
	}
}

func testRuleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <description>",
		Short: "Show which category a description would suggest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if s, ok := suggest.Categorize(snap, args[0]); ok {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("%q suggests %s (term %q)",
					args[0], s.Category.Name, s.Rule.Term)))
				return nil
			}
			fmt.Println(cli.SubtleStyle.Render("No rule matches that description."))
			return nil
		},
	}
}
