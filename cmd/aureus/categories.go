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

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `List and add categories. The seeded defaults are never deleted.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
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

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Kind"),
				cli.BoldStyle.Render("Subcategories"))

			for _, c := range snap.Categories {
				subs := strings.Join(c.Subcategories, ", ")
				if subs == "" {
					subs = cli.SubtleStyle.Render("-")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, string(c.Kind), subs)
			}
			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		kindFlag string
		color    string
		icon     string
		subs     []string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("category name cannot be empty")
			}

			var kind model.CategoryKind
			switch kindFlag {
			case "expense":
				kind = model.KindExpense
			case "income":
				kind = model.KindIncome
			default:
				return fmt.Errorf("invalid kind %q (want expense or income)", kindFlag)
			}

			store, port, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			snap := store.Snapshot()
			if _, exists := categoryByRef(snap, name); exists {
				return fmt.Errorf("category %q already exists", name)
			}

			cat := model.Category{
				ID:            slugify(name),
				Name:          name,
				Icon:          icon,
				Color:         color,
				Kind:          kind,
				Subcategories: subs,
			}
			if _, taken := categoryByRef(snap, cat.ID); taken {
				cat.ID = model.NewID()
			}

			store.Dispatch(ctx, state.AddCategory{Category: cat})
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created category %q (%s)", name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "expense", "category kind (expense, income)")
	cmd.Flags().StringVar(&color, "color", "#64748B", "display color")
	cmd.Flags().StringVar(&icon, "icon", "tag", "display icon")
	cmd.Flags().StringSliceVar(&subs, "subcategories", nil, "comma-separated subcategory names")

	return cmd
}

// slugify derives a stable category id from its name.
func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	var b strings.Builder
	for _, r := range slug {
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
