package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aureusfin/aureus/internal/cli"
	"github.com/aureusfin/aureus/internal/persist"
)

// backuper is the optional backup surface a persistence adapter may offer.
type backuper interface {
	Backup(ctx context.Context, tag string) (persist.BackupInfo, error)
	Backups(ctx context.Context) ([]persist.BackupInfo, error)
}

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage snapshot backups",
		Long: `Create and list point-in-time copies of the data file. Backups live
next to the data file (or inside the database for the sqlite backend).`,
	}

	cmd.AddCommand(createBackupCmd())
	cmd.AddCommand(listBackupsCmd())

	return cmd
}

func createBackupCmd() *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a backup of the current data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			port, err := openPort()
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			b, ok := port.(backuper)
			if !ok {
				return fmt.Errorf("the configured storage backend does not support backups")
			}

			info, err := b.Backup(ctx, tag)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created backup %q (%d bytes)", info.Tag, info.Size)))
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "backup tag (default: timestamped)")

	return cmd
}

func listBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored backups, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			port, err := openPort()
			if err != nil {
				return err
			}
			defer func() { _ = port.Close() }()

			b, ok := port.(backuper)
			if !ok {
				return fmt.Errorf("the configured storage backend does not support backups")
			}

			infos, err := b.Backups(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println(cli.InfoStyle.Render("No backups yet. Use 'aureus backup create'."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Tag"),
				cli.BoldStyle.Render("Created"),
				cli.BoldStyle.Render("Size"))
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%s\t%d B\n", info.Tag, info.CreatedAt.Format("2006-01-02 15:04"), info.Size)
			}
			return nil
		},
	}
}
