package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/persist"
)

// recoverCmd merges backups that the configured passphrase can open back into
// the list. Activities already present by id are left alone.
var recoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Restore activities from backups of an unreadable saved list",
	Long: `When the saved list cannot be opened (usually a wrong or missing passphrase)
caltrack starts empty and keeps the old value under ` + persist.BackupKey + `.
Run recover with the passphrase that wrote it to merge those activities back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		keys, err := persist.Backups(ctx, sess.store)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(keys) == 0 {
			fmt.Fprintln(out, "No backups to recover")
			return nil
		}

		restored := 0
		for _, key := range keys {
			list, err := persist.ReadKey(ctx, sess.store, key, sess.popts)
			if err != nil {
				fmt.Fprintf(out, "Skipped %s: %v\n", key, err)
				continue
			}
			for _, act := range list {
				if _, ok := activity.Find(a.State().Activities, act.ID); ok {
					continue
				}
				a.Dispatch(activity.SaveActivity{Activity: act})
				restored++
			}
		}
		fmt.Fprintf(out, "Restored %d activities\n", restored)
		return nil
	},
}
