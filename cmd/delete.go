package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id-or-prefix>...",
	Aliases: []string{"rm"},
	Short:   "Delete one or more activities",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}

		// resolve everything first so a bad reference deletes nothing
		var targets []activity.Activity
		for _, ref := range args {
			t, err := activity.Resolve(a.State().Activities, ref)
			if err != nil {
				return err
			}
			targets = append(targets, t)
		}

		for _, t := range targets {
			a.Dispatch(activity.DeleteActivity{ID: t.ID})
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted [%s] %s\n", activity.ShortID(t.ID), t.Name)
		}
		return nil
	},
}
