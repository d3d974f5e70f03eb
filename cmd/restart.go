package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
)

var restartYes bool

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Remove every activity and start over",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}

		n := len(a.State().Activities)
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to restart")
			return nil
		}
		if !restartYes {
			return fmt.Errorf("refusing to remove %d activities without --yes", n)
		}

		a.Dispatch(activity.RestartApp{})
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d activities\n", n)
		return nil
	},
}

func init() {
	restartCmd.Flags().BoolVarP(&restartYes, "yes", "y", false, "confirm removing everything")
}
