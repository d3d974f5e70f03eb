package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/schedule"
	"github.com/ramanasai/caltrack/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}

	if sess.cfg.Reminder.Enabled && os.Getenv("CALTRACK_NO_REMINDER") != "1" {
		send, err := reminder(cmd.Context())
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go schedule.RunConfigured(ctx, sess.cfg, send)
	}

	sess.log.Info("tui start", "activities", len(a.State().Activities))
	return ui.Run(a, ui.ThemeByName(sess.cfg.Theme))
}
