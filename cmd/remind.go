package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/notify"
	"github.com/ramanasai/caltrack/internal/persist"
	"github.com/ramanasai/caltrack/internal/schedule"
)

var remindNow bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send the daily logging reminder on schedule (runs in the foreground)",
	Long: `Runs until interrupted and posts a desktop notification at reminder.time
on every reminder.workdays day that is not listed in reminder.holidays.
Suitable for a systemd user service; logs then also go to the journal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		send, err := reminder(cmd.Context())
		if err != nil {
			return err
		}
		if remindNow {
			send()
			return nil
		}
		if !sess.cfg.Reminder.Enabled {
			return errors.New("reminders are disabled; set reminder.enabled: true in the config")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		next := schedule.NextAt(time.Now(), sess.cfg)
		if next.IsZero() {
			return errors.New("no reminder day configured; check reminder.workdays")
		}
		sess.log.Info("reminder scheduled", "next", next.Format(time.RFC3339))
		schedule.RunConfigured(ctx, sess.cfg, send)
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVar(&remindNow, "now", false, "send one reminder immediately and exit")
}

// reminder returns a callback that reads the saved list and posts the
// prompt. It reads the store on every call, so it sees changes made by
// other caltrack processes.
func reminder(ctx context.Context) (func(), error) {
	s := sess
	store, err := s.openStore()
	if err != nil {
		return nil, err
	}
	return func() {
		list := persist.Load(ctx, store, s.popts)
		title, msg := notify.FormatDailyPrompt(len(list), activity.Summarize(list, s.cat))
		if err := notify.Info(title, msg); err != nil {
			s.log.Warn("send reminder", "error", err)
			return
		}
		s.log.Info("reminder sent", "logged", len(list))
	}, nil
}
