package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ramanasai/caltrack/internal/app"
	"github.com/ramanasai/caltrack/internal/catalog"
	"github.com/ramanasai/caltrack/internal/config"
	"github.com/ramanasai/caltrack/internal/db"
	"github.com/ramanasai/caltrack/internal/encryption"
	"github.com/ramanasai/caltrack/internal/logs"
	"github.com/ramanasai/caltrack/internal/persist"
	"github.com/ramanasai/caltrack/internal/storage"
)

var (
	cfgFile  string
	logLevel string
)

// session is everything a command runs against. It is rebuilt for every
// invocation by setup and released by teardown in Execute.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	cat     *catalog.Catalog
	store   storage.Store
	popts   persist.Options
	app     *app.App
	closers []io.Closer
}

var sess *session

var rootCmd = &cobra.Command{
	Use:   "caltrack",
	Short: "Track calories eaten and burned",
	Long: `Caltrack keeps a running list of food and exercise entries and shows
calories consumed, burned and the net balance. Run without a command to open
the terminal UI.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// Execute runs the command line and releases the session even when the
// command failed.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, teardown())
}

func init() {
	// assigned here rather than in the literal: setup refers back to rootCmd
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/caltrack/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error (overrides config)")

	rootCmd.AddCommand(addCmd, editCmd, deleteCmd, restartCmd, listCmd, summaryCmd, categoriesCmd, remindCmd, recoverCmd, versionCmd, tuiCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	if cmd == versionCmd {
		return nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	s := &session{cfg: cfg}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	opts := logs.Options{Level: level, Writer: cmd.ErrOrStderr(), Journal: cmd == remindCmd}
	if ownsScreen(cmd) {
		// the TUI owns the terminal; never write log lines over it
		opts.Writer = io.Discard
		if f, err := logs.OpenFile(); err == nil {
			opts.Writer = f
			s.closers = append(s.closers, f)
		}
	}
	s.log, err = logs.New(opts)
	if err != nil {
		return err
	}
	slog.SetDefault(s.log)

	s.cat, err = cfg.Catalog()
	if err != nil {
		return err
	}
	s.popts = persist.Options{Logger: s.log}
	if pw := cfg.Storage.Passphrase; pw != "" {
		if s.popts.Encryptor, err = encryption.NewEncryptor(pw); err != nil {
			return err
		}
	}

	sess = s
	return nil
}

func teardown() error {
	if sess == nil {
		return nil
	}
	var errs []error
	for i := len(sess.closers) - 1; i >= 0; i-- {
		errs = append(errs, sess.closers[i].Close())
	}
	sess = nil
	return errors.Join(errs...)
}

func ownsScreen(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == tuiCmd
}

// openStore opens the configured backend, creating its file when missing.
func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		path := cfg.Path
		if path == "" {
			dir, err := db.AppDataDir()
			if err != nil {
				return nil, err
			}
			path = filepath.Join(dir, "activities.json")
		}
		return storage.OpenFile(path)
	case config.BackendSQLite, "":
		return db.Open(cfg.Path)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
}

// store opens the session store once.
func (s *session) openStore() (storage.Store, error) {
	if s.store != nil {
		return s.store, nil
	}
	store, err := openStore(s.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s.store = store
	s.closers = append(s.closers, store)
	return store, nil
}

// openApp loads the saved list and mirrors every change back to the store.
func openApp(ctx context.Context) (*app.App, error) {
	if sess == nil {
		return nil, errors.New("caltrack: session not initialised")
	}
	if sess.app != nil {
		return sess.app, nil
	}
	store, err := sess.openStore()
	if err != nil {
		return nil, err
	}
	a := app.New(persist.Load(ctx, store, sess.popts), sess.cat, app.WithLogger(sess.log))
	a.Subscribe(persist.Mirror(store, sess.popts))
	sess.app = a
	return a, nil
}
