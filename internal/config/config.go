package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ramanasai/caltrack/internal/catalog"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"`     // "20:00"
	Workdays []string `mapstructure:"workdays"` // ["Mon","Tue",...]
	Holidays []string `mapstructure:"holidays"` // ["2025-12-25"]
	Timezone string   `mapstructure:"timezone"` // e.g. "Europe/Madrid" (optional)
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend"`    // sqlite|file
	Path       string `mapstructure:"path"`       // empty = default location
	Passphrase string `mapstructure:"passphrase"` // non-empty seals the stored list
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Theme      string             `mapstructure:"theme"`
	Log        LogConfig          `mapstructure:"log"`
	Storage    StorageConfig      `mapstructure:"storage"`
	Categories []catalog.Category `mapstructure:"categories"`
	Reminder   ReminderConfig     `mapstructure:"reminder"`
}

func Default() Config {
	return Config{
		Theme:   "default",
		Log:     LogConfig{Level: "info"},
		Storage: StorageConfig{Backend: BackendSQLite},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
			Timezone: "",
		},
	}
}

// DefaultPath is ~/.config/caltrack/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "caltrack", "config.yaml"), nil
}

// Load reads the YAML file at path (DefaultPath when empty). A missing file
// is fine. CALTRACK_* variables, including ones from ./.env, override it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	_ = godotenv.Load() // ok if missing

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("caltrack")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("storage.backend", cfg.Storage.Backend)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.passphrase", cfg.Storage.Passphrase)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)

	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			return cfg, fmt.Errorf("config read %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch cfg.Storage.Backend {
	case BackendSQLite, BackendFile:
	default:
		return cfg, fmt.Errorf("config: unknown storage backend %q (want %s or %s)", cfg.Storage.Backend, BackendSQLite, BackendFile)
	}

	// normalize workdays
	days := cfg.Reminder.Workdays[:0]
	for _, d := range cfg.Reminder.Workdays {
		d = strings.TrimSpace(d)
		if len(d) < 3 {
			continue
		}
		days = append(days, strings.ToUpper(d[:1])+strings.ToLower(d[1:3]))
	}
	cfg.Reminder.Workdays = days
	return cfg, nil
}

// Catalog builds the category table: built-ins plus configured extras.
func (c Config) Catalog() (*catalog.Catalog, error) {
	cat, err := catalog.New(c.Categories...)
	if err != nil {
		return nil, fmt.Errorf("config categories: %w", err)
	}
	return cat, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}
