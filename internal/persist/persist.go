// Package persist mirrors the activity list into a storage.Store and reads it
// back on startup. Failures never reach the caller: a broken store means an
// empty log, not a crash.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ramanasai/caltrack/internal/activity"
	"github.com/ramanasai/caltrack/internal/app"
	"github.com/ramanasai/caltrack/internal/encryption"
	"github.com/ramanasai/caltrack/internal/storage"
)

// Key is the storage key that holds the encoded activity list.
const Key = "activities"

// BackupKey is the first key Load parks an unreadable stored value under.
// Later backups go to BackupKey.1, BackupKey.2 and so on.
const BackupKey = Key + ".unreadable"

const (
	writeTimeout = 5 * time.Second
	maxBackups   = 100
)

type Options struct {
	// Encryptor seals the value when set. Unsealed values are still readable.
	Encryptor *encryption.Encryptor
	Logger    *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Encode returns the JSON array for list; an empty or nil list is "[]".
func Encode(list []activity.Activity) (string, error) {
	if list == nil {
		list = []activity.Activity{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a value written by Encode. Duplicate ids are rejected so the
// uniqueness invariant holds from the first state on.
func Decode(value string) ([]activity.Activity, error) {
	var list []activity.Activity
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []activity.Activity{}
	}
	if dups := activity.DuplicateIDs(list); len(dups) > 0 {
		return nil, fmt.Errorf("duplicate activity ids %v", dups)
	}
	return list, nil
}

// Read returns the stored list or the reason it could not be used.
func Read(ctx context.Context, s storage.Store, opts Options) ([]activity.Activity, error) {
	return ReadKey(ctx, s, Key, opts)
}

// ReadKey is Read for an arbitrary key, such as a backup.
func ReadKey(ctx context.Context, s storage.Store, key string, opts Options) ([]activity.Activity, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return parse(raw, opts)
}

func parse(raw string, opts Options) ([]activity.Activity, error) {
	var err error
	if encryption.IsSealed(raw) {
		if opts.Encryptor == nil {
			return nil, errors.New("stored activities are encrypted and no passphrase is configured")
		}
		if raw, err = opts.Encryptor.Open(raw); err != nil {
			return nil, err
		}
	}
	return Decode(raw)
}

// Load is Read that falls back to an empty list on any failure. A value that
// was read but could not be opened or decoded is copied to a backup key first,
// since the next Mirror write replaces it.
func Load(ctx context.Context, s storage.Store, opts Options) []activity.Activity {
	raw, err := s.Get(ctx, Key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return []activity.Activity{}
	case err != nil:
		opts.logger().Warn("ignoring stored activities", "key", Key, "error", err)
		return []activity.Activity{}
	}

	list, err := parse(raw, opts)
	if err == nil {
		opts.logger().Debug("activities loaded", "count", len(list))
		return list
	}
	log := opts.logger().With("key", Key, "error", err)
	backup, berr := Backup(ctx, s, raw)
	if berr != nil {
		log.Error("ignoring stored activities without a backup", "backup_error", berr)
	} else {
		log.Warn("ignoring stored activities", "backup", backup)
	}
	return []activity.Activity{}
}

func backupKey(i int) string {
	if i == 0 {
		return BackupKey
	}
	return fmt.Sprintf("%s.%d", BackupKey, i)
}

// Backup stores raw under the first free backup key and returns that key. A
// slot already holding raw is reused, so repeated loads of the same broken
// value keep one copy.
func Backup(ctx context.Context, s storage.Store, raw string) (string, error) {
	for i := 0; i < maxBackups; i++ {
		key := backupKey(i)
		existing, err := s.Get(ctx, key)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			if err := s.Set(ctx, key, raw); err != nil {
				return "", fmt.Errorf("write backup %q: %w", key, err)
			}
			return key, nil
		case err != nil:
			return "", fmt.Errorf("read backup %q: %w", key, err)
		case existing == raw:
			return key, nil
		}
	}
	return "", fmt.Errorf("all %d backup keys are in use", maxBackups)
}

// Backups lists the backup keys in the order they were written.
func Backups(ctx context.Context, s storage.Store) ([]string, error) {
	var keys []string
	for i := 0; i < maxBackups; i++ {
		key := backupKey(i)
		_, err := s.Get(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			break
		}
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Write encodes list, seals it when configured and stores it under Key.
func Write(ctx context.Context, s storage.Store, list []activity.Activity, opts Options) error {
	value, err := Encode(list)
	if err != nil {
		return fmt.Errorf("encode activities: %w", err)
	}
	if opts.Encryptor != nil {
		if value, err = opts.Encryptor.Seal(value); err != nil {
			return fmt.Errorf("seal activities: %w", err)
		}
	}
	return s.Set(ctx, Key, value)
}

// Mirror returns a subscriber that writes the list whenever a transition
// changed it. Write errors are logged and dropped.
func Mirror(s storage.Store, opts Options) app.Subscriber {
	return func(prev, next activity.State) {
		if slices.Equal(prev.Activities, next.Activities) {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := Write(ctx, s, next.Activities, opts); err != nil {
			opts.logger().Warn("persist activities", "key", Key, "error", err)
		}
	}
}
