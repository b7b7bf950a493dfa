// Package backup captures and restores the full habit and profile state as a
// versioned snapshot document.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/errs"
	"github.com/ewhitmore/habitkit/internal/habit"
	"github.com/ewhitmore/habitkit/internal/kv"
	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/progress"
)

// Snapshot is the backup document schema. Field names are part of the wire
// contract and must not change.
type Snapshot struct {
	Habits    []models.Habit     `json:"habits"`
	Profile   models.UserProfile `json:"profile"`
	Timestamp string             `json:"timestamp"`
	Version   string             `json:"version"`
	AppTag    string             `json:"appTag"`
}

// document is the lenient form used during import so habits and profile
// presence can be checked independently.
type document struct {
	Habits  json.RawMessage `json:"habits"`
	Profile json.RawMessage `json:"profile"`
	Version string          `json:"version"`
	AppTag  string          `json:"appTag"`
}

// Serializer exports and restores the habit registry and progression engine
// state.
type Serializer struct {
	registry *habit.Registry
	engine   *progress.Engine
	store    kv.Store
}

func NewSerializer(registry *habit.Registry, engine *progress.Engine, store kv.Store) *Serializer {
	return &Serializer{
		registry: registry,
		engine:   engine,
		store:    store,
	}
}

// Export captures the current state into a snapshot. It never mutates domain
// state.
func (s *Serializer) Export(ctx context.Context) Snapshot {
	habits := s.registry.All()
	if habits == nil {
		habits = []models.Habit{}
	}
	return Snapshot{
		Habits:    habits,
		Profile:   s.engine.Profile(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   constants.SnapshotVersion,
		AppTag:    constants.AppTag,
	}
}

// ExportToFile writes a snapshot to path and stamps the last-backup time.
func (s *Serializer) ExportToFile(ctx context.Context, path string) error {
	snap := s.Export(ctx)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return s.stamp(ctx, constants.KeyLastBackupTime)
}

// Import validates a candidate snapshot document and, on success, replaces
// the habit collection and user profile with its contents verbatim. When the
// document carries only one of the two, the other is left untouched. Nothing
// is restored if validation fails.
func (s *Serializer) Import(ctx context.Context, data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errs.BackupFormatError{Reason: "malformed"}
	}

	if doc.AppTag != constants.AppTag {
		return &errs.BackupFormatError{Reason: "foreign file"}
	}

	if doc.Version == "" {
		return &errs.BackupFormatError{Reason: "incompatible"}
	}

	// Parse every present payload before touching domain state, so a
	// document with one malformed payload is rejected whole.
	var habits []models.Habit
	hasHabits := len(doc.Habits) > 0 && string(doc.Habits) != "null"
	if hasHabits {
		if err := json.Unmarshal(doc.Habits, &habits); err != nil {
			return &errs.BackupFormatError{Reason: "malformed"}
		}
	}

	var profile models.UserProfile
	hasProfile := len(doc.Profile) > 0 && string(doc.Profile) != "null"
	if hasProfile {
		if err := json.Unmarshal(doc.Profile, &profile); err != nil {
			return &errs.BackupFormatError{Reason: "malformed"}
		}
	}

	if hasHabits {
		if err := s.registry.Replace(ctx, habits); err != nil {
			return err
		}
	}
	if hasProfile {
		if err := s.engine.Replace(ctx, profile); err != nil {
			return err
		}
	}

	return s.stamp(ctx, constants.KeyLastRestoreTime)
}

// ImportFromFile reads and imports a snapshot file.
func (s *Serializer) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	return s.Import(ctx, data)
}

func (s *Serializer) stamp(ctx context.Context, key string) error {
	value, err := json.Marshal(time.Now().Format(time.RFC3339))
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, value)
}

// Info holds the display-only backup timestamps.
type Info struct {
	LastBackupTime  string
	LastRestoreTime string
}

// GetInfo reads the last backup and restore times. Empty strings mean never.
func (s *Serializer) GetInfo(ctx context.Context) (Info, error) {
	var info Info
	if data, ok, err := s.store.Get(ctx, constants.KeyLastBackupTime); err != nil {
		return info, err
	} else if ok {
		_ = json.Unmarshal(data, &info.LastBackupTime)
	}
	if data, ok, err := s.store.Get(ctx, constants.KeyLastRestoreTime); err != nil {
		return info, err
	} else if ok {
		_ = json.Unmarshal(data, &info.LastRestoreTime)
	}
	return info, nil
}

// FormatBackupDate renders an RFC3339 stamp for display, or "Never".
func FormatBackupDate(stamp string) string {
	if stamp == "" {
		return "Never"
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return stamp
	}
	return t.Format("Jan 2, 2006 15:04")
}
