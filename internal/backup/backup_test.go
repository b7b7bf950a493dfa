package backup

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ewhitmore/habitkit/internal/constants"
	"github.com/ewhitmore/habitkit/internal/errs"
	"github.com/ewhitmore/habitkit/internal/habit"
	"github.com/ewhitmore/habitkit/internal/kv"
	"github.com/ewhitmore/habitkit/internal/models"
	"github.com/ewhitmore/habitkit/internal/progress"
)

type fixture struct {
	store      kv.Store
	registry   *habit.Registry
	engine     *progress.Engine
	serializer *Serializer
}

func setup(t *testing.T) *fixture {
	t.Helper()

	store := kv.NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	ctx := context.Background()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	registry := habit.New(store)
	if err := registry.Load(ctx); err != nil {
		t.Fatalf("failed to load registry: %v", err)
	}
	engine := progress.New(store)
	if err := engine.Load(ctx); err != nil {
		t.Fatalf("failed to load engine: %v", err)
	}

	return &fixture{
		store:      store,
		registry:   registry,
		engine:     engine,
		serializer: NewSerializer(registry, engine, store),
	}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	h, err := f.registry.Create(ctx, models.CreateHabitInput{
		Name:      "Stretch",
		Trigger:   "wake up",
		Action:    "stretch for two minutes",
		Color:     "orange",
		Frequency: []models.Weekday{models.Monday, models.Tuesday},
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	if _, _, err := f.registry.ToggleCompletion(ctx, h.ID, time.Now()); err != nil {
		t.Fatalf("seed toggle failed: %v", err)
	}
	if err := f.engine.AddXP(ctx, 1250); err != nil {
		t.Fatalf("seed xp failed: %v", err)
	}
}

// habitsJSON normalizes for comparison; time values round-trip through JSON.
func habitsJSON(t *testing.T, habits []models.Habit) string {
	t.Helper()
	data, err := json.Marshal(habits)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return string(data)
}

func TestExport_Fields(t *testing.T) {
	f := setup(t)
	f.seed(t)

	snap := f.serializer.Export(context.Background())
	if snap.AppTag != constants.AppTag {
		t.Errorf("unexpected app tag: %s", snap.AppTag)
	}
	if snap.Version != constants.SnapshotVersion {
		t.Errorf("unexpected version: %s", snap.Version)
	}
	if _, err := time.Parse(time.RFC3339, snap.Timestamp); err != nil {
		t.Errorf("timestamp is not RFC3339: %s", snap.Timestamp)
	}
	if len(snap.Habits) != 1 {
		t.Errorf("expected 1 habit in snapshot, got %d", len(snap.Habits))
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := setup(t)
	src.seed(t)
	ctx := context.Background()

	snap := src.serializer.Export(ctx)
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	dst := setup(t)
	if err := dst.serializer.Import(ctx, data); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if got, want := habitsJSON(t, dst.registry.All()), habitsJSON(t, snap.Habits); got != want {
		t.Errorf("habits did not round-trip\n got: %s\nwant: %s", got, want)
	}

	p := dst.engine.Profile()
	if p.XP != 1250 || p.Level != 2 {
		t.Errorf("profile did not round-trip: %+v", p)
	}
	if p.TotalHabitsCompleted != snap.Profile.TotalHabitsCompleted {
		t.Errorf("completion counter did not round-trip")
	}
}

func TestImport_ForeignAppTag(t *testing.T) {
	f := setup(t)
	f.seed(t)
	ctx := context.Background()

	before := habitsJSON(t, f.registry.All())
	beforeProfile := f.engine.Profile()

	doc := []byte(`{"habits": [], "profile": {}, "timestamp": "2025-06-10T00:00:00Z", "version": "1.0.0", "appTag": "SomeOtherApp"}`)
	err := f.serializer.Import(ctx, doc)

	var ferr *errs.BackupFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected BackupFormatError, got %v", err)
	}
	if ferr.Reason != "foreign file" {
		t.Errorf("expected reason %q, got %q", "foreign file", ferr.Reason)
	}

	// Existing state must be untouched.
	if habitsJSON(t, f.registry.All()) != before {
		t.Error("habits were modified by a rejected import")
	}
	if f.engine.Profile() != beforeProfile {
		t.Error("profile was modified by a rejected import")
	}
}

func TestImport_MissingVersion(t *testing.T) {
	f := setup(t)

	doc := []byte(`{"habits": [], "profile": {}, "appTag": "HabitTracker"}`)
	err := f.serializer.Import(context.Background(), doc)

	var ferr *errs.BackupFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected BackupFormatError, got %v", err)
	}
	if ferr.Reason != "incompatible" {
		t.Errorf("expected reason %q, got %q", "incompatible", ferr.Reason)
	}
}

func TestImport_Malformed(t *testing.T) {
	f := setup(t)

	err := f.serializer.Import(context.Background(), []byte("not json at all"))

	var ferr *errs.BackupFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected BackupFormatError, got %v", err)
	}
	if ferr.Reason != "malformed" {
		t.Errorf("expected reason %q, got %q", "malformed", ferr.Reason)
	}
}

func TestImport_MalformedProfile(t *testing.T) {
	f := setup(t)
	f.seed(t)
	ctx := context.Background()

	before := habitsJSON(t, f.registry.All())
	beforeProfile := f.engine.Profile()

	// Passes the outer parse, appTag, and version checks but carries an
	// unusable profile payload. The valid habits array must not be
	// restored either.
	doc := []byte(`{
	  "habits": [{"id": "h1", "name": "Walk", "trigger": "lunch", "action": "walk", "color": "blue", "frequency": ["Mon"], "created_at": "2025-01-01T00:00:00Z", "is_starred": false, "completion_history": []}],
	  "profile": "garbage",
	  "timestamp": "2025-06-10T00:00:00Z",
	  "version": "1.0.0",
	  "appTag": "HabitTracker"
	}`)
	err := f.serializer.Import(ctx, doc)

	var ferr *errs.BackupFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected BackupFormatError, got %v", err)
	}
	if ferr.Reason != "malformed" {
		t.Errorf("expected reason %q, got %q", "malformed", ferr.Reason)
	}

	if habitsJSON(t, f.registry.All()) != before {
		t.Error("habits were modified by a rejected import")
	}
	if f.engine.Profile() != beforeProfile {
		t.Error("profile was modified by a rejected import")
	}
}

func TestImport_MalformedHabits(t *testing.T) {
	f := setup(t)
	f.seed(t)
	ctx := context.Background()

	beforeProfile := f.engine.Profile()

	doc := []byte(`{"habits": "garbage", "profile": {"name": "X"}, "timestamp": "2025-06-10T00:00:00Z", "version": "1.0.0", "appTag": "HabitTracker"}`)
	err := f.serializer.Import(ctx, doc)

	var ferr *errs.BackupFormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected BackupFormatError, got %v", err)
	}
	if f.engine.Profile() != beforeProfile {
		t.Error("profile was modified by a rejected import")
	}
}

func TestImport_HabitsOnly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	if err := f.engine.AddXP(ctx, 500); err != nil {
		t.Fatalf("AddXP failed: %v", err)
	}

	doc := []byte(`{
	  "habits": [{"id": "h1", "name": "Walk", "trigger": "lunch", "action": "walk", "color": "blue", "frequency": ["Mon"], "created_at": "2025-01-01T00:00:00Z", "is_starred": false, "completion_history": []}],
	  "timestamp": "2025-06-10T00:00:00Z",
	  "version": "1.0.0",
	  "appTag": "HabitTracker"
	}`)
	if err := f.serializer.Import(ctx, doc); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if len(f.registry.All()) != 1 {
		t.Error("habits were not restored")
	}
	// The document carried no profile; the existing one stays.
	if f.engine.Profile().XP != 500 {
		t.Error("profile should be untouched when absent from the document")
	}
}

func TestImport_StampsRestoreTime(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	snap := f.serializer.Export(ctx)
	data, _ := json.Marshal(snap)
	if err := f.serializer.Import(ctx, data); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	info, err := f.serializer.GetInfo(ctx)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info.LastRestoreTime == "" {
		t.Error("expected last restore time to be stamped")
	}
}

func TestFormatBackupDate(t *testing.T) {
	if got := FormatBackupDate(""); got != "Never" {
		t.Errorf("expected Never, got %s", got)
	}
	if got := FormatBackupDate("2025-06-10T14:30:00Z"); got != "Jun 10, 2025 14:30" {
		t.Errorf("unexpected formatted date: %s", got)
	}
}

func TestManager_CreateAndList(t *testing.T) {
	f := setup(t)
	f.seed(t)
	ctx := context.Background()

	mgr := NewManager(f.serializer, f.store.Path())

	path, err := mgr.CreateBackup(ctx)
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(path) != mgr.GetBackupDir() {
		t.Errorf("backup not placed in backup dir: %s", path)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}

	info, err := f.serializer.GetInfo(ctx)
	if err != nil {
		t.Fatalf("GetInfo failed: %v", err)
	}
	if info.LastBackupTime == "" {
		t.Error("expected last backup time to be stamped")
	}
}

func TestManager_Rotation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	mgr := NewManager(f.serializer, f.store.Path())

	for i := 0; i < MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(ctx); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("expected at most %d backups after rotation, got %d", MaxBackups, len(backups))
	}
}

func TestManager_Restore(t *testing.T) {
	f := setup(t)
	f.seed(t)
	ctx := context.Background()

	mgr := NewManager(f.serializer, f.store.Path())
	path, err := mgr.CreateBackup(ctx)
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Wipe the habits, then restore.
	for _, h := range f.registry.All() {
		if err := f.registry.Delete(ctx, h.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
	}
	if len(f.registry.All()) != 0 {
		t.Fatal("expected empty registry before restore")
	}

	if err := mgr.RestoreBackup(ctx, path); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if len(f.registry.All()) != 1 {
		t.Error("habits were not restored from backup")
	}
}
