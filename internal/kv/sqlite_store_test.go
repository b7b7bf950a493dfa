package kv

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_SetGetOverwrite(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))
	ctx := context.Background()

	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.Set(ctx, "habits", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, "habits", []byte(`["x"]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "habits")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if string(value) != `["x"]` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestSQLiteStore_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")
	ctx := context.Background()

	store := NewSQLiteStore(path)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set(ctx, "user_profile", []byte(`{"xp":50}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "user_profile")
	if err != nil || !ok {
		t.Fatalf("expected persisted value, got ok=%v err=%v", ok, err)
	}
	if string(value) != `{"xp":50}` {
		t.Errorf("unexpected value: %s", value)
	}
}

func TestSQLiteStore_DeleteAndClear(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))
	ctx := context.Background()

	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	_ = store.Set(ctx, "a", []byte(`1`))
	_ = store.Set(ctx, "b", []byte(`2`))

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "a"); ok {
		t.Error("deleted key should be absent")
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "b"); ok {
		t.Error("cleared store should be empty")
	}
}

func TestSQLiteStore_LoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "habitkit.db"))

	if err := store.Load(context.Background()); err == nil {
		t.Error("Load before Init should fail")
	}
}
