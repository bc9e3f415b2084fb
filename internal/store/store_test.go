package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *DesignStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "designs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AddAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "designs", map[string]any{
		"name":      "summer polo",
		"signature": "abc123",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if id == "" {
		t.Fatal("Add should return a generated id")
	}

	records, err := s.Get(ctx, "designs", 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("record count: got %d, want 1", len(records))
	}
	if records[0]["id"] != id {
		t.Errorf("id: got %v, want %s", records[0]["id"], id)
	}
	if records[0]["name"] != "summer polo" {
		t.Errorf("name: got %v, want summer polo", records[0]["name"])
	}
	if records[0]["signature"] != "abc123" {
		t.Errorf("signature: got %v, want abc123", records[0]["signature"])
	}
}

func TestStore_Update(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Add(ctx, "designs", map[string]any{"name": "draft"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, err := s.Update(ctx, "designs", id, map[string]any{"name": "final"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated {
		t.Fatal("Update should report true for an existing record")
	}

	records, err := s.Get(ctx, "designs", 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if records[0]["name"] != "final" {
		t.Errorf("name after update: got %v, want final", records[0]["name"])
	}
}

func TestStore_UpdateMissing(t *testing.T) {
	s := openTestStore(t)

	updated, err := s.Update(context.Background(), "designs", "no-such-id", map[string]any{"name": "x"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated {
		t.Error("Update should report false for a missing record")
	}
}

func TestStore_GetLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := s.Add(ctx, "designs", map[string]any{"n": float64(i)}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	records, err := s.Get(ctx, "designs", 3)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("record count: got %d, want 3", len(records))
	}
}

func TestStore_CollectionsAreIsolated(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Add(ctx, "designs", map[string]any{"kind": "design"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add(ctx, "annotations", map[string]any{"kind": "annotation"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	designs, err := s.Get(ctx, "designs", 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(designs) != 1 || designs[0]["kind"] != "design" {
		t.Errorf("designs collection: got %v", designs)
	}

	empty, err := s.Get(ctx, "nonexistent", 0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("unknown collection should be empty, got %v", empty)
	}
}
