package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *TagStore {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "tags.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestAddAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"backend", "frontend", "infra"} {
		if err := s.Add(ctx, name); err != nil {
			t.Fatalf("Add(%q) failed: %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 tags, got %d: %v", len(names), names)
	}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "backend"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Add(ctx, "backend"); err != nil {
		t.Fatalf("duplicate Add failed: %v", err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("expected 1 tag after duplicate add, got %d", len(names))
	}
}

func TestAddRejectsEmpty(t *testing.T) {
	s := openTestStore(t)
	if err := s.Add(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty tag name")
	}
}

func TestRemove(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Add(ctx, "backend"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Remove(ctx, "backend"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(ctx, "missing"); err != nil {
		t.Fatalf("Remove of missing tag failed: %v", err)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("expected no tags after remove, got %v", names)
	}
}
