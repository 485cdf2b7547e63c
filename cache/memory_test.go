package cache

import (
	"context"
	"testing"
	"time"
)

// TestMemory_GetSet tests the basic round-trip.
func TestMemory_GetSet(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	if _, ok, err := mem.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = (%v, %v), want (false, nil)", ok, err)
	}

	if err := mem.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() = %v", err)
	}

	got, ok, err := mem.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = (%v, %v)", ok, err)
	}
	if string(got) != "v" {
		t.Errorf("Get() = %q, want %q", got, "v")
	}
}

// TestMemory_Expiry tests lazy expiration.
func TestMemory_Expiry(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	if err := mem.Set(ctx, "short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if err := mem.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set() = %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	if _, ok, _ := mem.Get(ctx, "short"); ok {
		t.Error("expired entry still readable")
	}
	if _, ok, _ := mem.Get(ctx, "forever"); !ok {
		t.Error("zero-TTL entry expired")
	}
}

// TestMemory_Delete tests idempotent removal.
func TestMemory_Delete(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_ = mem.Set(ctx, "k", []byte("v"), 0)
	if err := mem.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() = %v", err)
	}
	if _, ok, _ := mem.Get(ctx, "k"); ok {
		t.Error("deleted entry still readable")
	}
	if err := mem.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

// TestMemory_DeletePattern tests substring deletion.
func TestMemory_DeletePattern(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_ = mem.Set(ctx, "tools:by_category:cli", []byte("a"), 0)
	_ = mem.Set(ctx, "tools:by_category:web", []byte("b"), 0)
	_ = mem.Set(ctx, "tools:detail:jq", []byte("c"), 0)

	if err := mem.DeletePattern(ctx, "by_category"); err != nil {
		t.Fatalf("DeletePattern() = %v", err)
	}

	if mem.Len() != 1 {
		t.Errorf("Len() = %d, want 1", mem.Len())
	}
	if _, ok, _ := mem.Get(ctx, "tools:detail:jq"); !ok {
		t.Error("non-matching entry was deleted")
	}
}

// TestMemory_Overwrite tests that re-setting a key replaces the value.
func TestMemory_Overwrite(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	_ = mem.Set(ctx, "k", []byte("v1"), 0)
	_ = mem.Set(ctx, "k", []byte("v2"), 0)

	got, _, _ := mem.Get(ctx, "k")
	if string(got) != "v2" {
		t.Errorf("Get() = %q, want %q", got, "v2")
	}
	if mem.Len() != 1 {
		t.Errorf("Len() = %d, want 1", mem.Len())
	}
}
