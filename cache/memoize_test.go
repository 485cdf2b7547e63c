package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func newSquares(mgr *Manager) (*Memoized[int, int], *int) {
	calls := new(int)
	m := NewMemoized(mgr, 0,
		func(n int) Key { return NewKey("tools", "square", n) },
		func(_ context.Context, n int) (int, error) {
			*calls++
			return n * n, nil
		},
	)
	return m, calls
}

// TestMemoized_Load tests that the loader runs once per distinct argument.
func TestMemoized_Load(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()
	squares, calls := newSquares(mgr)

	for i := 0; i < 3; i++ {
		got, err := squares.Load(ctx, 7)
		if err != nil {
			t.Fatalf("Load() = %v", err)
		}
		if got != 49 {
			t.Errorf("Load(7) = %d, want 49", got)
		}
	}
	if *calls != 1 {
		t.Errorf("loader ran %d times for one argument, want 1", *calls)
	}

	if got, _ := squares.Load(ctx, 8); got != 64 {
		t.Errorf("Load(8) = %d, want 64", got)
	}
	if *calls != 2 {
		t.Errorf("loader ran %d times for two arguments, want 2", *calls)
	}
}

// TestMemoized_Invalidate tests that invalidation forces a reload.
func TestMemoized_Invalidate(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()
	squares, calls := newSquares(mgr)

	if _, err := squares.Load(ctx, 7); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	squares.Invalidate(ctx, 7)
	if _, err := squares.Load(ctx, 7); err != nil {
		t.Fatalf("Load() after Invalidate() = %v", err)
	}
	if *calls != 2 {
		t.Errorf("loader ran %d times across an invalidation, want 2", *calls)
	}
}

// TestMemoized_LoaderError tests error propagation.
func TestMemoized_LoaderError(t *testing.T) {
	mgr, _ := newTestManager(t)
	wantErr := errors.New("db down")

	m := NewMemoized(mgr, 0,
		func(slug string) Key { return NewKey("tools", "detail", slug) },
		func(context.Context, string) (tool, error) {
			return tool{}, wantErr
		},
	)

	_, err := m.Load(context.Background(), "jq")
	if !errors.Is(err, wantErr) {
		t.Errorf("Load() = %v, want %v", err, wantErr)
	}
}

// TestMemoized_KeyIsolation tests that distinct arguments never collide.
func TestMemoized_KeyIsolation(t *testing.T) {
	mgr, _ := newTestManager(t)
	ctx := context.Background()

	m := NewMemoized(mgr, 0,
		func(n int) Key { return NewKey("tools", "label", n) },
		func(_ context.Context, n int) (string, error) {
			return fmt.Sprintf("label-%d", n), nil
		},
	)

	a, _ := m.Load(ctx, 1)
	b, _ := m.Load(ctx, 2)
	if a == b {
		t.Errorf("distinct arguments produced the same value: %q", a)
	}
}
