package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.lp")
	if err := os.WriteFile(path, []byte("edge(a, b).\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fired := make(chan struct{}, 4)
	w := New(path, zap.NewNop(), func() { fired <- struct{}{} }).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("edge(a, b).\nedge(b, c).\n"), 0644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil error on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.lp")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var calls atomic.Int32
	w := New(path, zap.NewNop(), func() { calls.Add(1) }).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Watch(ctx)

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.lp"), []byte("x"), 0644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	time.Sleep(200 * time.Millisecond)

	if n := calls.Load(); n != 0 {
		t.Errorf("expected no notifications, got %d", n)
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "edges.lp"), zap.NewNop(), func() {})
	if err := w.Watch(context.Background()); err == nil {
		t.Error("expected error for missing directory")
	}
}
