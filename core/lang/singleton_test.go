// File: singleton_test.go
// Title: Singleton Holder Tests
// Description: Test suite for the Singleton holder covering construct-once caching,
//              discarded later arguments, retry after failed construction and
//              concurrent access.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial test implementation

package lang

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type widget struct {
	size int
}

func TestSingletonConstructOnce(t *testing.T) {
	var slot Singleton[*widget]
	builds := 0

	first, err := slot.Get(func() (*widget, error) {
		builds++
		return &widget{size: 10}, nil
	})
	if err != nil {
		t.Fatalf("first Get unexpected error: %v", err)
	}
	if first.size != 10 {
		t.Errorf("first.size = %d, want 10", first.size)
	}

	// The second build function must be discarded without running, so its
	// different argument has no observable effect.
	second, err := slot.Get(func() (*widget, error) {
		builds++
		return &widget{size: 99}, nil
	})
	if err != nil {
		t.Fatalf("second Get unexpected error: %v", err)
	}

	if first != second {
		t.Error("Get returned distinct instances, want identical")
	}
	if second.size != 10 {
		t.Errorf("second.size = %d, want 10 (later arguments must be ignored)", second.size)
	}
	if builds != 1 {
		t.Errorf("build function ran %d times, want 1", builds)
	}
}

func TestSingletonRetryAfterFailure(t *testing.T) {
	var slot Singleton[*widget]
	boom := errors.New("construction failed")

	if _, err := slot.Get(func() (*widget, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("failed Get error = %v, want %v", err, boom)
	}
	if slot.Ready() {
		t.Error("Ready() = true after failed build, want false")
	}

	// The slot stayed empty, so a later call may retry construction.
	w, err := slot.Get(func() (*widget, error) { return &widget{size: 3}, nil })
	if err != nil {
		t.Fatalf("retry Get unexpected error: %v", err)
	}
	if w.size != 3 {
		t.Errorf("w.size = %d, want 3", w.size)
	}
	if !slot.Ready() {
		t.Error("Ready() = false after successful build, want true")
	}
}

func TestSingletonNilBuild(t *testing.T) {
	var slot Singleton[int]

	if _, err := slot.Get(nil); err == nil {
		t.Error("Get(nil) on empty slot expected error, got nil")
	}

	if _, err := slot.Get(func() (int, error) { return 42, nil }); err != nil {
		t.Fatalf("Get unexpected error: %v", err)
	}

	// Once filled, a nil build function is discarded like any other.
	v, err := slot.Get(nil)
	if err != nil {
		t.Fatalf("Get(nil) on filled slot unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("Get(nil) = %d, want 42", v)
	}
}

func TestSingletonPeek(t *testing.T) {
	var slot Singleton[string]

	if _, ok := slot.Peek(); ok {
		t.Error("Peek() on empty slot reported a value")
	}

	if _, err := slot.Get(func() (string, error) { return "ready", nil }); err != nil {
		t.Fatalf("Get unexpected error: %v", err)
	}

	v, ok := slot.Peek()
	if !ok || v != "ready" {
		t.Errorf("Peek() = (%q, %v), want (%q, true)", v, ok, "ready")
	}
}

func TestSingletonConcurrent(t *testing.T) {
	var slot Singleton[*widget]
	var builds atomic.Int32
	var wg sync.WaitGroup

	results := make([]*widget, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := slot.Get(func() (*widget, error) {
				builds.Add(1)
				return &widget{size: i}, nil
			})
			if err != nil {
				t.Errorf("goroutine %d Get unexpected error: %v", i, err)
				return
			}
			results[i] = w
		}(i)
	}
	wg.Wait()

	if got := builds.Load(); got != 1 {
		t.Errorf("build function ran %d times under contention, want exactly 1", got)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Errorf("goroutine %d observed a different instance", i)
		}
	}
}
