// File: singleton.go
// Title: Singleton Holder
// Description: Implements an explicit lazily-initialized holder that constructs a
//              value once on first request and returns the cached value to every
//              later caller, ignoring the later callers' build functions.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation with retry-on-failure semantics

package lang

import (
	"fmt"
	"sync"
)

// Singleton is a lazily-initialized slot holding at most one value of type T.
// The zero value is an empty, ready-to-use holder.
//
// The first successful Get fills the slot; every later Get returns the cached
// value and discards its build function without calling it. This means
// arguments captured by later build closures have no observable effect, and
// their side effects never occur. Construction is serialized: concurrent
// callers observe exactly one successful build per holder.
type Singleton[T any] struct {
	mu    sync.Mutex
	value T
	ready bool
}

// Get returns the held value, constructing it with build on first use.
//
// If the slot is empty, build is invoked while the holder's lock is held. A
// build error propagates unchanged to the caller and leaves the slot empty, so
// a later Get may retry construction. Once a build succeeds, its result is
// cached for the lifetime of the holder and all subsequent build functions are
// ignored.
func (s *Singleton[T]) Get(build func() (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.value, nil
	}

	var zero T
	if build == nil {
		return zero, fmt.Errorf("singleton: build function must not be nil")
	}

	v, err := build()
	if err != nil {
		return zero, err
	}

	s.value = v
	s.ready = true
	return v, nil
}

// Ready reports whether the slot has been filled by a successful build.
func (s *Singleton[T]) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Peek returns the held value without constructing it. The second return
// value reports whether the slot was filled.
func (s *Singleton[T]) Peek() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.ready
}
