// Package lang implements language-level utility types for the foundation library.
//
// Package: lang
// Title: Language Utilities for Go
// Description: This package provides small, self-contained language utilities that
//              fill gaps left by the standard library: a sentinel value that is
//              distinguishable from nil and false, an explicit singleton holder,
//              and a class-level computed property wrapper.
// Author: mt-labs
// Version: v0.1.1
// Created: 2025-09-14
// Modified: 2025-10-02
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation with Unset, Singleton and ClassProperty
// - 2025-10-02 v0.1.1: Added JSON/YAML marshaling support for the Unset sentinel
//
// Package Overview:
//
// # The Unset Sentinel
//
// Unset is a process-wide marker used to signal "no value supplied" in places
// where nil, false, zero or an empty string are all legitimate caller inputs:
//
//	func Lookup(key string, fallback any) any {
//		if v, ok := cache[key]; ok {
//			return v
//		}
//		if lang.IsUnset(fallback) {
//			return nil // caller supplied nothing at all
//		}
//		return fallback
//	}
//
// The sentinel is deliberately loose under Equal: it compares equal to itself
// and to every false-y value, and unequal to everything truthy. Identity checks
// use IsUnset, never Equal.
//
// # Singleton Holder
//
// Singleton is an explicit lazily-initialized slot that constructs a value on
// the first Get and returns the cached value to every later caller:
//
//	var pool lang.Singleton[*Pool]
//
//	p, err := pool.Get(func() (*Pool, error) { return NewPool(size) })
//
// Later Get calls ignore their build function entirely, including any
// side effects it would have had.
//
// # Class-Level Properties
//
// ClassProperty exposes a computed attribute whose receiver is shared
// class-level state rather than an individual instance. The compute function
// runs on every read; nothing is cached.
//
// # Thread Safety
//
// Unset and ClassProperty are immutable and safe for concurrent use. Singleton
// serializes construction internally and guarantees at most one successful
// build per holder.
package lang
