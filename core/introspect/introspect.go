// File: introspect.go
// Title: Caller Name Resolution
// Description: Implements qualified caller-name resolution from captured program
//              counters, including receiver detection, generic-shape stripping
//              and the fallback ordering for unresolvable frames.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation

package introspect

import (
	"runtime"
	"strings"
)

// unknownName is returned when a frame cannot be resolved at all.
const unknownName = "unknown"

// CallerName returns the qualified name of the function that is skip frames
// above the caller. skip 0 names the immediate caller of CallerName, skip 1
// its caller, and so on.
//
// The result is package.Type.Method for methods, package.Function for plain
// functions, the bare package path for package initialization frames, and
// "unknown" when the frame cannot be resolved. CallerName never fails.
func CallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return unknownName
	}
	return FuncName(pc)
}

// FuncName returns the qualified name for an already-captured program counter.
// The caller owns the pc and need not retain it afterwards; nothing is stored.
func FuncName(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return unknownName
	}
	return normalize(fn.Name())
}

// ShortName trims the leading import path directories from a qualified name,
// leaving the final package element: "a/b/pkg.Type.Method" -> "pkg.Type.Method".
func ShortName(qualified string) string {
	if idx := strings.LastIndex(qualified, "/"); idx != -1 {
		return qualified[idx+1:]
	}
	return qualified
}

// normalize rewrites a raw runtime symbol name into the package.Type.Method
// form. Raw names look like:
//
//	path/to/pkg.Function
//	path/to/pkg.(*Receiver).Method
//	path/to/pkg.Receiver.Method
//	path/to/pkg.Function.func1
//	path/to/pkg.init.0
func normalize(raw string) string {
	if raw == "" {
		return unknownName
	}

	// The package path runs up to the first dot after the last slash.
	pkgEnd := strings.IndexByte(raw, '.')
	if slash := strings.LastIndexByte(raw, '/'); slash != -1 {
		rel := strings.IndexByte(raw[slash+1:], '.')
		if rel == -1 {
			// A bare path with no function part; nothing better to offer.
			return raw
		}
		pkgEnd = slash + 1 + rel
	}
	if pkgEnd == -1 {
		// No package could be determined; return the name alone.
		return raw
	}

	pkg := raw[:pkgEnd]
	name := raw[pkgEnd+1:]
	if name == "" {
		return pkg
	}

	// Package initialization frames answer with the package alone, the same
	// way a top-level execution context has no function name of its own.
	if name == "init" || strings.HasPrefix(name, "init.") {
		return pkg
	}

	// Drop pointer-receiver decoration and instantiated generic shapes:
	// (*Receiver).Method -> Receiver.Method, Type[...].Get -> Type.Get.
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")
	name = strings.ReplaceAll(name, "(", "")
	name = strings.ReplaceAll(name, "[...]", "")

	return pkg + "." + name
}
