// Package log configures structured logging for the foundation library.
//
// Package: log
// Title: Structured Logging
// Description: This package provides a small wrapper over zerolog that keeps
//              console output readable, JSON output structured, and annotates
//              entries with qualified caller names resolved through the
//              introspect package.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-20
// Modified: 2025-09-20
//
// Change History:
// - 2025-09-20 v0.1.0: Initial implementation
//
// Fields are closures applied to each event in order; later fields with the
// same key win. The zero Logger is a safe no-op, so library code can log
// unconditionally without nil checks:
//
//	logger := log.New(log.Config{Level: "debug", WithCaller: true})
//	logger.Info("schedule loaded", log.Int("entries", n), log.Dur("took", d))
//
// With WithCaller enabled, every entry carries a caller field of the form
// pkg.Type.Method, the name form produced by introspect.CallerName.
package log
