// Package introspect implements best-effort caller identification for the
// foundation library.
//
// Package: introspect
// Title: Call-Frame Name Resolution
// Description: This package resolves active call frames into human-readable
//              qualified names of the form package.Type.Method, for use in
//              logging and debugging output. Resolution never fails; every
//              lookup problem degrades to a simpler name form.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-16
// Modified: 2025-09-16
//
// Change History:
// - 2025-09-16 v0.1.0: Initial implementation
//
// The resolver is a debug aid, not an identity mechanism: names are derived
// from runtime symbol information and follow a fixed fallback ordering.
// A frame with a receiver resolves to package.Type.Method, an ordinary
// function to package.Function, a package initialization frame to the bare
// package path, and an unresolvable program counter to "unknown".
package introspect
