// Package timex implements UTC conversion and week-relative time utilities for
// the foundation library.
//
// Package: timex
// Title: Time Conversion Utilities
// Description: This package provides timezone-aware conversion helpers (UTC
//              anchoring, microsecond-preserving Unix timestamp conversion) and
//              week-relative second offsets used for weekly-recurring schedule
//              arithmetic.
// Author: mt-labs
// Version: v0.1.1
// Created: 2025-09-18
// Modified: 2025-10-02
//
// Change History:
// - 2025-09-18 v0.1.0: Initial implementation with UTC and week-second helpers
// - 2025-10-02 v0.1.1: Added WeekSeconds text/YAML/TOML forms for schedule configs
//
// Package Overview:
//
// # UTC Anchoring
//
// The process-wide UTC location is resolved exactly once through a
// lang.Singleton holder and reused for every conversion:
//
//	now := timex.UTCNow()
//	loc := timex.UTC()
//
// # Unix Timestamp Conversion
//
// FromUTCTimestamp and ToUTCTimestamp convert between time.Time values and
// fractional Unix timestamps while preserving microsecond precision:
//
//	stamp := timex.ToUTCTimestamp(t)
//	back := timex.FromUTCTimestamp(stamp) // equals t to the microsecond
//
// # Week-Relative Offsets
//
// A WeekSeconds value counts seconds elapsed since the most recent Monday
// 00:00 and always lies in [0, 604800). It is the unit used for
// weekly-recurring schedules:
//
//	ws, _ := timex.MakeWeekSeconds(0, 9, 30, 0) // Monday 09:30
//	at := timex.WeekSecondsToTime(ws)           // Monday 09:30 of this week
//
// WeekSeconds values also carry a text form ("mon 09:30:00") with YAML and
// TOML support, so weekly schedules can live in configuration files.
//
// # Error Handling
//
// Conversions on valid time.Time values cannot fail and return no error.
// Constructors and parsers validate their inputs and return plain wrapped
// errors; there are no custom error types.
//
// # Thread Safety
//
// All functions are safe for concurrent use. The only shared state is the
// UTC location slot, which serializes its one-time initialization.
package timex
