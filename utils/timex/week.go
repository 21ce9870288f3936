// File: week.go
// Title: WeekSeconds Type
// Description: Implements the WeekSeconds week-relative offset type with its
//              day/clock accessors, canonical text form and YAML/TOML decoding
//              for weekly schedule configuration.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-10-02
// Modified: 2025-10-02
//
// Change History:
// - 2025-10-02 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// WeekSeconds counts seconds elapsed since the most recent Monday 00:00.
// Valid values lie in [0, SecondsPerWeek).
type WeekSeconds int

// dayNames holds the canonical short day names, Monday first.
var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// dayIndex maps accepted day spellings (lowercase) to the zero-based
// Monday-first day index.
var dayIndex = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tues": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thur": 3, "thurs": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// Valid reports whether ws lies in [0, SecondsPerWeek).
func (ws WeekSeconds) Valid() bool {
	return ws >= 0 && ws < SecondsPerWeek
}

// Day returns the zero-based day of the week, Monday as day 0.
func (ws WeekSeconds) Day() int {
	return int(ws) / SecondsPerDay
}

// Weekday returns the offset's day as a time.Weekday.
func (ws WeekSeconds) Weekday() time.Weekday {
	return time.Weekday((ws.Day() + 1) % 7)
}

// Clock returns the hour, minute and second within the offset's day.
func (ws WeekSeconds) Clock() (hour, minute, second int) {
	rem := int(ws) % SecondsPerDay
	return rem / SecondsPerHour, (rem % SecondsPerHour) / SecondsPerMinute, rem % SecondsPerMinute
}

// String returns the canonical text form, e.g. "Mon 09:30:00". Out-of-range
// values render as WeekSeconds(n) instead.
func (ws WeekSeconds) String() string {
	if !ws.Valid() {
		return fmt.Sprintf("WeekSeconds(%d)", int(ws))
	}
	h, m, s := ws.Clock()
	return fmt.Sprintf("%s %02d:%02d:%02d", dayNames[ws.Day()], h, m, s)
}

// ParseWeekSeconds parses a week offset from its text forms: a bare integer
// second count ("34200"), or a day name with a clock ("mon 09:30:00",
// "Monday 09:30"). Day names are case-insensitive; the seconds component of
// the clock is optional.
func ParseWeekSeconds(value string) (WeekSeconds, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("timex: empty week offset")
	}

	if n, err := strconv.Atoi(s); err == nil {
		ws := WeekSeconds(n)
		if !ws.Valid() {
			return 0, fmt.Errorf("timex: week offset %d out of range [0,%d)", n, SecondsPerWeek)
		}
		return ws, nil
	}

	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("timex: invalid week offset %q, want \"<day> <hh:mm[:ss]>\"", value)
	}

	day, ok := dayIndex[fields[0]]
	if !ok {
		return 0, fmt.Errorf("timex: unknown day name %q in week offset %q", fields[0], value)
	}

	hour, minute, second, err := parseClock(fields[1])
	if err != nil {
		return 0, fmt.Errorf("timex: invalid clock in week offset %q: %w", value, err)
	}

	return MakeWeekSeconds(day, hour, minute, second)
}

// parseClock parses "hh:mm" or "hh:mm:ss" into its components.
func parseClock(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want hh:mm or hh:mm:ss, got %q", s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hour %q: %w", parts[0], err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid minute %q: %w", parts[1], err)
	}
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid second %q: %w", parts[2], err)
		}
	}
	return hour, minute, second, nil
}

// MarshalText encodes ws in its canonical text form.
func (ws WeekSeconds) MarshalText() ([]byte, error) {
	if !ws.Valid() {
		return nil, fmt.Errorf("timex: week offset %d out of range [0,%d)", int(ws), SecondsPerWeek)
	}
	return []byte(ws.String()), nil
}

// UnmarshalText decodes ws from any accepted text form.
func (ws *WeekSeconds) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekSeconds(string(text))
	if err != nil {
		return err
	}
	*ws = parsed
	return nil
}

// MarshalYAML encodes ws as its canonical text form.
func (ws WeekSeconds) MarshalYAML() (interface{}, error) {
	if !ws.Valid() {
		return nil, fmt.Errorf("timex: week offset %d out of range [0,%d)", int(ws), SecondsPerWeek)
	}
	return ws.String(), nil
}

// UnmarshalYAML decodes ws from a YAML scalar, accepting both the integer
// second count and the day-with-clock text form.
func (ws *WeekSeconds) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("timex: line %d: week offset must be a scalar", node.Line)
	}

	parsed, err := ParseWeekSeconds(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*ws = parsed
	return nil
}

// UnmarshalTOML decodes ws from a TOML integer or string value.
func (ws *WeekSeconds) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case int64:
		candidate := WeekSeconds(v)
		if !candidate.Valid() {
			return fmt.Errorf("timex: week offset %d out of range [0,%d)", v, SecondsPerWeek)
		}
		*ws = candidate
		return nil
	case string:
		parsed, err := ParseWeekSeconds(v)
		if err != nil {
			return err
		}
		*ws = parsed
		return nil
	default:
		return fmt.Errorf("timex: week offset must be an integer or string, got %T", value)
	}
}
