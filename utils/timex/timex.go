// File: timex.go
// Title: UTC and Week-Relative Time Utilities
// Description: Implements UTC anchoring via the singleton holder, microsecond-
//              preserving Unix timestamp conversion, day trimming and the
//              week-relative second offset computations.
// Author: mt-labs
// Version: v0.1.1
// Created: 2025-09-18
// Modified: 2025-10-02
//
// Change History:
// - 2025-09-18 v0.1.0: Initial implementation
// - 2025-10-02 v0.1.1: MakeWeekSeconds range validation tightened

package timex

import (
	"fmt"
	"math"
	"time"

	"github.com/mt-labs/foundation/core/lang"
)

// Seconds per calendar unit used by week-offset arithmetic.
const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
	SecondsPerWeek   = 7 * SecondsPerDay
)

// utcLocation holds the process-wide UTC location. The slot is resolved once
// and shared by every conversion in this package.
var utcLocation lang.Singleton[*time.Location]

// UTC returns the process-wide UTC location. The location is loaded on first
// use through the singleton holder and reused afterwards.
func UTC() *time.Location {
	loc, err := utcLocation.Get(func() (*time.Location, error) {
		return time.LoadLocation("UTC")
	})
	if err != nil {
		// The platform ships UTC unconditionally; this branch exists so a
		// failed lookup still leaves callers with a usable location.
		return time.UTC
	}
	return loc
}

// UTCNow returns the current time anchored to the UTC location.
func UTCNow() time.Time {
	return time.Now().In(UTC())
}

// ToUTCTimestamp converts t to a fractional Unix timestamp, preserving the
// microsecond portion of the value. The zone of t is honored; a value in any
// location converts to the same instant.
func ToUTCTimestamp(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond()/1000)/1e6
}

// FromUTCTimestamp converts a fractional Unix timestamp to a UTC-anchored
// time, rounding the fraction to the nearest microsecond.
//
// Unlike calendar-function based conversions on some platforms, the Unix
// epoch arithmetic used here is independent of the local zone, so no
// daylight-saving correction is ever required and round trips through
// ToUTCTimestamp are exact to the microsecond.
func FromUTCTimestamp(stamp float64) time.Time {
	sec := math.Floor(stamp)
	micro := int64(math.Round((stamp - sec) * 1e6))
	if micro >= 1e6 {
		sec++
		micro -= 1e6
	}
	return time.Unix(int64(sec), micro*1000).In(UTC())
}

// AsUTC converts any time to its UTC representation by round-tripping through
// the fractional timestamp form. Sub-microsecond precision is truncated.
func AsUTC(t time.Time) time.Time {
	return FromUTCTimestamp(ToUTCTimestamp(t))
}

// IsDST reports whether daylight saving time is in effect in the local zone
// at the instant t.
func IsDST(t time.Time) bool {
	return t.In(time.Local).IsDST()
}

// TrimTime trims the time-of-day portion off t, returning the same date at
// 00:00:00 in the same location.
func TrimTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayIndex returns the zero-based day of week with Monday as day 0.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart returns the start of the week containing t: the most recent
// Monday at 00:00:00, in t's location.
func WeekStart(t time.Time) time.Time {
	return TrimTime(t.AddDate(0, 0, -mondayIndex(t)))
}

// WeekSecondsAt returns t converted to seconds since 00:00 Monday of its
// week. The computation is calendar-based on t's wall clock, so the result
// always lies in [0, SecondsPerWeek).
func WeekSecondsAt(t time.Time) WeekSeconds {
	return WeekSeconds(mondayIndex(t)*SecondsPerDay +
		t.Hour()*SecondsPerHour +
		t.Minute()*SecondsPerMinute +
		t.Second())
}

// WeekSecondsToTime returns the time that is ws seconds from the start of the
// current week, in the local zone.
func WeekSecondsToTime(ws WeekSeconds) time.Time {
	return WeekStart(time.Now()).Add(time.Duration(ws) * time.Second)
}

// MakeWeekSeconds builds a week offset from a zero-indexed day of the week
// (Monday is day 0), a 24-hour clock hour, a minute and a second.
func MakeWeekSeconds(day, hour, minute, second int) (WeekSeconds, error) {
	if day < 0 || day > 6 {
		return 0, fmt.Errorf("timex: day %d out of range [0,6]", day)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("timex: hour %d out of range [0,23]", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("timex: minute %d out of range [0,59]", minute)
	}
	if second < 0 || second > 59 {
		return 0, fmt.Errorf("timex: second %d out of range [0,59]", second)
	}
	return WeekSeconds(day*SecondsPerDay + hour*SecondsPerHour + minute*SecondsPerMinute + second), nil
}
