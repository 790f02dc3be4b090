// File: core/timeconv/clock.go
// Package timeconv: wall-clock accessors.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The system clock is the one ambient dependency of this package. Repeated
// reads are non-decreasing only as far as the clock itself behaves; none of
// these accessors are suitable for interval measurement across clock
// adjustments.

package timeconv

// UnixSecs returns seconds since the Unix epoch as a float.
func UnixSecs() float64 {
	return float64(nowNanos()) / float64(NanosPerSec)
}

// UnixMillis returns whole milliseconds since the Unix epoch.
func UnixMillis() uint64 {
	return nowNanos() / NanosPerMilli
}

// UnixMicros returns whole microseconds since the Unix epoch.
func UnixMicros() uint64 {
	return nowNanos() / NanosPerMicro
}

// UnixNanos returns nanoseconds since the Unix epoch.
func UnixNanos() uint64 {
	return nowNanos()
}
