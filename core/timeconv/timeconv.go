// File: core/timeconv/timeconv.go
// Package timeconv implements pure time-unit conversions for the boundary.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// All functions are stateless and safe for unsynchronized concurrent use.
// Downscaling (nanos to coarser units) truncates toward zero; upscaling
// from floating-point input rounds half away from zero. Negative,
// non-finite, or overflowing input is a contract violation and panics.

package timeconv

import (
	"math"

	"github.com/momentics/corebridge/api"
)

// Nanosecond multiples per coarser unit.
const (
	NanosPerMicro uint64 = 1_000
	NanosPerMilli uint64 = 1_000_000
	NanosPerSec   uint64 = 1_000_000_000
)

// twoPow64 is the first float64 value outside the uint64 range.
const twoPow64 = 1 << 64

// scale validates v, multiplies by factor and rounds to the nearest integer.
func scale(v, factor float64) uint64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(api.NewError(api.ErrCodeNegativeTime, api.ErrNegativeTime.Error()).
			WithContext("value", v))
	}
	r := math.Round(v * factor)
	if r >= twoPow64 {
		panic(api.NewError(api.ErrCodeOverflow, api.ErrOverflow.Error()).
			WithContext("value", v))
	}
	return uint64(r)
}

// SecsToNanos converts fractional seconds to nanoseconds.
func SecsToNanos(secs float64) uint64 {
	return scale(secs, 1e9)
}

// SecsToMillis converts fractional seconds to milliseconds.
func SecsToMillis(secs float64) uint64 {
	return scale(secs, 1e3)
}

// FloatMillisToNanos converts fractional milliseconds to nanoseconds.
func FloatMillisToNanos(millis float64) uint64 {
	return scale(millis, 1e6)
}

// FloatMicrosToNanos converts fractional microseconds to nanoseconds.
func FloatMicrosToNanos(micros float64) uint64 {
	return scale(micros, 1e3)
}

// MillisToNanos converts whole milliseconds to nanoseconds exactly.
// Panics when the product would not fit in 64 bits.
func MillisToNanos(millis uint64) uint64 {
	if millis > math.MaxUint64/NanosPerMilli {
		panic(api.NewError(api.ErrCodeOverflow, api.ErrOverflow.Error()).
			WithContext("millis", millis))
	}
	return millis * NanosPerMilli
}

// MicrosToNanos converts whole microseconds to nanoseconds exactly.
// Panics when the product would not fit in 64 bits.
func MicrosToNanos(micros uint64) uint64 {
	if micros > math.MaxUint64/NanosPerMicro {
		panic(api.NewError(api.ErrCodeOverflow, api.ErrOverflow.Error()).
			WithContext("micros", micros))
	}
	return micros * NanosPerMicro
}

// NanosToSecs converts nanoseconds to fractional seconds.
func NanosToSecs(nanos uint64) float64 {
	return float64(nanos) / float64(NanosPerSec)
}

// NanosToMillis converts nanoseconds to milliseconds, truncating toward zero.
func NanosToMillis(nanos uint64) uint64 {
	return nanos / NanosPerMilli
}

// NanosToMicros converts nanoseconds to microseconds, truncating toward zero.
func NanosToMicros(nanos uint64) uint64 {
	return nanos / NanosPerMicro
}
