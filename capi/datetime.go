// File: capi/datetime.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/momentics/corebridge/core/timeconv"

// Conversions taking a double round half away from zero after scaling;
// negative, non-finite or overflowing input aborts. Conversions to coarser
// integer units truncate toward zero.

// secs_to_nanos converts seconds to nanoseconds (ns).
//
//export secs_to_nanos
func secs_to_nanos(secs C.double) C.uint64_t {
	return C.uint64_t(timeconv.SecsToNanos(float64(secs)))
}

// secs_to_millis converts seconds to milliseconds (ms).
//
//export secs_to_millis
func secs_to_millis(secs C.double) C.uint64_t {
	return C.uint64_t(timeconv.SecsToMillis(float64(secs)))
}

// millis_to_nanos converts milliseconds (ms) to nanoseconds (ns).
//
//export millis_to_nanos
func millis_to_nanos(millis C.double) C.uint64_t {
	return C.uint64_t(timeconv.FloatMillisToNanos(float64(millis)))
}

// micros_to_nanos converts microseconds (us) to nanoseconds (ns).
//
//export micros_to_nanos
func micros_to_nanos(micros C.double) C.uint64_t {
	return C.uint64_t(timeconv.FloatMicrosToNanos(float64(micros)))
}

// nanos_to_secs converts nanoseconds (ns) to seconds.
//
//export nanos_to_secs
func nanos_to_secs(nanos C.uint64_t) C.double {
	return C.double(timeconv.NanosToSecs(uint64(nanos)))
}

// nanos_to_millis converts nanoseconds (ns) to milliseconds (ms).
//
//export nanos_to_millis
func nanos_to_millis(nanos C.uint64_t) C.uint64_t {
	return C.uint64_t(timeconv.NanosToMillis(uint64(nanos)))
}

// nanos_to_micros converts nanoseconds (ns) to microseconds (us).
//
//export nanos_to_micros
func nanos_to_micros(nanos C.uint64_t) C.uint64_t {
	return C.uint64_t(timeconv.NanosToMicros(uint64(nanos)))
}

// unix_timestamp returns the current seconds since the UNIX epoch.
//
//export unix_timestamp
func unix_timestamp() C.double {
	return C.double(timeconv.UnixSecs())
}

// unix_timestamp_ms returns the current milliseconds since the UNIX epoch.
//
//export unix_timestamp_ms
func unix_timestamp_ms() C.uint64_t {
	return C.uint64_t(timeconv.UnixMillis())
}

// unix_timestamp_us returns the current microseconds since the UNIX epoch.
//
//export unix_timestamp_us
func unix_timestamp_us() C.uint64_t {
	return C.uint64_t(timeconv.UnixMicros())
}

// unix_timestamp_ns returns the current nanoseconds since the UNIX epoch.
//
//export unix_timestamp_ns
func unix_timestamp_ns() C.uint64_t {
	return C.uint64_t(timeconv.UnixNanos())
}
