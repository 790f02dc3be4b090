// File: core/timeconv/clock_linux.go
//go:build linux
// +build linux

// Package timeconv
// Author: momentics <momentics@gmail.com>
//
// Linux clock source reading CLOCK_REALTIME directly, skipping the
// time.Time round-trip on the hot path.

package timeconv

import (
	"time"

	"golang.org/x/sys/unix"
)

func nowNanos() uint64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		// Fallback to the runtime clock on vdso/syscall failure.
		return uint64(time.Now().UnixNano())
	}
	return uint64(ts.Sec)*NanosPerSec + uint64(ts.Nsec)
}
