// File: core/timeconv/clock_stub.go
//go:build !linux
// +build !linux

// Package timeconv
// Author: momentics <momentics@gmail.com>
//
// Portable clock source for non-Linux platforms.

package timeconv

import "time"

func nowNanos() uint64 {
	return uint64(time.Now().UnixNano())
}
