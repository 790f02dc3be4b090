// File: internal/native/native.go
// Package native owns the C-heap side of the boundary.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Every allocation handed across the boundary comes from this package, so
// the acquire/release counters here see the full lifecycle. Nothing in the
// package tracks outstanding pointers: release discipline is the caller's
// contract, the counters exist for accounting and tests.

package native

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/corebridge/api"
)

var (
	totalAlloc atomic.Int64
	totalFree  atomic.Int64
)

// Alloc returns a zeroed C-heap block of size bytes. The block is invisible
// to the Go collector; the caller must pair it with exactly one Free.
func Alloc(size int) unsafe.Pointer {
	if size <= 0 {
		panic(api.NewError(api.ErrCodeInvalidArgument, "native: allocation size must be positive").
			WithContext("size", size))
	}
	p := C.calloc(1, C.size_t(size))
	if p == nil {
		panic("native: out of memory")
	}
	totalAlloc.Add(1)
	journal.record(api.AllocAcquire, uintptr(p), size)
	return p
}

// Free returns a block obtained from Alloc to the C heap.
// A nil pointer is a contract violation; a second Free of the same block
// is undefined and cannot be detected here.
func Free(p unsafe.Pointer) {
	if p == nil {
		panic(api.ErrNullPointer)
	}
	journal.record(api.AllocRelease, uintptr(p), 0)
	totalFree.Add(1)
	C.free(p)
}

// CString copies s into a freshly allocated, NUL-terminated C-heap string.
// Ownership transfers to the caller; reclaim with Free.
func CString(s string) unsafe.Pointer {
	p := Alloc(len(s) + 1)
	dst := unsafe.Slice((*byte)(p), len(s)+1)
	copy(dst, s)
	dst[len(s)] = 0
	return p
}

// GoString copies the NUL-terminated text at p into a Go string.
// The native allocation is left untouched.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		panic(api.ErrNullPointer)
	}
	return C.GoString((*C.char)(p))
}

// Stats exposes the allocator's counters for observability and tests.
func Stats() api.AllocStats {
	alloc := totalAlloc.Load()
	free := totalFree.Load()
	return api.AllocStats{
		TotalAlloc: alloc,
		TotalFree:  free,
		InUse:      alloc - free,
	}
}
