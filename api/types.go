// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

import "unsafe"

// CVec is the transferable descriptor for a native heap allocation.
//
// The pointer is opaque to the holder: element type is fixed by the
// producer that filled the descriptor in, and capacity records the
// allocation size so the release path can reclaim the whole block.
// The zero value (nil pointer, zero length and capacity) is the canonical
// empty descriptor; releasing it is a safe no-op.
//
// Ownership: whoever holds a non-empty CVec owns the allocation and must
// release it exactly once. The descriptor carries no destructor and no
// bookkeeping; a second release, or any access after release, is undefined.
type CVec struct {
	// Ptr addresses the first element. Nil only for the empty descriptor.
	Ptr unsafe.Pointer
	// Len is the number of valid elements.
	Len uintptr
	// Cap is the allocation size in elements. Used only for deallocation;
	// always Len <= Cap.
	Cap uintptr
}

// Empty reports whether v is the canonical empty descriptor.
func (v CVec) Empty() bool { return v.Ptr == nil }

// AllocKind enumerates the native allocation event types recorded by the
// accounting journal.
type AllocKind int

const (
	AllocUnknown AllocKind = iota
	AllocAcquire
	AllocRelease
)

func (k AllocKind) String() string {
	switch k {
	case AllocAcquire:
		return "acquire"
	case AllocRelease:
		return "release"
	default:
		return "unknown"
	}
}

// AllocEvent is one entry of the native allocator's bounded journal.
type AllocEvent struct {
	Kind AllocKind
	Addr uintptr
	Size int // bytes; zero for release events
	Seq  uint64
}

// AllocStats aggregates native allocation/release counters.
type AllocStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
