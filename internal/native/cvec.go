// File: internal/native/cvec.go
// Package native: producers for the transferable CVec descriptor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package native

import (
	"unsafe"

	"github.com/momentics/corebridge/api"
)

// NewCVec copies items into a single native allocation and transfers its
// ownership into the returned descriptor. The element type must not contain
// Go pointers. An empty slice yields the canonical empty descriptor.
//
// The descriptor must later be handed to FreeCVec (or the C-side drop)
// exactly once.
func NewCVec[T any](items []T) api.CVec {
	if len(items) == 0 {
		return api.CVec{}
	}
	elem := int(unsafe.Sizeof(items[0]))
	p := Alloc(len(items) * elem)
	copy(unsafe.Slice((*T)(p), len(items)), items)
	return api.CVec{Ptr: p, Len: uintptr(len(items)), Cap: uintptr(len(items))}
}

// CVecSlice reinterprets a descriptor as a typed view of its Len elements.
// The view aliases the native allocation and dies with it.
func CVecSlice[T any](v api.CVec) []T {
	if v.Empty() {
		return nil
	}
	return unsafe.Slice((*T)(v.Ptr), v.Len)
}

// FreeCVec reclaims the allocation behind a descriptor. The canonical empty
// descriptor is a safe no-op; anything else must have come from a native
// producer and must be freed exactly once.
func FreeCVec(v api.CVec) {
	if v.Empty() {
		return
	}
	Free(v.Ptr)
}
