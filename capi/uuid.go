// File: capi/uuid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

/*
#include "corebridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/momentics/corebridge/api"
	"github.com/momentics/corebridge/core/ident"
	"github.com/momentics/corebridge/internal/native"
)

// mustIdent rebuilds the Go-side handle from a host struct, aborting on a
// null pointer so misuse faults here rather than on an arbitrary address.
func mustIdent(u *C.UUID4_t) ident.UUID4 {
	if u == nil || u.value == nil {
		panic(api.ErrNullPointer)
	}
	return ident.FromRaw(unsafe.Pointer(u.value))
}

// uuid4_new generates a fresh random identifier. The host owns the
// returned instance and must hand it to uuid4_drop exactly once.
//
//export uuid4_new
func uuid4_new() C.UUID4_t {
	return C.UUID4_t{value: (*C.char)(ident.New().Raw())}
}

// uuid4_clone returns a second instance sharing the backing string.
// The shared count is incremented; no bytes are copied.
//
//export uuid4_clone
func uuid4_clone(uuid4 *C.UUID4_t) C.UUID4_t {
	return C.UUID4_t{value: (*C.char)(mustIdent(uuid4).Clone().Raw())}
}

// uuid4_drop releases one instance. The backing string is freed when the
// last outstanding instance drops.
//
//export uuid4_drop
func uuid4_drop(uuid4 C.UUID4_t) {
	if uuid4.value == nil {
		panic(api.ErrNullPointer)
	}
	ident.FromRaw(unsafe.Pointer(uuid4.value)).Drop()
}

// uuid4_from_cstr parses host-supplied text, copying the bytes rather than
// retaining the pointer. Null or malformed input aborts.
//
//export uuid4_from_cstr
func uuid4_from_cstr(ptr *C.char) C.UUID4_t {
	if ptr == nil {
		panic(api.ErrNullPointer)
	}
	u, err := ident.FromString(native.GoString(unsafe.Pointer(ptr)))
	if err != nil {
		panic(err)
	}
	return C.UUID4_t{value: (*C.char)(u.Raw())}
}

// uuid4_to_cstr formats the identifier into a newly allocated C string.
// Ownership transfers to the host, which must reclaim it via cstr_drop.
//
//export uuid4_to_cstr
func uuid4_to_cstr(uuid4 *C.UUID4_t) *C.char {
	return (*C.char)(native.CString(mustIdent(uuid4).String()))
}

// uuid4_eq compares canonical text content; distinct allocations holding
// the same text compare equal.
//
//export uuid4_eq
func uuid4_eq(lhs *C.UUID4_t, rhs *C.UUID4_t) C.uint8_t {
	if mustIdent(lhs).Equal(mustIdent(rhs)) {
		return 1
	}
	return 0
}

// uuid4_hash returns a stable content hash consistent with uuid4_eq.
//
//export uuid4_hash
func uuid4_hash(uuid4 *C.UUID4_t) C.uint64_t {
	return C.uint64_t(mustIdent(uuid4).Hash())
}
