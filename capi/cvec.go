// File: capi/cvec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package main

/*
#include "corebridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/momentics/corebridge/internal/native"
)

// cvec_new returns the canonical empty descriptor: null pointer, zero
// length, zero capacity. It owns no allocation, so dropping it is a no-op.
//
//export cvec_new
func cvec_new() C.CVec {
	return C.CVec{}
}

// cvec_drop reclaims the allocation behind a descriptor produced by a
// native-side producer. The empty descriptor is accepted and ignored.
// Dropping the same non-empty descriptor twice is undefined.
//
//export cvec_drop
func cvec_drop(cvec C.CVec) {
	if cvec.ptr == nil {
		return
	}
	native.Free(unsafe.Pointer(cvec.ptr))
}
